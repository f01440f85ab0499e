package fold

import (
	"sort"

	"github.com/dgallion1/keyfold/internal/doctree"
)

// Plan is a View that records fold ranges instead of driving a display.
// The API server runs the planner against a Plan and ships the result to
// the client.
type Plan struct {
	Ranges []doctree.Span
}

func (p *Plan) FoldRange(start, end int) {
	p.Ranges = append(p.Ranges, doctree.Span{Start: start, End: end})
}

func (p *Plan) UnfoldAll() {
	p.Ranges = p.Ranges[:0]
}

// Coalesced returns the fold ranges with every range contained in another
// removed, sorted by start. The planner folds a non-matching descendant
// before its non-matching ancestor covers it; coalescing yields just the
// highest folded nodes — the observable folds.
func (p *Plan) Coalesced() []doctree.Span {
	spans := make([]doctree.Span, len(p.Ranges))
	copy(spans, p.Ranges)
	// Widest-first within equal starts, so containment checks only need
	// to look at already-kept spans.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	out := make([]doctree.Span, 0, len(spans))
	for _, s := range spans {
		if s.Start >= s.End {
			continue // zero-width span, nothing to hide
		}
		if len(out) > 0 && out[len(out)-1].Contains(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
