package fold

import (
	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/extract"
	"github.com/dgallion1/keyfold/internal/keyset"
)

// View is the external fold primitive the planner drives. Both calls are
// synchronous and take effect immediately.
type View interface {
	// FoldRange hides the half-open [start, end) range of the display.
	FoldRange(start, end int)
	// UnfoldAll discards every fold, including ones not produced here.
	UnfoldAll()
}

// FoldSubtreesNotMatching walks the tree rooted at n and folds every
// subtree that does not, anywhere within itself, carry a keyword from
// selected. It returns whether n or any visited descendant matched.
//
// A node whose own keys intersect the selection matches directly and its
// whole subtree stays visible: recursion only proceeds into children while
// the node's own status is undecided. Children are all visited without
// short-circuiting, because each child's fold decision is a side effect
// that must happen regardless of the parent's eventual status. A fold for
// the node's full span is emitted only after self and descendants are
// known not to match; a descendant's earlier fold inside that span is
// redundant but harmless.
//
// An empty selection matches nothing, so everything folds.
func FoldSubtreesNotMatching(v View, n *doctree.Node, selected keyset.Set) bool {
	if n == nil {
		return false
	}
	matched := !keyset.Intersect(extract.DirectKeys(n), selected).Empty()
	if !matched {
		for _, c := range n.Children {
			if FoldSubtreesNotMatching(v, c, selected) {
				matched = true
			}
		}
	}
	if !matched {
		v.FoldRange(n.Span.Start, n.Span.End)
	}
	return matched
}
