// Package view renders a laid-out document for the terminal with fold
// ranges applied.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/keyfold/internal/fold"
)

var foldMarkerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "244"}).
	Italic(true)

// TextView is a fold.View over a document's display text. Folded ranges
// collapse to a single marker line when rendered.
type TextView struct {
	text   string
	folded fold.Plan
}

func NewText(text string) *TextView {
	return &TextView{text: text}
}

func (v *TextView) FoldRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(v.text) {
		end = len(v.text)
	}
	if start >= end {
		return
	}
	v.folded.FoldRange(start, end)
}

func (v *TextView) UnfoldAll() {
	v.folded.UnfoldAll()
}

// Render returns the display text with every folded range replaced by a
// marker noting how many lines it hides.
func (v *TextView) Render() string {
	spans := v.folded.Coalesced()
	if len(spans) == 0 {
		return v.text
	}

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		b.WriteString(v.text[pos:s.Start])
		hidden := strings.Count(strings.TrimRight(v.text[s.Start:s.End], "\n"), "\n") + 1
		b.WriteString(foldMarkerStyle.Render(fmt.Sprintf("⋯ %d lines folded ⋯", hidden)))
		b.WriteString("\n")
		pos = s.End
	}
	b.WriteString(v.text[pos:])
	return b.String()
}
