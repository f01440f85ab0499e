package picker

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/dgallion1/keyfold/internal/keyset"
)

// Fzf is an interactive terminal picker backed by a fuzzy finder with
// multi-select (tab to toggle, enter to confirm). It blocks until the user
// responds; aborting keeps the current selection unchanged.
type Fzf struct{}

func (f *Fzf) ChooseSubset(current, candidates keyset.Set, prompt string) (keyset.Set, error) {
	// Currently visible keywords come first so re-confirming a selection
	// is cheap; the marker shows which ones are on now.
	items := current.Sorted()
	visibleCount := len(items)
	items = append(items, candidates.Sorted()...)

	if len(items) == 0 {
		return keyset.New(), nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		items,
		func(i int) string {
			if i < visibleCount {
				return "● " + items[i]
			}
			return "○ " + items[i]
		},
		fuzzyfinder.WithHeader(prompt),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return current, nil
		}
		return nil, fmt.Errorf("keyword picker: %w", err)
	}

	selected := keyset.New()
	for _, i := range idxs {
		selected[items[i]] = struct{}{}
	}
	return selected, nil
}
