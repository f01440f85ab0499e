// Package picker provides implementations of the interactive keyword
// selector the refold orchestrator consults for a new visible set.
package picker

import "github.com/dgallion1/keyfold/internal/keyset"

// Static always returns a fixed selection. The API server uses it to carry
// a remote client's choice into the orchestrator, and the CLI uses it for
// non-interactive --keys runs.
type Static struct {
	Selection keyset.Set
}

func (s *Static) ChooseSubset(current, candidates keyset.Set, prompt string) (keyset.Set, error) {
	if s.Selection == nil {
		// No selection supplied: behave like a cancelled prompt and keep
		// the previous visible set.
		return current, nil
	}
	return s.Selection, nil
}
