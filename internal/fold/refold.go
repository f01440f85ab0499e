package fold

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/keyset"
)

// Picker is the external interactive selector. It blocks until the user
// responds. Implementations treat cancellation as "return current
// unchanged" rather than an error; real failures propagate.
type Picker interface {
	ChooseSubset(current, candidates keyset.Set, prompt string) (keyset.Set, error)
}

// Orchestrator drives refold passes for one open document. It is the sole
// writer of the document's VisibilityState.
type Orchestrator struct {
	doc    *doctree.Document
	view   View
	picker Picker
	state  *VisibilityState
	log    *slog.Logger
}

func NewOrchestrator(doc *doctree.Document, view View, picker Picker, state *VisibilityState, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{doc: doc, view: view, picker: picker, state: state, log: log}
}

// State exposes the visibility state for read access.
func (o *Orchestrator) State() *VisibilityState {
	return o.state
}

// RefreshKeywordUniverse unconditionally recomputes the keyword universe
// from the tree. This is the explicit path for picking up keyword edits.
func (o *Orchestrator) RefreshKeywordUniverse() {
	o.state.Refresh(o.doc.Root)
	o.log.Debug("keyword universe refreshed", "keywords", len(o.state.All))
}

// EnsureInitialized lazily computes the keyword universe before first use.
func (o *Orchestrator) EnsureInitialized() {
	o.state.EnsureInitialized(o.doc.Root)
}

// Refold is the main entry point: obtain a fresh visible-keyword selection
// from the picker, unfold everything, fold every subtree that matches
// nothing in the selection, and persist the selection for the next pass.
//
// The pass always unfolds and refolds in full, even when the picker returns
// the previous selection unchanged. On picker failure the state is left
// unmodified and the error propagates; no retries, no partial recovery.
func (o *Orchestrator) Refold() error {
	o.state.EnsureInitialized(o.doc.Root)

	invisible := keyset.Diff(o.state.All, o.state.Visible)
	selected, err := o.picker.ChooseSubset(o.state.Visible, invisible, "keywords to show")
	if err != nil {
		return fmt.Errorf("choose keywords: %w", err)
	}

	o.view.UnfoldAll()
	FoldSubtreesNotMatching(o.view, o.doc.Root, selected)
	o.state.Visible = selected

	o.log.Debug("refolded", "visible", len(selected), "universe", len(o.state.All))
	return nil
}
