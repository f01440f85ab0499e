package fold

import (
	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/extract"
	"github.com/dgallion1/keyfold/internal/keyset"
)

// VisibilityState caches the keyword universe and the chosen visible subset
// for one open document. Its lifetime is the document session's: nothing
// here survives the session, and edits to the document do not invalidate
// All automatically — Refresh is the only invalidation path.
type VisibilityState struct {
	// All is every keyword discoverable in the tree as of the last
	// refresh; empty until first initialized.
	All keyset.Set

	// Visible is the subset currently shown. It starts empty, persists
	// across refolds within the session, and is allowed to drift out of
	// All after edits (a stale visible keyword simply matches nothing).
	Visible keyset.Set
}

// EnsureInitialized populates All from the tree if it has never been
// computed. Lazy: it does not re-run once populated, even if the document
// changed since.
func (s *VisibilityState) EnsureInitialized(root *doctree.Node) {
	if len(s.All) == 0 {
		s.All = extract.SubtreeKeys(root)
	}
	if s.Visible == nil {
		s.Visible = keyset.New()
	}
}

// Refresh unconditionally recomputes All from the tree. Idempotent; safe to
// call repeatedly.
func (s *VisibilityState) Refresh(root *doctree.Node) {
	s.All = extract.SubtreeKeys(root)
	if s.Visible == nil {
		s.Visible = keyset.New()
	}
}
