package extract

import (
	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/keyset"
)

// DirectKeys returns the keywords declared on the node itself. A missing or
// blank keyword attribute yields the empty set.
func DirectKeys(n *doctree.Node) keyset.Set {
	if n == nil {
		return keyset.New()
	}
	return keyset.Parse(n.Keys)
}

// SubtreeKeys returns the union of a node's direct keys and the subtree
// keys of every child, recursively. The walk visits the entire subtree
// unconditionally: this layer has no schema knowledge and cannot prune
// branches that structurally never carry keywords.
func SubtreeKeys(n *doctree.Node) keyset.Set {
	if n == nil {
		return keyset.New()
	}
	keys := DirectKeys(n)
	for _, c := range n.Children {
		keys = keyset.Union(keys, SubtreeKeys(c))
	}
	return keys
}
