package keyset

import (
	"sort"
	"strings"
)

// Set is a set of keyword tokens. Keywords are opaque, case-sensitive
// strings compared by exact equality; no normalization is applied.
type Set map[string]struct{}

// New builds a set from the given keywords.
func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Parse splits a whitespace-separated keyword string into a set. An absent
// or blank value yields the empty set. Parse never fails: stray punctuation
// simply becomes a literal (likely non-matching) token.
func Parse(raw string) Set {
	return New(strings.Fields(raw)...)
}

// Union returns a new set with every element of a and b.
func Union(a, b Set) Set {
	out := make(Set, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the elements present in both a and b.
func Intersect(a, b Set) Set {
	out := make(Set)
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the elements of a not present in b.
func Diff(a, b Set) Set {
	out := make(Set)
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}
	return out
}

// Contains reports whether k is in the set.
func (s Set) Contains(k string) bool {
	_, ok := s[k]
	return ok
}

// Empty reports whether the set has no elements.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Sorted returns the elements in lexical order. Empty sets yield an empty
// (non-nil) slice so JSON encodes as [] rather than null.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether a and b hold the same elements.
func Equal(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
