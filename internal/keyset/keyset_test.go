package keyset

import "testing"

func TestParse_Whitespace(t *testing.T) {
	s := Parse("  alpha\tbeta\n gamma  ")
	if len(s) != 3 {
		t.Fatalf("expected 3 keywords, got %d", len(s))
	}
	for _, k := range []string{"alpha", "beta", "gamma"} {
		if !s.Contains(k) {
			t.Errorf("expected set to contain %q", k)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	if !Parse("").Empty() {
		t.Error("expected empty set for empty string")
	}
	if !Parse("   \t\n").Empty() {
		t.Error("expected empty set for blank string")
	}
}

func TestParse_MalformedBecomesLiteralToken(t *testing.T) {
	// Stray punctuation is kept as a literal token, never an error.
	s := Parse("good ,bad, ***")
	if !s.Contains("good") || !s.Contains(",bad,") || !s.Contains("***") {
		t.Errorf("expected literal tokens kept, got %v", s.Sorted())
	}
}

func TestParse_CaseSensitive(t *testing.T) {
	s := Parse("Intro intro")
	if len(s) != 2 {
		t.Errorf("expected exact-match case-sensitive keywords, got %v", s.Sorted())
	}
}

func TestUnion(t *testing.T) {
	a := New("a", "b")
	b := New("b", "c")
	u := Union(a, b)
	if len(u) != 3 || !u.Contains("a") || !u.Contains("b") || !u.Contains("c") {
		t.Errorf("expected {a b c}, got %v", u.Sorted())
	}
	// Inputs are never mutated.
	if len(a) != 2 || len(b) != 2 {
		t.Error("expected inputs unchanged")
	}
}

func TestIntersect(t *testing.T) {
	got := Intersect(New("a", "b", "c"), New("b", "c", "d"))
	if len(got) != 2 || !got.Contains("b") || !got.Contains("c") {
		t.Errorf("expected {b c}, got %v", got.Sorted())
	}
	if !Intersect(New("a"), New()).Empty() {
		t.Error("expected empty intersection with empty set")
	}
}

func TestDiff(t *testing.T) {
	got := Diff(New("a", "b", "c"), New("b"))
	if len(got) != 2 || !got.Contains("a") || !got.Contains("c") {
		t.Errorf("expected {a c}, got %v", got.Sorted())
	}
}

func TestDiff_NeverContainsSubtracted(t *testing.T) {
	all := New("a", "b", "c", "d", "e")
	visible := New("b", "d", "zzz") // zzz not in all; tolerated
	for k := range visible {
		if Diff(all, visible).Contains(k) {
			t.Errorf("diff must not contain visible keyword %q", k)
		}
	}
}

func TestEmptyInputsYieldEmptyResults(t *testing.T) {
	if !Union(New(), New()).Empty() {
		t.Error("union of empty sets should be empty")
	}
	if !Intersect(New(), New()).Empty() {
		t.Error("intersection of empty sets should be empty")
	}
	if !Diff(New(), New()).Empty() {
		t.Error("difference of empty sets should be empty")
	}
}

func TestSorted(t *testing.T) {
	got := New("c", "a", "b").Sorted()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if New().Sorted() == nil {
		t.Error("expected non-nil slice for empty set")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(New("a", "b"), New("b", "a")) {
		t.Error("expected sets with same elements to be equal")
	}
	if Equal(New("a"), New("a", "b")) {
		t.Error("expected sets of different size to differ")
	}
	if Equal(New("a"), New("b")) {
		t.Error("expected sets with different elements to differ")
	}
}
