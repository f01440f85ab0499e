package parser

import (
	"strings"
	"testing"
)

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if len(tree.Root.Children) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(tree.Root.Children))
	}

	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		if tree.Root.Children[i].Text != w {
			t.Errorf("paragraph[%d]: expected %q, got %q", i, w, tree.Root.Children[i].Text)
		}
	}
}

func TestTextParser_KeywordMarker(t *testing.T) {
	input := "[keys: intro overview]\nWelcome to the document.\n\nPlain paragraph without keys."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Root.Children) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(tree.Root.Children))
	}

	first := tree.Root.Children[0]
	if first.Keys != "intro overview" {
		t.Errorf("expected keys %q, got %q", "intro overview", first.Keys)
	}
	if strings.Contains(first.Text, "[keys:") {
		t.Errorf("expected marker stripped from text, got %q", first.Text)
	}
	if first.Text != "Welcome to the document." {
		t.Errorf("expected remaining text, got %q", first.Text)
	}

	if tree.Root.Children[1].Keys != "" {
		t.Errorf("expected no keys on plain paragraph, got %q", tree.Root.Children[1].Keys)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Root.Children) != 0 {
		t.Errorf("expected 0 paragraphs for empty input, got %d", len(tree.Root.Children))
	}
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	// Lines with only whitespace should be treated as blank.
	input := "Para one.\n   \nPara two."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Root.Children) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(tree.Root.Children))
	}
}

func TestMarker_EmptyAndMalformed(t *testing.T) {
	keys, rest := leadingMarker("[keys: ]\nbody")
	if keys != "" {
		t.Errorf("expected empty keys, got %q", keys)
	}
	if rest != "body" {
		t.Errorf("expected body kept, got %q", rest)
	}

	// A marker not on the first line is plain content.
	keys, rest = leadingMarker("body\n[keys: late]")
	if keys != "" {
		t.Errorf("expected no keys for non-leading marker, got %q", keys)
	}
	if !strings.Contains(rest, "[keys: late]") {
		t.Errorf("expected non-leading marker kept as text, got %q", rest)
	}
}
