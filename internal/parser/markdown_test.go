package parser

import (
	"strings"
	"testing"
)

func TestMarkdownParser_HeadingHierarchy(t *testing.T) {
	input := `# Top

Intro text.

## Section A

Content A.

### Subsection A1

Deep content.

## Section B

Content B.
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", tree.Title)
	}
	if len(tree.Root.Children) != 1 {
		t.Fatalf("expected 1 top-level heading, got %d", len(tree.Root.Children))
	}

	top := tree.Root.Children[0]
	if top.Title != "Top" {
		t.Errorf("expected top heading %q, got %q", "Top", top.Title)
	}
	if !strings.Contains(top.Text, "Intro text.") {
		t.Errorf("expected intro text under Top, got %q", top.Text)
	}
	if len(top.Children) != 2 {
		t.Fatalf("expected 2 sections under Top, got %d", len(top.Children))
	}

	secA := top.Children[0]
	if secA.Title != "Section A" {
		t.Errorf("expected %q, got %q", "Section A", secA.Title)
	}
	if len(secA.Children) != 1 || secA.Children[0].Title != "Subsection A1" {
		t.Fatalf("expected Subsection A1 nested under Section A, got %+v", secA.Children)
	}
	if top.Children[1].Title != "Section B" {
		t.Errorf("expected %q, got %q", "Section B", top.Children[1].Title)
	}
}

func TestMarkdownParser_HeadingKeywordAttribute(t *testing.T) {
	input := `## Quarterly results {keys="finance q4"}

Revenue was flat.

## Roadmap

Plans.
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "report.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Root.Children) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(tree.Root.Children))
	}

	if got := tree.Root.Children[0].Keys; got != "finance q4" {
		t.Errorf("expected keys %q, got %q", "finance q4", got)
	}
	if got := tree.Root.Children[1].Keys; got != "" {
		t.Errorf("expected no keys on plain heading, got %q", got)
	}
}

func TestMarkdownParser_CustomAttrName(t *testing.T) {
	input := `## Tagged {topics="alpha beta"}

Body.
`
	p := &MarkdownParser{KeysAttr: "topics"}
	tree, err := p.Parse(strings.NewReader(input), "t.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Root.Children[0].Keys; got != "alpha beta" {
		t.Errorf("expected keys from custom attribute, got %q", got)
	}
}

func TestMarkdownParser_SkippedHeadingLevels(t *testing.T) {
	input := `# Top

### Deep

content
`
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "skip.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top := tree.Root.Children[0]
	if len(top.Children) != 1 || top.Children[0].Title != "Deep" {
		t.Fatalf("expected h3 nested directly under h1, got %+v", top.Children)
	}
}

func TestMarkdownParser_TextBeforeFirstHeading(t *testing.T) {
	input := "Preamble paragraph.\n\n# First\n\nbody\n"
	p := &MarkdownParser{}
	tree, err := p.Parse(strings.NewReader(input), "pre.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(tree.Root.Text, "Preamble paragraph.") {
		t.Errorf("expected preamble on root node, got %q", tree.Root.Text)
	}
}
