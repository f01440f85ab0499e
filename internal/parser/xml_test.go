package parser

import (
	"strings"
	"testing"
)

func TestXMLParser_ElementTreeAndKeys(t *testing.T) {
	input := `<report>
  <section keys="intro">
    <title>Welcome</title>
    Opening remarks.
  </section>
  <section keys="detail">
    <para keys="detail">Deep detail.</para>
  </section>
  <section>No keys.</section>
</report>`

	p := &XMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "report.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Root.Title != "report" {
		t.Errorf("expected root titled after the root element, got %q", tree.Root.Title)
	}
	if len(tree.Root.Children) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(tree.Root.Children))
	}

	if tree.Root.Children[0].Keys != "intro" {
		t.Errorf("expected intro keys, got %q", tree.Root.Children[0].Keys)
	}
	second := tree.Root.Children[1]
	if second.Keys != "detail" {
		t.Errorf("expected detail keys, got %q", second.Keys)
	}
	if len(second.Children) != 1 || second.Children[0].Keys != "detail" {
		t.Fatalf("expected nested keyed para, got %+v", second.Children)
	}
	if tree.Root.Children[2].Keys != "" {
		t.Errorf("expected no keys on bare section, got %q", tree.Root.Children[2].Keys)
	}
}

func TestXMLParser_CharDataAttachesToEnclosingElement(t *testing.T) {
	input := `<doc><a>alpha text</a>between<b>beta text</b></doc>`
	p := &XMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "d.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tree.Root.Children[0].Text; got != "alpha text" {
		t.Errorf("expected %q, got %q", "alpha text", got)
	}
	if !strings.Contains(tree.Root.Text, "between") {
		t.Errorf("expected interleaved text on parent, got %q", tree.Root.Text)
	}
}

func TestXMLParser_CustomKeysAttr(t *testing.T) {
	input := `<doc><sec topics="alpha beta">x</sec></doc>`
	p := &XMLParser{KeysAttr: "topics"}
	tree, err := p.Parse(strings.NewReader(input), "d.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Root.Children[0].Keys; got != "alpha beta" {
		t.Errorf("expected keys from configured attribute, got %q", got)
	}
}

func TestXMLParser_EmptyInput(t *testing.T) {
	p := &XMLParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Root == nil {
		t.Fatal("expected a root node even for empty input")
	}
	if tree.Root.Title != "empty" {
		t.Errorf("expected filename title, got %q", tree.Root.Title)
	}
}
