package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/keyfold/internal/doctree"
)

func TestHTMLParser_ElementTreeAndKeys(t *testing.T) {
	input := `<html><head><title>Report</title></head><body>
<div keys="intro">Welcome.</div>
<div keys="detail"><p keys="detail">Inner detail.</p></div>
<div>No keywords here.</div>
</body></html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "Report" {
		t.Errorf("expected title from <title>, got %q", tree.Title)
	}
	if len(tree.Root.Children) != 3 {
		t.Fatalf("expected 3 body children, got %d", len(tree.Root.Children))
	}

	first := tree.Root.Children[0]
	if first.Keys != "intro" || first.Text != "Welcome." {
		t.Errorf("expected intro div, got keys=%q text=%q", first.Keys, first.Text)
	}

	second := tree.Root.Children[1]
	if second.Keys != "detail" {
		t.Errorf("expected detail div keys, got %q", second.Keys)
	}
	if len(second.Children) != 1 || second.Children[0].Keys != "detail" {
		t.Fatalf("expected nested keyed <p>, got %+v", second.Children)
	}

	if tree.Root.Children[2].Keys != "" {
		t.Errorf("expected no keys on plain div, got %q", tree.Root.Children[2].Keys)
	}
}

func TestHTMLParser_CustomKeysAttr(t *testing.T) {
	input := `<body><section data-topics="alpha">text</section></body>`
	p := &HTMLParser{KeysAttr: "data-topics"}
	tree, err := p.Parse(strings.NewReader(input), "x.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Root.Children) != 1 || tree.Root.Children[0].Keys != "alpha" {
		t.Errorf("expected keys from configured attribute, got %+v", tree.Root.Children)
	}
}

func TestHTMLParser_SkipsScriptAndStyle(t *testing.T) {
	input := `<body><script>var x = 1;</script><style>p{}</style><p>visible</p></body>`
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "x.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	doctree.Walk(tree.Root, func(n *doctree.Node) {
		if strings.Contains(n.Text, "var x") || strings.Contains(n.Text, "p{}") {
			found = true
		}
	})
	if found {
		t.Error("expected script/style content excluded from tree")
	}
	if len(tree.Root.Children) != 1 || tree.Root.Children[0].Text != "visible" {
		t.Errorf("expected only the paragraph kept, got %+v", tree.Root.Children)
	}
}

func TestHTMLParser_TitleFallsBackToFilename(t *testing.T) {
	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader("<body><p>x</p></body>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "page" {
		t.Errorf("expected filename title, got %q", tree.Title)
	}
}
