package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/keyfold/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Every element becomes a tree node so the
// fold planner sees the full document structure; keywords come from the
// configured attribute on any element.
type HTMLParser struct {
	KeysAttr string
}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	attr := p.KeysAttr
	if attr == "" {
		attr = DefaultKeysAttr
	}

	tree := &doctree.Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm"),
	}
	if title := findTitle(doc); title != "" {
		tree.Title = title
	}

	// Fold the view from <body> when present, the whole document otherwise.
	src := findBody(doc)
	if src == nil {
		src = doc
	}

	root := convertElement(src, attr)
	if root == nil {
		root = &doctree.Node{}
	}
	root.Title = tree.Title
	tree.Root = root

	return tree, nil
}

// convertElement mirrors one HTML element as a doctree node: direct text
// children become the node's text, element children recurse. Script and
// style subtrees are not content and are skipped entirely.
func convertElement(n *html.Node, keysAttr string) *doctree.Node {
	node := &doctree.Node{Keys: attrValue(n, keysAttr)}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			t := strings.TrimSpace(c.Data)
			if t != "" {
				if text.Len() > 0 {
					text.WriteString(" ")
				}
				text.WriteString(t)
			}
		case html.ElementNode:
			if c.Data == "script" || c.Data == "style" {
				continue
			}
			node.Children = append(node.Children, convertElement(c, keysAttr))
		}
	}
	node.Text = text.String()
	return node
}

func attrValue(n *html.Node, name string) string {
	if n.Type != html.ElementNode {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
