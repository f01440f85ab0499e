package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/keyfold/internal/doctree"
)

// XMLParser handles XML/SGML-style files: the element tree is mirrored
// one-to-one and keywords come from the configured attribute on any
// element. This is the closest format to the structured documents the fold
// algorithm is designed around.
type XMLParser struct {
	KeysAttr string
}

func (p *XMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	attr := p.KeysAttr
	if attr == "" {
		attr = DefaultKeysAttr
	}

	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose

	tree := &doctree.Document{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".xml"), ".sgml"),
	}

	var root *doctree.Node
	var stack []*doctree.Node
	var text strings.Builder

	flushText := func() {
		t := strings.TrimSpace(text.String())
		text.Reset()
		if t == "" || len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.Text != "" {
			top.Text += "\n" + t
		} else {
			top.Text = t
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			flushText()
			node := &doctree.Node{}
			for _, a := range t.Attr {
				if a.Name.Local == attr {
					node.Keys = a.Value
				}
			}
			if root == nil {
				node.Title = t.Name.Local
				root = node
			} else if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			flushText()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text.Write(t)
		}
	}

	if root == nil {
		root = &doctree.Node{Title: tree.Title}
	}
	tree.Root = root
	return tree, nil
}
