package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/keyfold/internal/doctree"
)

// TextParser handles plain text files. Each paragraph becomes a node; a
// paragraph whose first line is a "[keys: ...]" marker carries those
// keywords.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	title := strings.TrimSuffix(filename, ".txt")
	tree := &doctree.Document{
		Title: title,
		Root:  &doctree.Node{Title: title},
	}

	for _, para := range paragraphs {
		keys, rest := leadingMarker(para)
		tree.Root.Children = append(tree.Root.Children, &doctree.Node{
			Text: rest,
			Keys: keys,
		})
	}

	return tree, nil
}
