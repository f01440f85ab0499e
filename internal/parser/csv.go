package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/keyfold/internal/doctree"
)

// CSVParser handles CSV files. Rows become nodes under a single root; a
// column named after the keyword attribute carries each row's keywords.
type CSVParser struct {
	KeysColumn string
}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	title := strings.TrimSuffix(filename, ".csv")
	tree := &doctree.Document{
		Title: title,
		Root:  &doctree.Node{Title: title},
	}

	if len(records) == 0 {
		return tree, nil
	}

	col := p.KeysColumn
	if col == "" {
		col = DefaultKeysAttr
	}

	// First row is headers.
	headers := records[0]
	keysIdx := -1
	for i, h := range headers {
		if strings.TrimSpace(h) == col {
			keysIdx = i
		}
	}

	for rowNum, row := range records[1:] {
		var text strings.Builder
		keys := ""
		for j, cell := range row {
			if j == keysIdx {
				keys = cell
				continue
			}
			if text.Len() > 0 {
				text.WriteString(", ")
			}
			if j < len(headers) {
				text.WriteString(headers[j] + ": " + cell)
			} else {
				text.WriteString(cell)
			}
		}

		tree.Root.Children = append(tree.Root.Children, &doctree.Node{
			Title: fmt.Sprintf("Row %d", rowNum+2), // 1-indexed, skip header
			Text:  text.String(),
			Keys:  keys,
		})
	}

	return tree, nil
}
