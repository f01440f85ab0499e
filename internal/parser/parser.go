package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/keyfold/internal/doctree"
)

// Parser converts raw document bytes into a keyword-bearing doctree.
// Parsers populate tree structure and per-node keyword strings; callers
// run Layout on the result to assign display spans.
type Parser interface {
	Parse(r io.Reader, filename string) (*doctree.Document, error)
}

// DefaultKeysAttr is the attribute (or column, or marker) name that carries
// a node's keywords when no override is configured.
const DefaultKeysAttr = "keys"

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".html": true,
	".htm":  true,
	".xml":  true,
	".sgml": true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename. keysAttr names the
// keyword attribute; pass "" for the default.
func ForFile(filename, keysAttr string) (Parser, error) {
	if keysAttr == "" {
		keysAttr = DefaultKeysAttr
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{KeysAttr: keysAttr}, nil
	case ".csv":
		return &CSVParser{KeysColumn: keysAttr}, nil
	case ".html", ".htm":
		return &HTMLParser{KeysAttr: keysAttr}, nil
	case ".xml", ".sgml":
		return &XMLParser{KeysAttr: keysAttr}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
