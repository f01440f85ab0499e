package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dgallion1/keyfold/internal/config"
	"github.com/dgallion1/keyfold/internal/doctree"
	"github.com/dgallion1/keyfold/internal/parser"
)

var keysAttr string

var rootCmd = &cobra.Command{
	Use:   "keyfold",
	Short: "Fold documents down to the parts matching chosen keywords",
	Long: `keyfold reads a markup document whose elements carry keyword
attributes, lets you pick the keywords you care about, and folds away
every subtree that matches none of them.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&keysAttr, "attr", config.Load().KeysAttr,
		"attribute (or CSV column) carrying a node's keywords")
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(refoldCmd)
}

// loadDocument parses and lays out one document file.
func loadDocument(path string) (*doctree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := filepath.Base(path)
	p, err := parser.ForFile(name, keysAttr)
	if err != nil {
		return nil, err
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = true
	}

	doc, err := p.Parse(f, name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	doc.Layout()
	return doc, nil
}
