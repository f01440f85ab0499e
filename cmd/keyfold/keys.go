package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dgallion1/keyfold/internal/extract"
)

var keyStyle = lipgloss.NewStyle().Bold(true)

var keysCmd = &cobra.Command{
	Use:   "keys FILE",
	Short: "List every keyword present in the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		universe := extract.SubtreeKeys(doc.Root)
		if universe.Empty() {
			fmt.Printf("no %q keywords found in %s\n", keysAttr, args[0])
			return nil
		}
		for _, k := range universe.Sorted() {
			fmt.Println(keyStyle.Render(k))
		}
		return nil
	},
}
