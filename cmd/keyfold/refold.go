package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/keyfold/internal/fold"
	"github.com/dgallion1/keyfold/internal/keyset"
	"github.com/dgallion1/keyfold/internal/picker"
	"github.com/dgallion1/keyfold/internal/view"
)

var refoldKeys string

var refoldCmd = &cobra.Command{
	Use:   "refold FILE",
	Short: "Pick visible keywords and print the folded document",
	Long: `Loads the document, prompts for the keywords to keep visible
(fuzzy multi-select: tab toggles, enter confirms), folds every subtree
matching none of them, and prints the result. Pass --keys to skip the
prompt. Cancelling the prompt keeps the previous (empty) selection, which
folds everything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		var p fold.Picker = &picker.Fzf{}
		if refoldKeys != "" {
			selection := keyset.New()
			for _, k := range strings.Split(refoldKeys, ",") {
				if k = strings.TrimSpace(k); k != "" {
					selection[k] = struct{}{}
				}
			}
			p = &picker.Static{Selection: selection}
		}

		tv := view.NewText(doc.Text)
		state := &fold.VisibilityState{}
		orch := fold.NewOrchestrator(doc, tv, p, state, slog.Default())
		if err := orch.Refold(); err != nil {
			return err
		}

		fmt.Print(tv.Render())
		return nil
	},
}

func init() {
	refoldCmd.Flags().StringVar(&refoldKeys, "keys", "", "comma-separated keywords to show (skips the interactive picker)")
}
