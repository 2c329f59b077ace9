package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/when/internal/config"
	"github.com/amonks/when/internal/markdown"
	"github.com/amonks/when/internal/ui"
)

//go:embed phrases.md
var phrasesDoc []byte

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpPhrasesCmd = &cobra.Command{
	Use:   "phrases",
	Short: "Show the scheduling phrases when understands",
	Args:  cobra.NoArgs,
	RunE:  runHelpPhrases,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpPhrasesCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

// runHelpPhrases renders without opening the store, so it works before
// anything is configured.
func runHelpPhrases(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	mode := rootColor
	if mode == "" {
		mode = string(config.ColorAuto)
	}
	color := ui.ColorEnabled(mode, out)
	width := ui.TerminalWidth(out, config.DefaultWidth)

	rendered := markdown.Render(width, 0, color, phrasesDoc)
	if len(rendered) == 0 {
		rendered = phrasesDoc
	}
	_, err := fmt.Fprintln(out, string(rendered))
	return err
}
