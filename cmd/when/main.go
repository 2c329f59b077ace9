// Package main implements the when CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "when",
	Short: "A task list that understands when things are due",
	Long: `when keeps a local task list. Tasks are added with a free-form
schedule in front of them:

  when add "by fri, send the report"
  when add "12 nov 8:30pm | birthday party"
  when add "mon to wed - conference"

Run "when help phrases" for the phrases it understands.`,
	SilenceUsage: true,
}

var (
	rootBackend string
	rootStore   string
	rootColor   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootBackend, "backend", "", "Store backend (jsonl, sqlite)")
	rootCmd.PersistentFlags().StringVar(&rootStore, "store", "", "Store file path")
	rootCmd.PersistentFlags().StringVar(&rootColor, "color", "", "Color output (auto, always, never)")
}
