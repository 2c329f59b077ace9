package main

import (
	"github.com/spf13/cobra"

	"github.com/amonks/when/task"
)

var searchCmd = &cobra.Command{
	Use:   "search <text>...",
	Short: "Find tasks whose content contains text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var clashCmd = &cobra.Command{
	Use:   "clash <id>",
	Short: "List scheduled tasks that overlap a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runClash,
}

var withinCmd = &cobra.Command{
	Use:   "within [ids|timeframe]...",
	Short: "List tasks by id or by an overlapping timeframe",
	Long: `List tasks by id ("1, 4", "2..6") or, when the text is not a list of
ids, by a timeframe their own schedule overlaps ("next week", "mon to fri").
Without arguments every task is listed.`,
	RunE: runWithin,
}

var selectJSON bool

func init() {
	rootCmd.AddCommand(searchCmd, clashCmd, withinCmd)

	for _, cmd := range []*cobra.Command{searchCmd, clashCmd, withinCmd} {
		cmd.Flags().BoolVar(&selectJSON, "json", false, "Output as JSON")
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	tasks, err := a.store.Search(joinArgs(args))
	if err != nil {
		return err
	}
	return a.printSelection(tasks, "No matching tasks.")
}

func runClash(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	tasks, err := a.store.ClashWith(id)
	if err != nil {
		return err
	}
	return a.printSelection(tasks, "No clashes.")
}

func runWithin(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	tasks, err := a.store.Within(joinArgs(args))
	if err != nil {
		return err
	}
	return a.printSelection(tasks, "No tasks found.")
}

func (a *app) printSelection(tasks []task.Task, empty string) error {
	if selectJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSON(a.out, tasks)
	}
	printTaskTable(a.out, tasks, a.styles, a.now(), empty)
	return nil
}
