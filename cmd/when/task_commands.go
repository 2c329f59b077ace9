package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/when/task"
)

// add
var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task",
	Long: `Add a task. The schedule is read from the start of the text:

  when add by fri, send the report
  when add "13 nov from 9am to noon | workshop"

With --timeframe the whole text is the content and the schedule comes from
the flag instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addTimeframe string
	addJSON      bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id> <content>...",
	Short: "Replace the content of a task",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

// reschedule
var rescheduleCmd = &cobra.Command{
	Use:     "reschedule <id> <timeframe>...",
	Short:   "Give a task a new timeframe",
	Aliases: []string{"move"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runReschedule,
}

// done
var doneCmd = &cobra.Command{
	Use:   "done <ids>...",
	Short: "Mark tasks as done",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// undone
var undoneCmd = &cobra.Command{
	Use:     "undone <ids>...",
	Short:   "Mark tasks as not done",
	Aliases: []string{"reopen"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runUndone,
}

// toggle
var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip whether a task is done",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

// delete
var deleteCmd = &cobra.Command{
	Use:     "delete <ids>...",
	Short:   "Delete tasks",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(addCmd, showCmd, editCmd, rescheduleCmd, doneCmd, undoneCmd, toggleCmd, deleteCmd)

	addCmd.Flags().StringVarP(&addTimeframe, "timeframe", "t", "", "Schedule for the task (e.g. \"by fri\")")
	addCmd.Flags().BoolVar(&addJSON, "json", false, "Output as JSON")
	addTimeframeFlagAliases(addCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	text := joinArgs(args)
	var created task.Task
	if cmd.Flags().Changed("timeframe") {
		tf, err := a.parser.ParseTimeframe(addTimeframe)
		if err != nil {
			return err
		}
		created, err = a.store.Create(text, task.CreateOptions{Timeframe: tf})
		if err != nil {
			return err
		}
	} else {
		created, err = a.store.Add(text)
		if err != nil {
			return err
		}
	}

	if addJSON {
		return encodeJSON(a.out, created)
	}
	printTaskLine(a.out, "Added", created, a.now())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	t, err := a.store.Get(id)
	if err != nil {
		return err
	}
	if showJSON {
		return encodeJSON(a.out, t)
	}
	printTaskDetail(a.out, t, a.styles, a.width, a.now())
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	t, err := a.store.Modify(id, joinArgs(args[1:]))
	if err != nil {
		return err
	}
	printTaskLine(a.out, "Updated", t, a.now())
	return nil
}

func runReschedule(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	t, err := a.store.Reschedule(id, joinArgs(args[1:]))
	if err != nil {
		return err
	}
	printTaskLine(a.out, "Rescheduled", t, a.now())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	return runSetDone(cmd, args, true)
}

func runUndone(cmd *cobra.Command, args []string) error {
	return runSetDone(cmd, args, false)
}

func runSetDone(cmd *cobra.Command, args []string, done bool) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	ids, err := parseIDArgs(a.parser, args)
	if err != nil {
		return err
	}

	tasks, err := a.store.SetDone(ids, done)
	if err != nil {
		return err
	}
	verb := "Reopened"
	if done {
		verb = "Finished"
	}
	for _, t := range tasks {
		printTaskLine(a.out, verb, t, a.now())
	}
	return nil
}

func runToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	t, err := a.store.Toggle(id)
	if err != nil {
		return err
	}
	verb := "Reopened"
	if t.Done {
		verb = "Finished"
	}
	printTaskLine(a.out, verb, t, a.now())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	ids, err := parseIDArgs(a.parser, args)
	if err != nil {
		return err
	}

	deleted, err := a.store.Delete(ids)
	if err != nil {
		return err
	}
	contents := make([]string, 0, len(deleted))
	for _, t := range deleted {
		contents = append(contents, fmt.Sprintf("%d (%s)", t.ID, t.Content))
	}
	fmt.Fprintf(a.out, "Deleted %s\n", strings.Join(contents, ", "))
	return nil
}
