package main

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/amonks/when/internal/validation"
	"github.com/amonks/when/task"
)

// listView names a built-in selection of tasks.
type listView string

const (
	viewAll      listView = "all"
	viewToday    listView = "today"
	viewMissed   listView = "missed"
	viewUpcoming listView = "upcoming"
)

func validListViews() []listView {
	return []listView{viewAll, viewToday, viewMissed, viewUpcoming}
}

var errInvalidView = errors.New("invalid list view")

var listCmd = &cobra.Command{
	Use:   "list [all|today|missed|upcoming]",
	Short: "List tasks",
	Long: `List tasks in urgency order.

  all       every open task
  today     tasks that end today
  missed    open tasks that ended before today
  upcoming  open tasks that have started and end after today`,
	Aliases: []string{"ls"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runList,
}

var (
	listJSON bool
	listDone bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listDone, "done", false, "Include finished tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	view := viewAll
	if len(args) == 1 {
		view = listView(args[0])
	}

	now := a.now()
	var tasks []task.Task
	switch view {
	case viewAll:
		tasks, err = a.store.All()
		task.SortByUrgency(tasks)
	case viewToday:
		tasks, err = a.store.MustDo(now)
	case viewMissed:
		tasks, err = a.store.Missed(now)
	case viewUpcoming:
		tasks, err = a.store.ShouldDo(now)
	default:
		return validation.FormatInvalidValueError(errInvalidView, view, validListViews())
	}
	if err != nil {
		return err
	}

	if !listDone {
		tasks = slices.DeleteFunc(tasks, func(t task.Task) bool { return t.Done })
	}
	if listJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSON(a.out, tasks)
	}
	printTaskTable(a.out, tasks, a.styles, now, emptyListMessage(view, listDone))
	return nil
}

func emptyListMessage(view listView, includeDone bool) string {
	switch view {
	case viewToday:
		return "Nothing due today."
	case viewMissed:
		return "Nothing missed."
	case viewUpcoming:
		return "Nothing under way."
	}
	if !includeDone {
		return "No tasks found. Use --done to include finished tasks."
	}
	return "No tasks found."
}
