package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/amonks/when/internal/ui"
	"github.com/amonks/when/task"
)

// formatTaskTable renders tasks as an ID/WHEN/CONTENT table.
func formatTaskTable(tasks []task.Task, styles ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "WHEN", "CONTENT"}, len(tasks)).
		WithHeaderStyle(styles.Header)

	for _, t := range tasks {
		builder.AddRow([]string{
			styles.ID.Render(strconv.Itoa(t.ID)),
			styles.Schedule(t.Timeframe, t.Done, now),
			styles.Content(ui.TruncateTableCell(t.Content), t.Done),
		})
	}

	return builder.String()
}

func printTaskTable(w io.Writer, tasks []task.Task, styles ui.Styles, now time.Time, empty string) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	fmt.Fprint(w, formatTaskTable(tasks, styles, now))
}

// printTaskLine prints a one-line summary after a change.
func printTaskLine(w io.Writer, verb string, t task.Task, now time.Time) {
	fmt.Fprintf(w, "%s task %d: %s (%s)\n", verb, t.ID, t.Content, t.Timeframe.Format(now))
}

func printTaskDetail(w io.Writer, t task.Task, styles ui.Styles, width int, now time.Time) {
	status := "open"
	if t.Done {
		status = "done"
	}
	fmt.Fprintf(w, "ID:       %s\n", styles.ID.Render(strconv.Itoa(t.ID)))
	fmt.Fprintf(w, "When:     %s\n", styles.Schedule(t.Timeframe, t.Done, now))
	fmt.Fprintf(w, "Kind:     %s\n", t.Timeframe.Kind())
	if start, ok := t.Timeframe.Start(); ok {
		fmt.Fprintf(w, "Start:    %s\n", start)
	}
	if end, ok := t.Timeframe.End(); ok {
		fmt.Fprintf(w, "End:      %s\n", end)
	}
	fmt.Fprintf(w, "Status:   %s\n", status)
	fmt.Fprintf(w, "Created:  %s\n", ui.FormatTimeAgo(t.CreatedAt, now))
	fmt.Fprintf(w, "Updated:  %s\n", ui.FormatTimeAgo(t.UpdatedAt, now))
	fmt.Fprintf(w, "\nContent:\n%s\n", ui.Wrap(t.Content, width, 2))
}
