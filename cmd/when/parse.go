package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/when/timeframe"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Show how a phrase is read, without storing anything",
	Args:  cobra.ArbitraryArgs,
	RunE:  runParse,
}

var (
	parseJSON bool
	parseTask bool
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output as JSON")
	parseCmd.Flags().BoolVar(&parseTask, "task", false, "Read the text as a task: a schedule followed by content")
}

type momentJSON struct {
	Time    time.Time `json:"time"`
	Precise bool      `json:"precise"`
}

type parseResultJSON struct {
	Kind    string      `json:"kind"`
	Start   *momentJSON `json:"start,omitempty"`
	End     *momentJSON `json:"end,omitempty"`
	Encoded string      `json:"encoded"`
	Display string      `json:"display"`
	Content string      `json:"content,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}

	text := joinArgs(args)
	var (
		tf      timeframe.Timeframe
		content string
	)
	if parseTask {
		content, tf, err = a.parser.ParseTask(text)
	} else {
		tf, err = a.parser.ParseTimeframe(text)
	}
	if err != nil {
		return err
	}

	now := a.now()
	if parseJSON {
		encoded, err := tf.MarshalText()
		if err != nil {
			return err
		}
		result := parseResultJSON{
			Kind:    tf.Kind().String(),
			Encoded: string(encoded),
			Display: tf.Format(now),
			Content: content,
		}
		if m, ok := tf.Start(); ok {
			result.Start = &momentJSON{Time: m.Time(), Precise: m.IsPrecise()}
		}
		if m, ok := tf.End(); ok {
			result.End = &momentJSON{Time: m.Time(), Precise: m.IsPrecise()}
		}
		return encodeJSON(a.out, result)
	}

	printParse(a.out, tf, content, parseTask, now)
	return nil
}

func printParse(w io.Writer, tf timeframe.Timeframe, content string, withContent bool, now time.Time) {
	fmt.Fprintf(w, "kind:    %s\n", tf.Kind())
	if m, ok := tf.Start(); ok {
		fmt.Fprintf(w, "start:   %s\n", describeMoment(m))
	}
	if m, ok := tf.End(); ok {
		fmt.Fprintf(w, "end:     %s\n", describeMoment(m))
	}
	fmt.Fprintf(w, "display: %s\n", tf.Format(now))
	if withContent {
		fmt.Fprintf(w, "content: %s\n", content)
	}
}

func describeMoment(m timeframe.Moment) string {
	if m.IsPrecise() {
		return m.Time().Format("2006-01-02 15:04:05")
	}
	return m.Time().Format("2006-01-02") + " (all day)"
}
