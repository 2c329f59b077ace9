package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/amonks/when/timeframe"
)

// Styles holds the styles task output is rendered with.
type Styles struct {
	Header   lipgloss.Style
	ID       lipgloss.Style
	Overdue  lipgloss.Style
	Today    lipgloss.Style
	Done     lipgloss.Style
	Whenever lipgloss.Style
}

// NewStyles returns styles rendering to w. Without color every style
// renders text unchanged.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		ID:       r.NewStyle().Foreground(lipgloss.Color("36")),
		Overdue:  r.NewStyle().Foreground(lipgloss.Color("196")),
		Today:    r.NewStyle().Bold(true),
		Done:     r.NewStyle().Faint(true).Strikethrough(true),
		Whenever: r.NewStyle().Faint(true),
	}
}

// Schedule renders a timeframe relative to now. Finished tasks are faint,
// unfinished ones that have ended are red and ones ending today are bold.
func (s Styles) Schedule(tf timeframe.Timeframe, done bool, now time.Time) string {
	text := tf.Format(now)
	switch {
	case done:
		return s.Done.Render(text)
	case tf.Kind() == timeframe.KindWhenever:
		return s.Whenever.Render(text)
	case tf.EndsBefore(now):
		return s.Overdue.Render(text)
	case tf.EndsOnTheSameDay(now) || tf.StartsTheSameDay(now):
		return s.Today.Render(text)
	default:
		return text
	}
}

// Content renders task content, struck through when done.
func (s Styles) Content(content string, done bool) string {
	if done {
		return s.Done.Render(content)
	}
	return content
}
