package parser

import (
	"time"

	"github.com/amonks/when/timeframe"
)

// Normalizers repair the end of a window whose end marker left part of the
// date unsaid. They only look at the pair they are given.

// timeFixed puts end's clock on start's calendar date. When start is
// precise and that is not after it, the end moves to the next day.
func timeFixed(start, end timeframe.Moment) timeframe.Moment {
	t := clockOf(end.Time()).on(start.Time())
	if start.IsPrecise() && !t.After(start.Time()) {
		t = addDays(t, 1)
	}
	return timeframe.Precisely(t)
}

// dateFixed gives end the start's year, and the year after when that is
// not after start.
func dateFixed(start, end timeframe.Moment) timeframe.Moment {
	e := end.Time()
	_, m, d := e.Date()
	h, mi, sec := e.Clock()
	t := time.Date(start.Time().Year(), m, d, h, mi, sec, 0, e.Location())
	if !t.After(start.Time()) {
		t = t.AddDate(1, 0, 0)
	}
	return timeframe.NewMoment(t, end.Precision())
}

// weekdayFixed moves an end named only by its weekday to the first such
// weekday after start's date, when start is not already before it. The
// move is always at least one day.
func weekdayFixed(start, end timeframe.Moment) timeframe.Moment {
	s, e := start.Time(), end.Time()
	if s.Before(e) {
		return end
	}
	diff := (int(e.Weekday())-int(s.Weekday())+6)%7 + 1
	t := clockOf(e).on(addDays(timeframe.StartOfDay(s), diff))
	return timeframe.NewMoment(t, end.Precision())
}

// ordered reports whether end is strictly after start, with a day start
// taken from its midnight.
func ordered(start, end timeframe.Moment) bool {
	return end.After(start.Floor())
}
