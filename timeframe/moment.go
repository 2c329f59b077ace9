// Package timeframe models scheduling windows built from precision-tagged
// instants.
//
// A Moment is an instant tagged with the precision the user gave it: a
// calendar day ("13 nov") or an exact second ("13 nov 9pm"). Day moments
// compare by calendar day only. A Timeframe is one of five shapes:
//   - FixPoint: a single moment acting as both start and end
//   - By: an open start and a bounded end
//   - From: a bounded start and an open end
//   - Between: a bounded start and end
//   - Whenever: unconstrained
//
// The interval predicates (StartsBefore, EndsAfter, Superimpose, ...) are
// the operations task lists use to classify and clash-check schedules.
package timeframe

import (
	"fmt"
	"time"
)

// Precision tells how a Moment compares against instants.
type Precision uint8

const (
	// Day compares by calendar day, ignoring the time of day.
	Day Precision = iota

	// Second compares exact instants.
	Second
)

// String returns the lowercase precision name.
func (p Precision) String() string {
	switch p {
	case Day:
		return "day"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("precision(%d)", uint8(p))
	}
}

// Moment is an instant tagged with a Precision. The zero value is a
// day-precision moment at the zero time.
type Moment struct {
	t time.Time
	p Precision
}

// NewMoment builds a Moment from an instant and an explicit precision.
// Day moments are stored at local midnight of t's day; second moments drop
// any sub-second part.
func NewMoment(t time.Time, p Precision) Moment {
	if p == Day {
		return Moment{t: StartOfDay(t), p: Day}
	}
	return Moment{t: t.Truncate(time.Second), p: Second}
}

// OnTheDay returns a day-precision moment for t's calendar day.
func OnTheDay(t time.Time) Moment {
	return NewMoment(t, Day)
}

// Precisely returns a second-precision moment at t.
func Precisely(t time.Time) Moment {
	return NewMoment(t, Second)
}

// MomentFromUnixMilli rebuilds a stored moment without going through the
// grammar.
func MomentFromUnixMilli(ms int64, p Precision) Moment {
	return NewMoment(time.UnixMilli(ms), p)
}

// Time returns the underlying instant.
func (m Moment) Time() time.Time { return m.t }

// Precision returns the moment's precision.
func (m Moment) Precision() Precision { return m.p }

// IsPrecise reports whether the moment has second precision.
func (m Moment) IsPrecise() bool { return m.p == Second }

// UnixMilli returns the instant in milliseconds since the Unix epoch.
func (m Moment) UnixMilli() int64 { return m.t.UnixMilli() }

// Floor returns the moment's instant, moved to midnight when the moment has
// day precision.
func (m Moment) Floor() time.Time {
	if m.p == Day {
		return StartOfDay(m.t)
	}
	return m.t
}

// Before reports whether the moment is before t. A day moment is never
// before an instant on its own calendar day.
func (m Moment) Before(t time.Time) bool {
	switch m.p {
	case Day:
		return m.t.Before(t) && !m.SameDay(t)
	default:
		return m.t.Before(t)
	}
}

// After reports whether the moment is after t. A day moment is never after
// an instant on its own calendar day.
func (m Moment) After(t time.Time) bool {
	switch m.p {
	case Day:
		return m.t.After(t) && !m.SameDay(t)
	default:
		return m.t.After(t)
	}
}

// SameTime reports exact equality for second moments and same-day for day
// moments.
func (m Moment) SameTime(t time.Time) bool {
	switch m.p {
	case Day:
		return m.SameDay(t)
	default:
		return m.t.Equal(t)
	}
}

// SameDay reports whether t falls on the moment's calendar day, whatever the
// precision.
func (m Moment) SameDay(t time.Time) bool {
	y1, d1 := m.t.Year(), m.t.YearDay()
	t = t.In(m.t.Location())
	return y1 == t.Year() && d1 == t.YearDay()
}

// Equal reports whether two moments have the same instant and precision.
func (m Moment) Equal(o Moment) bool {
	return m.p == o.p && m.t.Equal(o.t)
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
