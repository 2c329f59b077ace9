package parser

import (
	"time"

	"github.com/amonks/when/timeframe"
)

// moment is the longest of date-and-time, date alone and time alone.
func moment(s *scan, pos int) (timeframe.Moment, int, bool) {
	return cached(s, "moment", pos, func(s *scan, pos int) (timeframe.Moment, int, bool) {
		return longest(s, pos, dateAndTime, onlyDate, onlyTime)
	})
}

// onlyDate is a date with day precision.
func onlyDate(s *scan, pos int) (timeframe.Moment, int, bool) {
	d, end, ok := date(s, pos)
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	return timeframe.OnTheDay(d), end, true
}

// onlyTime is a time on the reference day.
func onlyTime(s *scan, pos int) (timeframe.Moment, int, bool) {
	c, end, ok := timeOfDay(s, pos)
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	return timeframe.Precisely(c.on(s.refDay())), end, true
}

func dateAndTime(s *scan, pos int) (timeframe.Moment, int, bool) {
	return withTime(s, pos, date)
}

func shortDateAndTime(s *scan, pos int) (timeframe.Moment, int, bool) {
	return withTime(s, pos, shortDate)
}

func weekdayAndTime(s *scan, pos int) (timeframe.Moment, int, bool) {
	return withTime(s, pos, weekdayDate)
}

// withTime matches a day from d, a date-time separator and a time. The
// result has the day's calendar date, the time's clock and second precision.
func withTime(s *scan, pos int, d rule[time.Time]) (timeframe.Moment, int, bool) {
	day, end, ok := d(s, pos)
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	c, end, ok := timeOfDay(s, dateTimeSep(s, end))
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	return timeframe.Precisely(c.on(day)), end, true
}

// dateFromTime is "<date> from <time>", as in "13 nov from 9am".
func dateFromTime(s *scan, pos int) (timeframe.Moment, int, bool) {
	return cached(s, "dateFromTime", pos, func(s *scan, pos int) (timeframe.Moment, int, bool) {
		day, end, ok := date(s, pos)
		if !ok {
			return timeframe.Moment{}, pos, false
		}
		if end, ok = s.paddedWord(end, "from"); !ok {
			return timeframe.Moment{}, pos, false
		}
		c, end, ok := timeOfDay(s, end)
		if !ok {
			return timeframe.Moment{}, pos, false
		}
		return timeframe.Precisely(c.on(day)), end, true
	})
}
