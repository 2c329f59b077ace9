package parser

import (
	"github.com/amonks/when/timeframe"
)

// timeframeRule is the longest of the timeframe productions. Declaration
// order breaks ties, which is why the future forms come before the generic
// window and Whenever comes before FixPoint.
func timeframeRule(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	return longest(s, pos,
		byFrame,
		fromFrame,
		betweenDateFromTime,
		betweenDateFromTimeToTime,
		betweenFutureTime,
		betweenFutureDate,
		betweenFutureWeekday,
		betweenFrame,
		wheneverFrame,
		fixPointFrame,
	)
}

// fixPointFrame is "[at] <moment>".
func fixPointFrame(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	p := pos
	if end, ok := s.word(p, "at"); ok {
		p = end
	}
	m, end, ok := moment(s, s.spaces(p))
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return timeframe.FixPoint(m), end, true
}

// byFrame is "by|before|until|till|to <moment>".
func byFrame(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	end, ok := prefixBy(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	m, end, ok := moment(s, s.spaces(end))
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return timeframe.By(m), end, true
}

// fromFrame is "from|after <moment>".
func fromFrame(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	end, ok := prefixFrom(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	m, end, ok := moment(s, s.spaces(end))
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return timeframe.From(m), end, true
}

// wheneverFrame is an optional "whenever". It always matches.
func wheneverFrame(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	if end, ok := s.word(pos, "whenever"); ok {
		return timeframe.Whenever(), end, true
	}
	return timeframe.Whenever(), pos, true
}

// betweenDateFromTime is "<date> from <time>": from that time to the end of
// the day.
func betweenDateFromTime(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := dateFromTime(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, timeframe.OnTheDay(start.Time()))
}

// betweenDateFromTimeToTime is "<date> from <time> to <time>".
func betweenDateFromTimeToTime(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := dateFromTime(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	if end, ok = rangeJoin(s, end); !ok {
		return timeframe.Timeframe{}, pos, false
	}
	c, end, ok := timeOfDay(s, end)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, timeFixed(start, timeframe.Precisely(c.on(s.refDay()))))
}

// rangeStart is "[from] <moment>" followed by the join word.
func rangeStart(s *scan, pos int) (timeframe.Moment, int, bool) {
	return cached(s, "rangeStart", pos, func(s *scan, pos int) (timeframe.Moment, int, bool) {
		p := pos
		if end, ok := prefixFrom(s, p); ok {
			p = s.spaces(end)
		}
		m, end, ok := moment(s, p)
		if !ok {
			return timeframe.Moment{}, pos, false
		}
		if end, ok = rangeJoin(s, end); !ok {
			return timeframe.Moment{}, pos, false
		}
		return m, end, true
	})
}

// betweenFutureTime ends at a bare time: "9pm to 3am".
func betweenFutureTime(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := rangeStart(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	c, end, ok := timeOfDay(s, end)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, timeFixed(start, timeframe.Precisely(c.on(s.refDay()))))
}

// betweenFutureDate ends at a day and month without a year:
// "23 oct 2024 to 25 oct".
func betweenFutureDate(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := rangeStart(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	last, end, ok := first(s, end, shortDateAndTime, shortDateMoment)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, dateFixed(start, last))
}

// betweenFutureWeekday ends at a weekday: "mon to fri".
func betweenFutureWeekday(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := rangeStart(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	last, end, ok := first(s, end, weekdayAndTime, weekdayMoment)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, weekdayFixed(start, last))
}

// betweenFrame has both ends fully given. The end must be after the start.
func betweenFrame(s *scan, pos int) (timeframe.Timeframe, int, bool) {
	start, end, ok := rangeStart(s, pos)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	last, end, ok := moment(s, end)
	if !ok {
		return timeframe.Timeframe{}, pos, false
	}
	if !ordered(start, last) {
		s.failAt(end, ErrOrderViolation, "window ends before it starts")
		return timeframe.Timeframe{}, pos, false
	}
	return between(s, pos, end, start, last)
}

func between(s *scan, pos, end int, start, last timeframe.Moment) (timeframe.Timeframe, int, bool) {
	tf, err := timeframe.NewBetween(start, last)
	if err != nil {
		s.failAt(end, ErrOrderViolation, err.Error())
		return timeframe.Timeframe{}, pos, false
	}
	return tf, end, true
}

func shortDateMoment(s *scan, pos int) (timeframe.Moment, int, bool) {
	d, end, ok := shortDate(s, pos)
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	return timeframe.OnTheDay(d), end, true
}

func weekdayMoment(s *scan, pos int) (timeframe.Moment, int, bool) {
	d, end, ok := weekdayDate(s, pos)
	if !ok {
		return timeframe.Moment{}, pos, false
	}
	return timeframe.OnTheDay(d), end, true
}
