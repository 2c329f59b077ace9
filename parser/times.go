package parser

import "time"

// clock is a time of day. hour may be 24, which rolls into the next day.
type clock struct {
	hour, minute, sec int
}

// on stamps c onto day's calendar date.
func (c clock) on(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.hour, c.minute, c.sec, 0, day.Location())
}

func clockOf(t time.Time) clock {
	h, m, s := t.Clock()
	return clock{h, m, s}
}

// timeOfDay is an ordered choice: the first production that matches wins.
func timeOfDay(s *scan, pos int) (clock, int, bool) {
	return cached(s, "time", pos, func(s *scan, pos int) (clock, int, bool) {
		return first(s, pos,
			namedTime,
			onlyHourAM,
			onlyHourPM,
			shortTimeAM,
			shortTimePM,
			completeTimeAM,
			completeTimePM,
			completeTime,
			shortTime,
		)
	})
}

// namedTime is noon, midday or midnight. Midnight is the last second of
// the day.
func namedTime(s *scan, pos int) (clock, int, bool) {
	for _, w := range []string{"noon", "midday"} {
		if end, ok := s.paddedWord(pos, w); ok {
			return clock{12, 0, 0}, end, true
		}
	}
	if end, ok := s.paddedWord(pos, "midnight"); ok {
		return clock{23, 59, 59}, end, true
	}
	return clock{}, pos, false
}

// hourMinute matches "H sep M" with the hour read by h.
func hourMinute(s *scan, pos int, h rule[int]) (hr, minute, end int, ok bool) {
	hr, end, ok = h(s, pos)
	if !ok {
		return 0, 0, pos, false
	}
	if end, ok = timeSep(s, end); !ok {
		return 0, 0, pos, false
	}
	minute, end, ok = minutes(s, end)
	if !ok {
		return 0, 0, pos, false
	}
	return hr, minute, end, true
}

// hourMinuteSecond matches "H sep M sep S" with the hour read by h.
func hourMinuteSecond(s *scan, pos int, h rule[int]) (c clock, end int, ok bool) {
	hr, minute, end, ok := hourMinute(s, pos, h)
	if !ok {
		return clock{}, pos, false
	}
	if end, ok = timeSep(s, end); !ok {
		return clock{}, pos, false
	}
	sec, end, ok := seconds(s, end)
	if !ok {
		return clock{}, pos, false
	}
	return clock{hr, minute, sec}, end, true
}

func shortTime(s *scan, pos int) (clock, int, bool) {
	h, m, end, ok := hourMinute(s, pos, hour)
	if !ok {
		return clock{}, pos, false
	}
	return clock{h, m, 0}, end, true
}

func completeTime(s *scan, pos int) (clock, int, bool) {
	c, end, ok := hourMinuteSecond(s, pos, hour)
	if !ok {
		return clock{}, pos, false
	}
	return c, end, true
}

// meridiem is the am or pm marker and how it maps a 12-hour clock hour.
type meridiem struct {
	marker func(s *scan, pos int) (int, bool)
	offset int
}

var (
	morning   = meridiem{marker: am, offset: 0}
	afternoon = meridiem{marker: pm, offset: 12}
)

func (md meridiem) hour(h int) int { return md.offset + h%12 }

func (md meridiem) onlyHour(s *scan, pos int) (clock, int, bool) {
	h, end, ok := shortHour(s, pos)
	if !ok {
		return clock{}, pos, false
	}
	if end, ok = md.marker(s, end); !ok {
		return clock{}, pos, false
	}
	return clock{md.hour(h), 0, 0}, end, true
}

func (md meridiem) short(s *scan, pos int) (clock, int, bool) {
	h, m, end, ok := hourMinute(s, pos, shortHour)
	if !ok {
		return clock{}, pos, false
	}
	if end, ok = md.marker(s, end); !ok {
		return clock{}, pos, false
	}
	return clock{md.hour(h), m, 0}, end, true
}

func (md meridiem) complete(s *scan, pos int) (clock, int, bool) {
	c, end, ok := hourMinuteSecond(s, pos, shortHour)
	if !ok {
		return clock{}, pos, false
	}
	if end, ok = md.marker(s, end); !ok {
		return clock{}, pos, false
	}
	c.hour = md.hour(c.hour)
	return c, end, true
}

func onlyHourAM(s *scan, pos int) (clock, int, bool)     { return morning.onlyHour(s, pos) }
func onlyHourPM(s *scan, pos int) (clock, int, bool)     { return afternoon.onlyHour(s, pos) }
func shortTimeAM(s *scan, pos int) (clock, int, bool)    { return morning.short(s, pos) }
func shortTimePM(s *scan, pos int) (clock, int, bool)    { return afternoon.short(s, pos) }
func completeTimeAM(s *scan, pos int) (clock, int, bool) { return morning.complete(s, pos) }
func completeTimePM(s *scan, pos int) (clock, int, bool) { return afternoon.complete(s, pos) }
