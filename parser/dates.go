package parser

import "time"

// Date rules return local midnight of the matched day.

// date is the longest of the date productions.
func date(s *scan, pos int) (time.Time, int, bool) {
	return cached(s, "date", pos, func(s *scan, pos int) (time.Time, int, bool) {
		return longest(s, pos,
			completeDate,
			shortDateFuture,
			todayDate,
			tomorrowDate,
			yesterdayDate,
			weekdaySpecifiedDate,
			nextWeekdayDate,
			thisWeekdayDate,
			weekdayNextWeekDate,
			weekdayDate,
		)
	})
}

func todayDate(s *scan, pos int) (time.Time, int, bool) {
	return relativeDay(s, pos, "today", 0)
}

func tomorrowDate(s *scan, pos int) (time.Time, int, bool) {
	return relativeDay(s, pos, "tomorrow", 1)
}

func yesterdayDate(s *scan, pos int) (time.Time, int, bool) {
	return relativeDay(s, pos, "yesterday", -1)
}

func relativeDay(s *scan, pos int, w string, offset int) (time.Time, int, bool) {
	end, ok := s.word(pos, w)
	if !ok {
		return time.Time{}, pos, false
	}
	return addDays(s.refDay(), offset), end, true
}

// weekdayDate resolves a bare weekday to its next occurrence, today
// included.
func weekdayDate(s *scan, pos int) (time.Time, int, bool) {
	wd, end, ok := weekdayName(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	return nextWeekday(s.refDay(), wd), end, true
}

// nextWeekdayDate is "next <weekday>": this week's weekday plus seven days.
func nextWeekdayDate(s *scan, pos int) (time.Time, int, bool) {
	end, ok := s.word(pos, "next")
	if !ok {
		return time.Time{}, pos, false
	}
	wd, end, ok := weekdayName(s, s.spaces(end))
	if !ok {
		return time.Time{}, pos, false
	}
	return addDays(sameWeek(s.refDay(), wd), 7), end, true
}

// thisWeekdayDate is "this <weekday>", in the current Sunday-first week.
// It may be in the past.
func thisWeekdayDate(s *scan, pos int) (time.Time, int, bool) {
	end, ok := s.word(pos, "this")
	if !ok {
		return time.Time{}, pos, false
	}
	wd, end, ok := weekdayName(s, s.spaces(end))
	if !ok {
		return time.Time{}, pos, false
	}
	return sameWeek(s.refDay(), wd), end, true
}

// weekdayNextWeekDate is "<weekday> next week".
func weekdayNextWeekDate(s *scan, pos int) (time.Time, int, bool) {
	wd, end, ok := weekdayName(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	if end, ok = s.word(s.spaces(end), "next"); !ok {
		return time.Time{}, pos, false
	}
	if end, ok = s.word(s.spaces(end), "week"); !ok {
		return time.Time{}, pos, false
	}
	return addDays(sameWeek(s.refDay(), wd), 7), end, true
}

// dayAndMonth matches "day sep month", the month given as a number or a
// name.
func dayAndMonth(s *scan, pos int) (d, m, end int, ok bool) {
	d, end, ok = dayNumber(s, pos)
	if !ok {
		return 0, 0, pos, false
	}
	if end, ok = dateSep(s, end); !ok {
		return 0, 0, pos, false
	}
	m, end, ok = month(s, end)
	if !ok {
		return 0, 0, pos, false
	}
	return d, m, end, true
}

// shortDate is a day and month in the reference year.
func shortDate(s *scan, pos int) (time.Time, int, bool) {
	d, m, end, ok := dayAndMonth(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	return calendarDay(s.ref.Year(), m, d, s.ref.Location()), end, true
}

// shortDateFuture is a day and month moved to next year when it would fall
// before the reference day.
func shortDateFuture(s *scan, pos int) (time.Time, int, bool) {
	d, m, end, ok := dayAndMonth(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	t := calendarDay(s.ref.Year(), m, d, s.ref.Location())
	if t.Before(s.refDay()) {
		t = calendarDay(s.ref.Year()+1, m, d, s.ref.Location())
	}
	return t, end, true
}

// completeDate is "day sep month sep year".
func completeDate(s *scan, pos int) (time.Time, int, bool) {
	d, m, end, ok := dayAndMonth(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	if end, ok = dateSep(s, end); !ok {
		return time.Time{}, pos, false
	}
	y, end, ok := year(s, end)
	if !ok {
		return time.Time{}, pos, false
	}
	return calendarDay(y, m, d, s.ref.Location()), end, true
}

// weekdaySpecifiedDate is a weekday followed by a date, as in
// "fri 4 nov 2011". The weekday must be the date's weekday.
func weekdaySpecifiedDate(s *scan, pos int) (time.Time, int, bool) {
	wd, end, ok := weekdayName(s, pos)
	if !ok {
		return time.Time{}, pos, false
	}
	if comma, ok := s.padded(end, ','); ok {
		end = comma
	} else {
		end = s.spaces(end)
	}
	t, end, ok := first(s, end, completeDate, shortDateFuture)
	if !ok {
		return time.Time{}, pos, false
	}
	if t.Weekday() != wd {
		s.failAt(end, ErrWeekdayMismatch, t.Format("2 Jan 2006")+" is a "+t.Weekday().String())
		return time.Time{}, pos, false
	}
	return t, end, true
}

// calendarDay builds a date. Out-of-month days roll over into the next
// month, so 31 feb is 2 or 3 march.
func calendarDay(y, m, d int, loc *time.Location) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

func addDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// nextWeekday returns the first day on or after day that falls on wd.
func nextWeekday(day time.Time, wd time.Weekday) time.Time {
	diff := (int(wd) - int(day.Weekday()) + 7) % 7
	return addDays(day, diff)
}

// sameWeek returns wd in day's Sunday-first week.
func sameWeek(day time.Time, wd time.Weekday) time.Time {
	return addDays(day, int(wd)-int(day.Weekday()))
}
