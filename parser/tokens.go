package parser

import (
	"fmt"
	"strings"
	"time"
)

// maxIntDigits bounds integer literals so they fit an int on every platform.
const maxIntDigits = 9

// integer matches a run of digits.
func integer(s *scan, pos int) (int, int, bool) {
	end := pos
	for end < len(s.src) && isDigit(s.src[end]) {
		end++
	}
	if end == pos {
		s.failAt(pos, ErrLexicalMismatch, "expected a number")
		return 0, pos, false
	}
	if end-pos > maxIntDigits {
		s.failAt(end, ErrRangeViolation, "number too large")
		return 0, pos, false
	}
	n := 0
	for _, c := range s.src[pos:end] {
		n = n*10 + int(c-'0')
	}
	return n, end, true
}

// intIn matches an integer in [lo, hi]. Out-of-range values fail the rule.
func intIn(s *scan, pos, lo, hi int, what string) (int, int, bool) {
	n, end, ok := integer(s, pos)
	if !ok {
		return 0, pos, false
	}
	if n < lo || n > hi {
		s.failAt(end, ErrRangeViolation, fmt.Sprintf("%s %d not in %d-%d", what, n, lo, hi))
		return 0, pos, false
	}
	return n, end, true
}

func dayNumber(s *scan, pos int) (int, int, bool)   { return intIn(s, pos, 1, 31, "day") }
func monthNumber(s *scan, pos int) (int, int, bool) { return intIn(s, pos, 1, 12, "month") }
func hour(s *scan, pos int) (int, int, bool)        { return intIn(s, pos, 0, 24, "hour") }
func shortHour(s *scan, pos int) (int, int, bool)   { return intIn(s, pos, 0, 12, "hour") }
func minutes(s *scan, pos int) (int, int, bool)     { return intIn(s, pos, 0, 59, "minute") }
func seconds(s *scan, pos int) (int, int, bool)     { return intIn(s, pos, 0, 59, "second") }

// digitsExactly matches exactly n digits, whatever follows.
func digitsExactly(s *scan, pos, n int) (int, int, bool) {
	if pos+n > len(s.src) {
		s.failAt(pos, ErrLexicalMismatch, fmt.Sprintf("expected %d digits", n))
		return 0, pos, false
	}
	v := 0
	for i := pos; i < pos+n; i++ {
		c := s.src[i]
		if !isDigit(c) {
			s.failAt(i, ErrLexicalMismatch, fmt.Sprintf("expected %d digits", n))
			return 0, pos, false
		}
		v = v*10 + int(c-'0')
	}
	return v, pos + n, true
}

func longYear(s *scan, pos int) (int, int, bool) {
	return digitsExactly(s, pos, 4)
}

// shortYear matches two digits as 20xx. It refuses digits that start a
// time, as in "12 nov 11:30" or "12 nov 11 am".
func shortYear(s *scan, pos int) (int, int, bool) {
	v, end, ok := digitsExactly(s, pos, 2)
	if !ok {
		return 0, pos, false
	}
	if startsTime(s, end) {
		s.failAt(end, ErrLexicalMismatch, "two digits followed by a time")
		return 0, pos, false
	}
	return 2000 + v, end, true
}

func startsTime(s *scan, pos int) bool {
	pos = s.spaces(pos)
	if pos >= len(s.src) {
		return false
	}
	if c := s.src[pos]; c == '.' || c == ':' {
		return true
	}
	rest := s.lower[pos:]
	return strings.HasPrefix(rest, "am") || strings.HasPrefix(rest, "pm")
}

func year(s *scan, pos int) (int, int, bool) {
	return first(s, pos, longYear, shortYear)
}

type nameEntry struct {
	name  string
	value int
}

type nameTable []nameEntry

var (
	monthNames   = buildMonthNames()
	weekdayNames = buildWeekdayNames()
)

// Full names and three-letter abbreviations.
func buildMonthNames() nameTable {
	var t nameTable
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		t = append(t, nameEntry{full, int(m)}, nameEntry{full[:3], int(m)})
	}
	return t
}

func buildWeekdayNames() nameTable {
	var t nameTable
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		t = append(t, nameEntry{full, int(d)}, nameEntry{full[:3], int(d)})
	}
	return t
}

// match matches the longest entry of t at pos.
func (t nameTable) match(s *scan, pos int) (int, int, bool) {
	value, end := 0, -1
	for _, e := range t {
		if n, ok := s.word(pos, e.name); ok && n > end {
			value, end = e.value, n
		}
	}
	if end < 0 {
		return 0, pos, false
	}
	return value, end, true
}

func monthName(s *scan, pos int) (int, int, bool) { return monthNames.match(s, pos) }

func weekdayName(s *scan, pos int) (time.Weekday, int, bool) {
	v, end, ok := weekdayNames.match(s, pos)
	return time.Weekday(v), end, ok
}

func month(s *scan, pos int) (int, int, bool) {
	return first(s, pos, monthNumber, monthName)
}

// dateSep is ".", "/" or a run of at least one space.
func dateSep(s *scan, pos int) (int, bool) {
	if end, ok := s.padded(pos, '.'); ok {
		return end, true
	}
	if end, ok := s.padded(pos, '/'); ok {
		return end, true
	}
	if end := s.spaces(pos); end > pos {
		return end, true
	}
	s.failAt(pos, ErrLexicalMismatch, "expected a date separator")
	return pos, false
}

// timeSep is "." or ":".
func timeSep(s *scan, pos int) (int, bool) {
	if end, ok := s.padded(pos, '.'); ok {
		return end, true
	}
	return s.padded(pos, ':')
}

// dateTimeSep is " at ", ",", "-" or any run of spaces, possibly empty.
func dateTimeSep(s *scan, pos int) int {
	if end, ok := s.paddedWord(pos, "at"); ok {
		return end
	}
	if end, ok := s.padded(pos, ','); ok {
		return end
	}
	if end, ok := s.padded(pos, '-'); ok {
		return end
	}
	return s.spaces(pos)
}

func am(s *scan, pos int) (int, bool) { return s.paddedWord(pos, "am") }
func pm(s *scan, pos int) (int, bool) { return s.paddedWord(pos, "pm") }

// prefixBy matches the words that close a window.
func prefixBy(s *scan, pos int) (int, bool) {
	return anyWord(s, pos, "by", "before", "until", "till", "to")
}

// prefixFrom matches the words that open a window.
func prefixFrom(s *scan, pos int) (int, bool) {
	return anyWord(s, pos, "from", "after")
}

func anyWord(s *scan, pos int, words ...string) (int, bool) {
	for _, w := range words {
		if end, ok := s.word(pos, w); ok {
			return end, true
		}
	}
	return pos, false
}

// rangeJoin separates the start and end of a window: a By-class word or a
// dash, with optional spaces around it.
func rangeJoin(s *scan, pos int) (int, bool) {
	p := s.spaces(pos)
	if end, ok := prefixBy(s, p); ok {
		return s.spaces(end), true
	}
	if end, ok := s.padded(p, '-'); ok {
		return end, true
	}
	return pos, false
}
