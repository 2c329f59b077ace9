package parser

import (
	"strings"
	"time"
)

// A rule matches a production at pos. On success it returns the value and
// the position just past the match. On failure it records why on the scan and
// returns ok=false; the returned position is meaningless.
//
// Rules are plain functions so sequences read top to bottom. Once a sequence
// has taken an alternative it never comes back to try another one: choice
// happens only inside first and longest.
type rule[T any] = func(s *scan, pos int) (T, int, bool)

// scan is the state of one top-level parse call.
type scan struct {
	src   string // trimmed input
	lower string // src with ASCII letters lowered, same offsets as src
	ref   time.Time

	fail failure
	// mismatch is the first weekday/date disagreement seen. It fails the
	// whole parse even when another alternative matched.
	mismatch *failure
	memo     map[memoKey]memoEntry
}

type failure struct {
	pos    int
	kind   error
	detail string
}

type memoKey struct {
	name string
	pos  int
}

type memoEntry struct {
	v   any
	end int
	ok  bool
}

func newScan(src string, ref time.Time) *scan {
	return &scan{
		src:   src,
		lower: asciiLower(src),
		ref:   ref.Truncate(time.Second),
		fail:  failure{pos: -1},
		memo:  make(map[memoKey]memoEntry),
	}
}

// failAt records a failure. The deepest failure is kept; at equal depth a
// specific kind replaces a lexical mismatch.
func (s *scan) failAt(pos int, kind error, detail string) {
	if kind == ErrWeekdayMismatch && s.mismatch == nil {
		s.mismatch = &failure{pos: pos, kind: kind, detail: detail}
	}
	switch {
	case pos > s.fail.pos:
	case pos == s.fail.pos && s.fail.kind == ErrLexicalMismatch && kind != ErrLexicalMismatch:
	default:
		return
	}
	s.fail = failure{pos: pos, kind: kind, detail: detail}
}

// refDay is local midnight of the reference instant.
func (s *scan) refDay() time.Time {
	y, m, d := s.ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.ref.Location())
}

// longest runs every alternative at pos and keeps the one that consumed the
// most input. Ties go to the alternative listed first.
func longest[T any](s *scan, pos int, alts ...rule[T]) (T, int, bool) {
	var best T
	bestEnd := -1
	for _, alt := range alts {
		v, end, ok := alt(s, pos)
		if ok && end > bestEnd {
			best, bestEnd = v, end
		}
	}
	if bestEnd < 0 {
		var zero T
		return zero, pos, false
	}
	return best, bestEnd, true
}

// first returns the first alternative that matches at pos.
func first[T any](s *scan, pos int, alts ...rule[T]) (T, int, bool) {
	for _, alt := range alts {
		if v, end, ok := alt(s, pos); ok {
			return v, end, true
		}
	}
	var zero T
	return zero, pos, false
}

// cached memoizes r at pos under name for the rest of the scan. Failures
// were already recorded the first time round.
func cached[T any](s *scan, name string, pos int, r rule[T]) (T, int, bool) {
	key := memoKey{name: name, pos: pos}
	if e, ok := s.memo[key]; ok {
		v, _ := e.v.(T)
		return v, e.end, e.ok
	}
	v, end, ok := r(s, pos)
	s.memo[key] = memoEntry{v: v, end: end, ok: ok}
	return v, end, ok
}

// spaces skips zero or more spaces. Only ' ' counts as whitespace.
func (s *scan) spaces(pos int) int {
	for pos < len(s.src) && s.src[pos] == ' ' {
		pos++
	}
	return pos
}

// char matches a single byte.
func (s *scan) char(pos int, c byte) (int, bool) {
	if pos < len(s.src) && s.src[pos] == c {
		return pos + 1, true
	}
	s.failAt(pos, ErrLexicalMismatch, `expected "`+string(c)+`"`)
	return pos, false
}

// word matches a lowercase keyword case-insensitively. The keyword must not
// run on into another letter: "mon" does not match the start of "month".
func (s *scan) word(pos int, w string) (int, bool) {
	if !strings.HasPrefix(s.lower[pos:], w) {
		s.failAt(pos, ErrLexicalMismatch, `expected "`+w+`"`)
		return pos, false
	}
	end := pos + len(w)
	if end < len(s.src) && isLetter(s.src[end]) {
		s.failAt(end, ErrLexicalMismatch, `expected end of "`+w+`"`)
		return pos, false
	}
	return end, true
}

// padded matches c surrounded by optional spaces.
func (s *scan) padded(pos int, c byte) (int, bool) {
	pos, ok := s.char(s.spaces(pos), c)
	if !ok {
		return pos, false
	}
	return s.spaces(pos), true
}

// paddedWord matches w surrounded by optional spaces.
func (s *scan) paddedWord(pos int, w string) (int, bool) {
	pos, ok := s.word(s.spaces(pos), w)
	if !ok {
		return pos, false
	}
	return s.spaces(pos), true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
