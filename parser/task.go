package parser

import (
	"strings"

	"github.com/amonks/when/timeframe"
)

// task is the result of a task rule: the schedule and the content text.
type task struct {
	content string
	tf      timeframe.Timeframe
}

// strictTask is "<timeframe> | <content>". It is used whenever the text
// contains a bar.
func strictTask(s *scan, pos int) (task, int, bool) {
	tf, end, ok := timeframeRule(s, pos)
	if !ok {
		return task{}, pos, false
	}
	if end, ok = s.padded(end, '|'); !ok {
		return task{}, pos, false
	}
	return content(s, pos, end, tf)
}

// looseTask is a timeframe, then a comma, a dash or spaces, then the
// content. The separator may be empty: "12 nov 8:30pm party".
func looseTask(s *scan, pos int) (task, int, bool) {
	tf, end, ok := timeframeRule(s, pos)
	if !ok {
		return task{}, pos, false
	}
	if p, ok := s.padded(end, ','); ok {
		end = p
	} else if p, ok := s.padded(end, '-'); ok {
		end = p
	} else {
		end = s.spaces(end)
	}
	return content(s, pos, end, tf)
}

// content takes everything from end to the end of the input. It must not be
// empty.
func content(s *scan, pos, end int, tf timeframe.Timeframe) (task, int, bool) {
	if end >= len(s.src) {
		s.failAt(end, ErrLexicalMismatch, "expected task content")
		return task{}, pos, false
	}
	return task{content: s.src[end:], tf: tf}, len(s.src), true
}

func isStrict(text string) bool {
	return strings.Contains(text, "|")
}
