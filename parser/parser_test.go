package parser_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amonks/when/parser"
	"github.com/amonks/when/timeframe"
)

func newParser() *parser.Parser {
	now := time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)
	return parser.New(parser.Options{Now: func() time.Time { return now }})
}

func at(y int, m time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, m, d, h, mi, s, 0, time.Local)
}

func precise(y int, m time.Month, d, h, mi, s int) timeframe.Moment {
	return timeframe.Precisely(at(y, m, d, h, mi, s))
}

func onDay(y int, m time.Month, d int) timeframe.Moment {
	return timeframe.OnTheDay(at(y, m, d, 0, 0, 0))
}

func mustBetween(t *testing.T, start, end timeframe.Moment) timeframe.Timeframe {
	t.Helper()
	tf, err := timeframe.NewBetween(start, end)
	require.NoError(t, err)
	return tf
}

func TestParseIDList(t *testing.T) {
	p := newParser()

	tests := []struct {
		input string
		want  []int
	}{
		{" 10 ", []int{10}},
		{" 5, 3, 6", []int{5, 3, 6}},
		{"3..2", []int{}},
		{"2 ..2", []int{2}},
		{"1.. 3", []int{1, 2, 3}},
		{"1..3", []int{1, 2, 3}},
		{"", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseIDList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDListRejects(t *testing.T) {
	p := newParser()

	tests := []struct {
		input string
		kind  error
	}{
		{"5, 3, 6, ", parser.ErrLexicalMismatch},
		{"5, 6, 9 10", parser.ErrTrailingInput},
		{"1.. 300000", parser.ErrRangeViolation},
		{"one", parser.ErrTrailingInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.ParseIDList(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParseTimeframe(t *testing.T) {
	p := newParser()

	tests := []struct {
		input string
		want  timeframe.Timeframe
	}{
		{"", timeframe.Whenever()},
		{"whenever", timeframe.Whenever()},
		{"13 nov", timeframe.FixPoint(onDay(2026, time.November, 13))},
		{"at 9pm", timeframe.FixPoint(precise(2026, time.October, 14, 21, 0, 0))},
		{"by 25 oct 2029", timeframe.By(onDay(2029, time.October, 25))},
		{"until tomorrow noon", timeframe.By(precise(2026, time.October, 15, 12, 0, 0))},
		{"from 9am", timeframe.From(precise(2026, time.October, 14, 9, 0, 0))},
		{"after fri", timeframe.From(onDay(2026, time.October, 16))},
		{"1 dec 11 from 9am to 12pm", mustBetween(t, precise(2011, time.December, 1, 9, 0, 0), precise(2011, time.December, 1, 12, 0, 0))},
		{"13 nov from 9am", mustBetween(t, precise(2026, time.November, 13, 9, 0, 0), onDay(2026, time.November, 13))},
		{"12 nov 11 9pm to 3am", mustBetween(t, precise(2011, time.November, 12, 21, 0, 0), precise(2011, time.November, 13, 3, 0, 0))},
		{"9am - 5pm", mustBetween(t, precise(2026, time.October, 14, 9, 0, 0), precise(2026, time.October, 14, 17, 0, 0))},
		{"23 oct 2029 to 25 oct", mustBetween(t, onDay(2029, time.October, 23), onDay(2029, time.October, 25))},
		{"20 dec 2026 to 5 jan", mustBetween(t, onDay(2026, time.December, 20), onDay(2027, time.January, 5))},
		{"mon to fri", mustBetween(t, onDay(2026, time.October, 19), onDay(2026, time.October, 23))},
		{"today to wed", mustBetween(t, onDay(2026, time.October, 14), onDay(2026, time.October, 21))},
		{"sat to wed", mustBetween(t, onDay(2026, time.October, 17), onDay(2026, time.October, 21))},
		{"13 oct 2026 to 13 oct", mustBetween(t, onDay(2026, time.October, 13), onDay(2027, time.October, 13))},
		{"from 12 nov 11 to 14 nov 11", mustBetween(t, onDay(2011, time.November, 12), onDay(2011, time.November, 14))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := p.ParseTimeframe(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimeframeRejects(t *testing.T) {
	p := newParser()

	tests := []struct {
		input string
		kind  error
	}{
		{"from 12 nov 11, 21:00 to 12 nov 11, 20:59:00", parser.ErrOrderViolation},
		{"from 12 nov 11 to 12 nov 08", parser.ErrOrderViolation},
		{"mon 29 oct 2011", parser.ErrWeekdayMismatch},
		{"32 oct", parser.ErrRangeViolation},
		{"13 nov please", parser.ErrTrailingInput},
		{strings.Repeat("a", parser.MaxInputLength+1), parser.ErrInputTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := p.ParseTimeframe(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.kind)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "timeframe", perr.What)
			assert.Equal(t, tt.input, perr.Input)
		})
	}
}

func TestParseTask(t *testing.T) {
	p := newParser()

	tests := []struct {
		input   string
		content string
		want    timeframe.Timeframe
	}{
		{
			"12 november 11, 8:30 pm birthday party !",
			"birthday party !",
			timeframe.FixPoint(precise(2011, time.November, 12, 20, 30, 0)),
		},
		{
			"before 12/11/11 16:15, remind friends to bring me presents.",
			"remind friends to bring me presents.",
			timeframe.By(precise(2011, time.November, 12, 16, 15, 0)),
		},
		{
			"13/11/11, 3am to 7am, clean everything up.",
			"clean everything up.",
			mustBetween(t, precise(2011, time.November, 13, 3, 0, 0), precise(2011, time.November, 13, 7, 0, 0)),
		},
		{
			"1 dec 11 from 9am to 12pm Set Theory Exam.",
			"Set Theory Exam.",
			mustBetween(t, precise(2011, time.December, 1, 9, 0, 0), precise(2011, time.December, 1, 12, 0, 0)),
		},
		{
			"12 nov 11 9pm to 3am be at your party.",
			"be at your party.",
			mustBetween(t, precise(2011, time.November, 12, 21, 0, 0), precise(2011, time.November, 13, 3, 0, 0)),
		},
		{
			"23 oct 2029 to 25 oct do stuff",
			"do stuff",
			mustBetween(t, onDay(2029, time.October, 23), onDay(2029, time.October, 25)),
		},
		{
			"by 25 oct 2029 do stuff",
			"do stuff",
			timeframe.By(onDay(2029, time.October, 25)),
		},
		{
			"tomorrow - water the plants",
			"water the plants",
			timeframe.FixPoint(onDay(2026, time.October, 15)),
		},
		{
			"buy milk",
			"buy milk",
			timeframe.Whenever(),
		},
		{
			"wedding plans",
			"wedding plans",
			timeframe.Whenever(),
		},
		{
			"next fri | review: a|b split",
			"review: a|b split",
			timeframe.FixPoint(onDay(2026, time.October, 23)),
		},
		{
			"| nothing scheduled",
			"nothing scheduled",
			timeframe.Whenever(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			content, got, err := p.ParseTask(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.content, content)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTaskRejects(t *testing.T) {
	p := newParser()

	tests := []struct {
		input string
		kind  error
	}{
		{"from 12 nov 11, 21:00 to 12 nov 11, 20:59:00 | go back in time !", parser.ErrOrderViolation},
		{"from 12 nov 11 to 12 nov 08 | go back in time !", parser.ErrOrderViolation},
		{"mon 29 oct 2011 | do stuff", parser.ErrWeekdayMismatch},
		{"mon 29 oct 2011 party", parser.ErrWeekdayMismatch},
		{"mon, 29 oct 2011 - party", parser.ErrWeekdayMismatch},
		{"13 | do stuff", parser.ErrInvalidInput},
		{"tomorrow", parser.ErrInvalidInput},
		{"tomorrow |", parser.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, _, err := p.ParseTask(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, parser.ErrInvalidInput)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestParseMoment(t *testing.T) {
	p := newParser()

	m, err := p.ParseMoment("21 nov 2011 noon")
	require.NoError(t, err)
	assert.True(t, m.Equal(precise(2011, time.November, 21, 12, 0, 0)))

	_, err = p.ParseMoment("by 21 nov")
	assert.ErrorIs(t, err, parser.ErrInvalidInput)
}

func TestReferenceInstantIsReadOncePerCall(t *testing.T) {
	calls := 0
	base := time.Date(2026, time.October, 14, 23, 59, 59, 0, time.Local)
	p := parser.New(parser.Options{Now: func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * time.Second)
	}})

	tf, err := p.ParseTimeframe("today to tomorrow")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	start, _ := tf.Start()
	end, _ := tf.End()
	assert.Equal(t, at(2026, time.October, 14, 0, 0, 0), start.Time())
	assert.Equal(t, at(2026, time.October, 15, 0, 0, 0), end.Time())
}

func TestRejectedInputIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := parser.New(parser.Options{Logger: zap.New(core)})

	_, err := p.ParseTimeframe("32 oct")
	require.Error(t, err)

	entries := logs.FilterMessage("rejected input").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "32 oct", entries[0].ContextMap()["input"])
}
