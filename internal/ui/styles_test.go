package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amonks/when/timeframe"
)

var styleNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)

func dayMoment(d int) timeframe.Moment {
	return timeframe.OnTheDay(time.Date(2026, time.October, d, 0, 0, 0, 0, time.Local))
}

func TestScheduleWithoutColorIsPlain(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, false)

	tests := []struct {
		tf   timeframe.Timeframe
		done bool
		want string
	}{
		{timeframe.Whenever(), false, "Whenever"},
		{timeframe.FixPoint(dayMoment(14)), false, "Today"},
		{timeframe.By(dayMoment(10)), false, "By Sat 10 Oct 26"},
		{timeframe.By(dayMoment(10)), true, "By Sat 10 Oct 26"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, styles.Schedule(tt.tf, tt.done, styleNow))
	}
}

func TestScheduleWithColor(t *testing.T) {
	styles := NewStyles(&bytes.Buffer{}, true)

	overdue := styles.Schedule(timeframe.By(dayMoment(10)), false, styleNow)
	assert.Contains(t, overdue, "\x1b[")
	assert.Contains(t, overdue, "By Sat 10 Oct 26")

	today := styles.Schedule(timeframe.FixPoint(dayMoment(14)), false, styleNow)
	assert.NotEqual(t, overdue, today)
	assert.Contains(t, today, "Today")

	upcoming := styles.Schedule(timeframe.FixPoint(dayMoment(20)), false, styleNow)
	assert.NotContains(t, upcoming, "\x1b[")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NO_COLOR", "")

	assert.True(t, ColorEnabled(ColorAlways, &buf))
	assert.False(t, ColorEnabled(ColorNever, &buf))
	assert.False(t, ColorEnabled(ColorAuto, &buf), "a buffer is not a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.True(t, ColorEnabled(ColorAlways, &buf))
}

func TestWrap(t *testing.T) {
	got := Wrap("remind friends to bring me presents for the party", 20, 2)
	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), line)
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, "", Wrap("  \n ", 20, 2))
}
