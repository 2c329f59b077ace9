package timeframe

import "time"

// Display layouts.
const (
	DateTimeLayout = "Mon 2 Jan 06, 3:04 PM"
	DateLayout     = "Mon 2 Jan 06"
	TimeLayout     = "3:04 PM"
)

const today = "Today"

// Format renders the moment for display. Moments on now's calendar day are
// shown as "Today".
func (m Moment) Format(now time.Time) string {
	if m.SameDay(now) {
		if m.IsPrecise() {
			return today + ", " + m.t.Format(TimeLayout)
		}
		return today
	}
	if m.IsPrecise() {
		return m.t.Format(DateTimeLayout)
	}
	return m.t.Format(DateLayout)
}

// String renders the moment without relative day names.
func (m Moment) String() string {
	return m.Format(time.Time{})
}

// Format renders the timeframe for display relative to now.
func (tf Timeframe) Format(now time.Time) string {
	switch tf.kind {
	case KindFixPoint:
		return tf.start.Format(now)
	case KindBy:
		return "By " + tf.end.Format(now)
	case KindFrom:
		return "From " + tf.start.Format(now)
	case KindBetween:
		return tf.formatBetween(now)
	default:
		return "Whenever"
	}
}

// String renders the timeframe without relative day names.
func (tf Timeframe) String() string {
	return tf.Format(time.Time{})
}

func (tf Timeframe) formatBetween(now time.Time) string {
	start, end := tf.start, tf.end
	if start.SameDay(end.Time()) {
		switch {
		case start.IsPrecise() && !end.IsPrecise():
			return end.Format(now) + " from " + start.t.Format(TimeLayout)
		case !start.IsPrecise() && end.IsPrecise():
			return start.Format(now) + " by " + end.t.Format(TimeLayout)
		case start.IsPrecise() && end.IsPrecise():
			day := start.t.Format(DateLayout)
			if start.SameDay(now) {
				day = today
			}
			return day + " from " + start.t.Format(TimeLayout) + " to " + end.t.Format(TimeLayout)
		}
	}
	return start.Format(now) + " to " + end.Format(now)
}
