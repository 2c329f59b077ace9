package timeframe

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvertedWindow is returned by NewBetween when the end is not after the
// start.
var ErrInvertedWindow = errors.New("timeframe end is before its start")

// Kind identifies the shape of a Timeframe.
type Kind uint8

const (
	// KindWhenever is unconstrained. It is the zero Kind.
	KindWhenever Kind = iota

	// KindFixPoint is a single moment.
	KindFixPoint

	// KindBy has an open start and a bounded end.
	KindBy

	// KindFrom has a bounded start and an open end.
	KindFrom

	// KindBetween has a bounded start and end.
	KindBetween
)

// ValidKinds returns all kinds in urgency order.
func ValidKinds() []Kind {
	return []Kind{KindFixPoint, KindFrom, KindBy, KindBetween, KindWhenever}
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindWhenever:
		return "whenever"
	case KindFixPoint:
		return "fixpoint"
	case KindBy:
		return "by"
	case KindFrom:
		return "from"
	case KindBetween:
		return "between"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Timeframe is a scheduling window. The zero value is Whenever.
//
// Only the fields meaningful for the kind are set: FixPoint keeps its moment
// in start, By keeps its end in end, From keeps its start in start.
type Timeframe struct {
	kind  Kind
	start Moment
	end   Moment
}

// Whenever returns the unconstrained timeframe.
func Whenever() Timeframe { return Timeframe{} }

// FixPoint returns a timeframe that starts and ends at m.
func FixPoint(m Moment) Timeframe { return Timeframe{kind: KindFixPoint, start: m} }

// By returns a timeframe with an open start that ends at m.
func By(m Moment) Timeframe { return Timeframe{kind: KindBy, end: m} }

// From returns a timeframe that starts at m and never ends.
func From(m Moment) Timeframe { return Timeframe{kind: KindFrom, start: m} }

// NewBetween returns a bounded timeframe. The end must be strictly after the
// start, with a day start taken from its midnight. The one exception is a
// day end on the start's own day, so "13 nov from 9am" can close at the end
// of that day.
func NewBetween(start, end Moment) (Timeframe, error) {
	sameDayEnd := !end.IsPrecise() && end.SameDay(start.Time())
	if !sameDayEnd && !end.After(start.Floor()) {
		return Timeframe{}, fmt.Errorf("%w: %s to %s", ErrInvertedWindow, start.t.Format(time.RFC3339), end.t.Format(time.RFC3339))
	}
	return Timeframe{kind: KindBetween, start: start, end: end}, nil
}

// Kind returns the timeframe's shape.
func (tf Timeframe) Kind() Kind { return tf.kind }

// Start returns the bounding start moment. ok is false for By and Whenever.
func (tf Timeframe) Start() (m Moment, ok bool) {
	switch tf.kind {
	case KindFixPoint, KindFrom, KindBetween:
		return tf.start, true
	default:
		return Moment{}, false
	}
}

// End returns the bounding end moment. ok is false for From and Whenever.
// A FixPoint ends at its own moment.
func (tf Timeframe) End() (m Moment, ok bool) {
	switch tf.kind {
	case KindFixPoint:
		return tf.start, true
	case KindBy, KindBetween:
		return tf.end, true
	default:
		return Moment{}, false
	}
}

// Equal reports whether both timeframes have the same kind and moments.
func (tf Timeframe) Equal(o Timeframe) bool {
	return tf.kind == o.kind && tf.start.Equal(o.start) && tf.end.Equal(o.end)
}

// StartsBefore reports whether the timeframe starts before t. Open starts are
// always before.
func (tf Timeframe) StartsBefore(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint, KindFrom, KindBetween:
		return tf.start.Before(t)
	case KindBy, KindWhenever:
		return true
	default:
		return false
	}
}

// StartsAfter reports whether the timeframe starts after t.
func (tf Timeframe) StartsAfter(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint:
		return tf.EndsAfter(t)
	case KindFrom, KindBetween:
		return tf.start.After(t)
	case KindBy, KindWhenever:
		return false
	default:
		return false
	}
}

// StartsTheSameDay reports whether the timeframe starts on t's calendar day.
// Whenever starts every day; By starts no day.
func (tf Timeframe) StartsTheSameDay(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint, KindFrom, KindBetween:
		return tf.start.SameDay(t)
	case KindWhenever:
		return true
	case KindBy:
		return false
	default:
		return false
	}
}

// EndsAfter reports whether the timeframe ends after t. Open ends are always
// after.
func (tf Timeframe) EndsAfter(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint:
		return tf.start.After(t)
	case KindBy, KindBetween:
		return tf.end.After(t)
	case KindFrom, KindWhenever:
		return true
	default:
		return false
	}
}

// EndsBefore reports whether the timeframe ends before t.
func (tf Timeframe) EndsBefore(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint:
		return tf.StartsBefore(t)
	case KindBy, KindBetween:
		return tf.end.Before(t)
	case KindFrom, KindWhenever:
		return false
	default:
		return false
	}
}

// EndsOnTheSameDay reports whether the timeframe ends on t's calendar day.
func (tf Timeframe) EndsOnTheSameDay(t time.Time) bool {
	switch tf.kind {
	case KindFixPoint:
		return tf.start.SameDay(t)
	case KindBy, KindBetween:
		return tf.end.SameDay(t)
	case KindFrom, KindWhenever:
		return false
	default:
		return false
	}
}

// Superimpose reports whether o overlaps the timeframe: o must not end
// before the start and must not start after the end. Open sides drop their
// clause, so Whenever overlaps everything.
func (tf Timeframe) Superimpose(o Timeframe) bool {
	switch tf.kind {
	case KindFixPoint:
		p := tf.start.Time()
		return !o.StartsAfter(p) && !o.EndsBefore(p)
	case KindBy:
		return !o.StartsAfter(tf.end.Time())
	case KindFrom:
		return !o.EndsBefore(tf.start.Time())
	case KindBetween:
		return !o.EndsBefore(tf.start.Time()) && !o.StartsAfter(tf.end.Time())
	case KindWhenever:
		return true
	default:
		return false
	}
}
