package task

import (
	"cmp"
	"slices"
	"time"

	"github.com/amonks/when/timeframe"
)

// SortByUrgency orders tasks by timeframe kind (fix point, from, by,
// between, whenever), then by the instant that bounds the timeframe, then
// by id. A fix point is bounded by its point, a from by its start, and by
// and between by their end.
func SortByUrgency(tasks []Task) {
	slices.SortStableFunc(tasks, compareUrgency)
}

func compareUrgency(a, b Task) int {
	if c := cmp.Compare(kindRank(a.Timeframe.Kind()), kindRank(b.Timeframe.Kind())); c != 0 {
		return c
	}
	if c := bound(a.Timeframe).Compare(bound(b.Timeframe)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func bound(tf timeframe.Timeframe) time.Time {
	switch tf.Kind() {
	case timeframe.KindFixPoint, timeframe.KindFrom:
		m, _ := tf.Start()
		return m.Time()
	case timeframe.KindBy, timeframe.KindBetween:
		m, _ := tf.End()
		return m.Time()
	default:
		return time.Time{}
	}
}

func kindRank(k timeframe.Kind) int {
	return slices.Index(timeframe.ValidKinds(), k)
}
