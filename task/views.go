package task

import (
	"time"
)

// Missed returns the unfinished tasks that ended before day.
func (s *Store) Missed(day time.Time) ([]Task, error) {
	return s.view(func(t Task) bool {
		tf := t.Timeframe
		return !t.Done && !tf.EndsAfter(day) && !tf.EndsOnTheSameDay(day)
	})
}

// MustDo returns the tasks that end on day, done or not.
func (s *Store) MustDo(day time.Time) ([]Task, error) {
	return s.view(func(t Task) bool {
		return t.Timeframe.EndsOnTheSameDay(day)
	})
}

// ShouldDo returns the unfinished tasks that have started by day and end
// after it.
func (s *Store) ShouldDo(day time.Time) ([]Task, error) {
	return s.view(func(t Task) bool {
		tf := t.Timeframe
		return !t.Done && tf.EndsAfter(day) && !tf.EndsOnTheSameDay(day) &&
			(tf.StartsBefore(day) || tf.StartsTheSameDay(day))
	})
}

func (s *Store) view(keep func(Task) bool) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	SortByUrgency(out)
	return out, nil
}
