package task

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/amonks/when/timeframe"
)

// CreateOptions configures a new task.
type CreateOptions struct {
	// Timeframe is when the task is scheduled. The zero value is Whenever.
	Timeframe timeframe.Timeframe

	// Done creates the task already finished.
	Done bool
}

// Create adds a task with the given content.
func (s *Store) Create(content string, opts CreateOptions) (Task, error) {
	if err := ValidateContent(content); err != nil {
		return Task{}, err
	}

	now := s.now()
	var created Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		created = Task{
			ID:        nextID(tasks),
			Content:   content,
			Timeframe: opts.Timeframe,
			Done:      opts.Done,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}
	s.logger.Debug("added task", zap.Int("id", created.ID), zap.Stringer("timeframe", created.Timeframe))
	return created, nil
}

// Add parses text as a task phrase such as "by fri, send report" and
// stores it.
func (s *Store) Add(text string) (Task, error) {
	if strings.TrimSpace(text) == "" {
		return Task{}, ErrEmptyContent
	}
	content, tf, err := s.parser.ParseTask(text)
	if err != nil {
		return Task{}, err
	}
	return s.Create(strings.TrimSpace(content), CreateOptions{Timeframe: tf})
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (Task, error) {
	tasks, err := s.load()
	if err != nil {
		return Task{}, err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return Task{}, s.notFound(id)
	}
	return tasks[i], nil
}

// All returns every task in insertion order.
func (s *Store) All() ([]Task, error) {
	return s.load()
}

// Modify replaces the content of a task.
func (s *Store) Modify(id int, content string) (Task, error) {
	if err := ValidateContent(content); err != nil {
		return Task{}, err
	}
	return s.modifyOne(id, func(t *Task) { t.Content = content })
}

// Reschedule parses text as a timeframe and gives it to the task.
func (s *Store) Reschedule(id int, text string) (Task, error) {
	tf, err := s.parser.ParseTimeframe(text)
	if err != nil {
		return Task{}, err
	}
	return s.RescheduleTo(id, tf)
}

// RescheduleTo gives the task a new timeframe.
func (s *Store) RescheduleTo(id int, tf timeframe.Timeframe) (Task, error) {
	return s.modifyOne(id, func(t *Task) { t.Timeframe = tf })
}

// SetDone marks the tasks done or not done. Nothing changes unless every id
// exists.
func (s *Store) SetDone(ids []int, done bool) ([]Task, error) {
	return s.modifyMany(ids, func(t *Task) { t.Done = done })
}

// Toggle flips whether a task is done.
func (s *Store) Toggle(id int) (Task, error) {
	return s.modifyOne(id, func(t *Task) { t.Done = !t.Done })
}

// Delete removes the tasks and returns them. Nothing is removed unless
// every id exists.
func (s *Store) Delete(ids []int) ([]Task, error) {
	ids = uniqueIDs(ids)
	var deleted []Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		deleted = deleted[:0]
		for _, id := range ids {
			i := indexOf(tasks, id)
			if i < 0 {
				return nil, s.notFound(id)
			}
			deleted = append(deleted, tasks[i])
		}
		return slices.DeleteFunc(tasks, func(t Task) bool {
			return slices.Contains(ids, t.ID)
		}), nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// Search returns the tasks whose content contains text, ignoring case.
func (s *Store) Search(text string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(text)
	var out []Task
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Content), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ClashWith returns the other scheduled tasks whose timeframe overlaps the
// task's. Whenever tasks never clash.
func (s *Store) ClashWith(id int) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(tasks, id)
	if i < 0 {
		return nil, s.notFound(id)
	}
	tf := tasks[i].Timeframe

	var out []Task
	for _, t := range tasks {
		if t.ID == id || t.Timeframe.Kind() == timeframe.KindWhenever {
			continue
		}
		if t.Timeframe.Superimpose(tf) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Within selects tasks by a list of ids ("1, 4", "2..6") or, failing that,
// by a timeframe their own timeframe overlaps. Empty text selects every
// task. Results are in urgency order.
func (s *Store) Within(text string) ([]Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		SortByUrgency(tasks)
		return tasks, nil
	}

	var out []Task
	if ids, err := s.parser.ParseIDList(text); err == nil {
		for _, t := range tasks {
			if slices.Contains(ids, t.ID) {
				out = append(out, t)
			}
		}
		SortByUrgency(out)
		return out, nil
	}

	within, err := s.parser.ParseTimeframe(text)
	if err != nil {
		s.logger.Info("no ids or timeframe in range", zap.String("input", text))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	for _, t := range tasks {
		if within.Superimpose(t.Timeframe) {
			out = append(out, t)
		}
	}
	SortByUrgency(out)
	return out, nil
}

func (s *Store) modifyOne(id int, fn func(*Task)) (Task, error) {
	tasks, err := s.modifyMany([]int{id}, fn)
	if err != nil {
		return Task{}, err
	}
	return tasks[0], nil
}

func (s *Store) modifyMany(ids []int, fn func(*Task)) ([]Task, error) {
	ids = uniqueIDs(ids)
	now := s.now()
	var modified []Task
	err := s.update(func(tasks []Task) ([]Task, error) {
		modified = modified[:0]
		for _, id := range ids {
			i := indexOf(tasks, id)
			if i < 0 {
				return nil, s.notFound(id)
			}
			fn(&tasks[i])
			tasks[i].UpdatedAt = now
			modified = append(modified, tasks[i])
		}
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return modified, nil
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *Store) notFound(id int) error {
	s.logger.Info("task not found", zap.Int("id", id))
	return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}
