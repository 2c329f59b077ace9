package task

import (
	"time"

	"go.uber.org/zap"

	"github.com/amonks/when/parser"
)

// Options configures a Store.
type Options struct {
	// Parser reads task text and timeframes. Defaults to a parser on the
	// same clock as the store.
	Parser *parser.Parser

	// Logger receives store events. Defaults to a no-op logger.
	Logger *zap.Logger

	// Now returns the current time, used for timestamps. Defaults to
	// time.Now.
	Now func() time.Time
}

// Store is a task list over a Backend. Ids are allocated by the store as
// one more than the highest stored id.
type Store struct {
	backend Backend
	parser  *parser.Parser
	logger  *zap.Logger
	now     func() time.Time
}

// Open returns a Store over backend.
func Open(backend Backend, opts Options) *Store {
	s := &Store{
		backend: backend,
		parser:  opts.Parser,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.parser == nil {
		s.parser = parser.New(parser.Options{Now: s.now, Logger: s.logger})
	}
	return s
}

// OpenPath opens the named backend at path and returns a Store over it.
func OpenPath(backend, path string, opts Options) (*Store, error) {
	b, err := OpenBackend(backend, path)
	if err != nil {
		return nil, err
	}
	return Open(b, opts), nil
}

// Parser returns the parser the store reads text with.
func (s *Store) Parser() *parser.Parser {
	return s.parser
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) load() ([]Task, error) {
	tasks, err := s.backend.Load()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded tasks", zap.Int("count", len(tasks)))
	return tasks, nil
}

func (s *Store) update(fn func([]Task) ([]Task, error)) error {
	return s.backend.Update(func(tasks []Task) ([]Task, error) {
		out, err := fn(tasks)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("saving tasks", zap.Int("count", len(out)))
		return out, nil
	})
}

func nextID(tasks []Task) int {
	id := 0
	for _, t := range tasks {
		if t.ID > id {
			id = t.ID
		}
	}
	return id + 1
}

func indexOf(tasks []Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
