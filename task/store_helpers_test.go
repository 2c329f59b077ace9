package task

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/when/parser"
)

// testNow is a Wednesday.
var testNow = time.Date(2026, time.October, 14, 10, 0, 0, 0, time.Local)

func testOptions() Options {
	now := func() time.Time { return testNow }
	return Options{Now: now, Parser: parser.New(parser.Options{Now: now})}
}

func openTestStore(t *testing.T, backend string) *Store {
	t.Helper()

	name := "tasks.jsonl"
	if backend == BackendSQLite {
		name = "tasks.db"
	}
	store, err := OpenPath(backend, filepath.Join(t.TempDir(), name), testOptions())
	if err != nil {
		t.Fatalf("failed to open %s store: %v", backend, err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// forEachBackend runs fn once per backend as a subtest.
func forEachBackend(t *testing.T, fn func(t *testing.T, store *Store)) {
	for _, backend := range BackendNames() {
		t.Run(backend, func(t *testing.T) {
			fn(t, openTestStore(t, backend))
		})
	}
}

func mustAdd(t *testing.T, store *Store, text string) Task {
	t.Helper()
	created, err := store.Add(text)
	if err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
	return created
}

func taskIDs(tasks []Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
