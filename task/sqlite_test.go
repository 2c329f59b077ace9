package task

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/amonks/when/timeframe"
)

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	store, err := OpenPath(BackendSQLite, path, testOptions())
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	created := mustAdd(t, store, "13 nov from 9am to noon | workshop")
	if _, err := store.Toggle(created.ID); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	tasks, err := reopened.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]

	start := timeframe.Precisely(time.Date(2026, time.November, 13, 9, 0, 0, 0, time.Local))
	end := timeframe.Precisely(time.Date(2026, time.November, 13, 12, 0, 0, 0, time.Local))
	want, err := timeframe.NewBetween(start, end)
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if !got.Timeframe.Equal(want) {
		t.Errorf("expected %v, got %v", want, got.Timeframe)
	}
	if !got.Done {
		t.Error("expected done to survive a reopen")
	}
	if got.Content != "workshop" {
		t.Errorf("expected content 'workshop', got %q", got.Content)
	}
	if !got.CreatedAt.Equal(testNow) {
		t.Errorf("expected created_at %v, got %v", testNow, got.CreatedAt)
	}
}
