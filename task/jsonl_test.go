package task

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestJSONL_MissingFileIsEmpty(t *testing.T) {
	backend, err := OpenJSONL(filepath.Join(t.TempDir(), "nested", "tasks.jsonl"))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}

	tasks, err := backend.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestJSONL_FileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	store, err := OpenPath(BackendJSONL, path, testOptions())
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	mustAdd(t, store, "by 16 oct | send report")
	mustAdd(t, store, "read")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.Contains(lines[0], `"timeframe":"_,`) {
		t.Errorf("expected a by-timeframe encoding in %s", lines[0])
	}
	if !strings.Contains(lines[1], `"timeframe":""`) {
		t.Errorf("expected an empty timeframe encoding in %s", lines[1])
	}

	leftovers, err := filepath.Glob(path + ".*.tmp")
	if err != nil {
		t.Fatalf("failed to glob: %v", err)
	}
	if len(leftovers) != 0 {
		t.Errorf("expected temp files to be renamed away, found %v", leftovers)
	}
}

func TestJSONL_CorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	content := `{"id":1,"content":"ok","timeframe":"","done":false}` + "\n\n{not json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	backend, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	_, err = backend.Load()
	if err == nil || !strings.Contains(err.Error(), "parse line 3") {
		t.Errorf("expected a parse error on line 3, got %v", err)
	}
}

func TestJSONL_BadTimeframe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	content := `{"id":1,"content":"ok","timeframe":"_,_","done":false}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	backend, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	if _, err := backend.Load(); err == nil {
		t.Error("expected an error for an undecodable timeframe")
	}
}

func TestJSONL_ConcurrentAddsGetDistinctIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store, err := OpenPath(BackendJSONL, path, testOptions())
			if err != nil {
				errs <- err
				return
			}
			if _, err := store.Create("parallel", CreateOptions{}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent add failed: %v", err)
	}

	backend, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	tasks, err := backend.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	seen := map[int]bool{}
	for _, task := range tasks {
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if len(tasks) != writers {
		t.Errorf("expected %d tasks, got %d", writers, len(tasks))
	}
}

func TestJSONL_FailedUpdateKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	store, err := OpenPath(BackendJSONL, path, testOptions())
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	mustAdd(t, store, "read")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}

	backend, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	errBoom := errors.New("boom")
	err = backend.Update(func(tasks []Task) ([]Task, error) {
		return nil, errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected the update error, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("expected store to be unchanged, got %q", after)
	}
}

func TestJSONL_LastLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.jsonl")
	content := `{"id":1,"content":"a","timeframe":""}` + "\n" + `{"id":2,"content":"b","timeframe":""}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	backend, err := OpenJSONL(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	tasks, err := backend.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(tasks) != 2 || tasks[1].Content != "b" {
		t.Errorf("expected both tasks, got %+v", tasks)
	}
}

func TestOpenBackend_Unknown(t *testing.T) {
	if _, err := OpenBackend("postgres", filepath.Join(t.TempDir(), "x")); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}
}
