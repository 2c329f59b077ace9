package task

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// JSONL stores one task per line in a text file. Writers hold an exclusive
// lock on a sibling ".lock" file and replace the data file by rename, so
// readers never see a partial write.
type JSONL struct {
	path string
}

// OpenJSONL returns a JSONL backend for path. The file is created on the
// first write.
func OpenJSONL(path string) (*JSONL, error) {
	if path == "" {
		return nil, errors.New("jsonl store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &JSONL{path: path}, nil
}

// Path returns the data file path.
func (j *JSONL) Path() string {
	return j.path
}

// Load reads every task from the file. A missing file is an empty list.
func (j *JSONL) Load() ([]Task, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()
	return decodeTasks(f)
}

// Update reads, applies fn and writes back while holding the store lock.
func (j *JSONL) Update(fn func([]Task) ([]Task, error)) error {
	unlock, err := j.lock()
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := j.Load()
	if err != nil {
		return err
	}
	tasks, err = fn(tasks)
	if err != nil {
		return err
	}
	return j.replace(tasks)
}

// Close is a no-op.
func (j *JSONL) Close() error {
	return nil
}

// lock takes the exclusive store lock. The returned func releases it.
func (j *JSONL) lock() (func(), error) {
	f, err := os.OpenFile(j.path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return func() {
		syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
		f.Close()
	}, nil
}

// replace writes tasks to a temp file next to the store and renames it over
// the store.
func (j *JSONL) replace(tasks []Task) (err error) {
	dir, base := filepath.Split(j.path)
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := encodeTasks(tmp, tasks); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), j.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// decodeTasks reads one task per line. Blank lines are skipped; lines are
// counted from 1.
func decodeTasks(r io.Reader) ([]Task, error) {
	var tasks []Task
	br := bufio.NewReader(r)
	for lineNum := 1; ; lineNum++ {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNum, err)
		}
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var t Task
			if jerr := json.Unmarshal(trimmed, &t); jerr != nil {
				return nil, fmt.Errorf("parse line %d: %w", lineNum, jerr)
			}
			tasks = append(tasks, t)
		}
		if err != nil {
			return tasks, nil
		}
	}
}

func encodeTasks(w io.Writer, tasks []Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		line, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode task %d: %w", t.ID, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}
