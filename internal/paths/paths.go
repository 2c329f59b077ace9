package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDir returns the user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// DefaultDataDir returns the directory task stores live in by default.
func DefaultDataDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "share", "when"), nil
}

// DefaultConfigPath returns the global config file path.
func DefaultConfigPath() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "when", "config.toml"), nil
}

// DefaultStorePath returns the default store file for a backend:
// tasks.db for sqlite, tasks.jsonl otherwise.
func DefaultStorePath(backend string) (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}

	name := "tasks.jsonl"
	if backend == "sqlite" {
		name = "tasks.db"
	}
	return filepath.Join(dir, name), nil
}
