package task

import (
	"strings"

	"github.com/amonks/when/internal/validation"
)

// Backend persists the whole task list.
type Backend interface {
	// Load returns every stored task in insertion order.
	Load() ([]Task, error)

	// Update replaces the stored list with the result of fn, applied to the
	// current list. No other Update runs between the read and the write.
	Update(fn func([]Task) ([]Task, error)) error

	// Close releases the backend.
	Close() error
}

// Backend names accepted by OpenBackend.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// BackendNames lists the accepted backend names.
func BackendNames() []string {
	return []string{BackendJSONL, BackendSQLite}
}

// OpenBackend opens the named backend at path. An empty name is jsonl.
func OpenBackend(name, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendJSONL:
		return OpenJSONL(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, validation.FormatInvalidValueError(ErrUnknownBackend, name, BackendNames())
	}
}
