package task

import (
	"errors"
	"fmt"
	"strings"
)

// MaxContentLength is the longest content a task may carry.
const MaxContentLength = 500

var (
	// ErrTaskNotFound is returned when no task has the given id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyContent is returned when a task would have no content.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrContentTooLong is returned when content exceeds MaxContentLength.
	ErrContentTooLong = errors.New("content exceeds maximum length")

	// ErrInvalidRange is returned by Within when the text is neither a list
	// of ids nor a timeframe.
	ErrInvalidRange = errors.New("the range is invalid")

	// ErrUnknownBackend is returned for a backend name other than jsonl or
	// sqlite.
	ErrUnknownBackend = errors.New("unknown store backend")
)

// ValidateContent checks that content is non-blank and not too long.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len(content) > MaxContentLength {
		return fmt.Errorf("%w: %d > %d", ErrContentTooLong, len(content), MaxContentLength)
	}
	return nil
}
