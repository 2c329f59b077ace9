package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every parse failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLexicalMismatch means no production matched the text.
	ErrLexicalMismatch = errors.New("unrecognized text")

	// ErrRangeViolation means a number was out of its domain, like day 32
	// or hour 25.
	ErrRangeViolation = errors.New("number out of range")

	// ErrWeekdayMismatch means a weekday name disagrees with the date next
	// to it.
	ErrWeekdayMismatch = errors.New("weekday does not match date")

	// ErrOrderViolation means the end of a range is not after its start.
	ErrOrderViolation = errors.New("end is not after start")

	// ErrTrailingInput means a production matched but text was left over.
	ErrTrailingInput = errors.New("unexpected trailing text")

	// ErrInputTooLong means the input exceeds MaxInputLength.
	ErrInputTooLong = errors.New("input too long")
)

// Error is returned by every Parse method. errors.Is matches both
// ErrInvalidInput and Kind.
type Error struct {
	// Input is the text as given by the caller.
	Input string
	// What names the expected shape: "timeframe", "task" or "list of ids".
	What string
	// Kind is one of the Err* failure kinds.
	Kind error
	// Offset is the byte offset in the trimmed input where the parse gave up.
	Offset int
	// Detail describes what was expected at Offset, when known.
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%q is not a valid %s: %v", e.Input, e.What, e.Kind)
	if e.Detail != "" {
		msg += fmt.Sprintf(" (%s at offset %d)", e.Detail, e.Offset)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	return []error{ErrInvalidInput, e.Kind}
}
