// Package task keeps a local list of tasks, each scheduled by a timeframe
// parsed from a free-form phrase.
package task

import (
	"time"

	"github.com/amonks/when/timeframe"
)

// Task is a single entry in the task list.
type Task struct {
	// ID is a positive integer, unique within a store.
	ID int `json:"id"`

	// Content is what the task is about.
	Content string `json:"content"`

	// Timeframe is when the task is scheduled. It is stored in its text
	// encoding.
	Timeframe timeframe.Timeframe `json:"timeframe"`

	// Done reports whether the task is finished.
	Done bool `json:"done"`

	// CreatedAt is when the task was added.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`
}
