// Package task defines the task record, the view filter, and the persisted
// blob format shared by the store and every projection.
package task

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID identifies a task for its whole lifetime.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string {
	return string(id)
}

// Task is one user-entered item.
type Task struct {
	ID        ID        `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt Timestamp `json:"createdAt"`
}

// CleanText trims text and replaces invalid UTF-8 with U+FFFD, so the text
// kept in memory is exactly what the JSON blob stores.
func CleanText(text string) string {
	return strings.ToValidUTF8(strings.TrimSpace(text), "\uFFFD")
}

// New builds an open task created at now. Text is cleaned with CleanText.
func New(id ID, text string, now time.Time) Task {
	return Task{
		ID:        id,
		Text:      CleanText(text),
		CreatedAt: Timestamp{Time: now.UTC().Round(0)},
	}
}

// Display projects the task to what a view needs.
func (t Task) Display() DisplayRecord {
	return DisplayRecord{ID: t.ID, Text: t.Text, Completed: t.Completed}
}

// DisplayRecord is the read-only shape handed to projections.
type DisplayRecord struct {
	ID        ID     `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Displays projects a slice of tasks.
func Displays(tasks []Task) []DisplayRecord {
	out := make([]DisplayRecord, len(tasks))
	for i, t := range tasks {
		out[i] = t.Display()
	}
	return out
}
