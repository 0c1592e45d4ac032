package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task status labels shown to the user.
const (
	StatusCompleted    = "Completed"
	StatusNotCompleted = "Not Completed"
)

// Task is a single tracked item. Title, description, and due date are
// fixed at creation; only Completed changes afterwards.
type Task struct {
	TaskID      string    `json:"task_id,omitempty"`   // UUID v7, generated on creation.
	Title       string    `json:"title"`               // Lookup key for mark-completed (not unique).
	Description string    `json:"description"`         // Free text.
	DueDate     string    `json:"due_date"`            // YYYY-MM-DD.
	Completed   bool      `json:"completed"`           // False until MarkCompleted.
	CreatedAt   time.Time `json:"created_at,omitzero"` // Timestamp of creation.
}

// NewTask creates a task that is not completed. No field validation is
// performed here; callers that take user input run ValidateFields first.
func NewTask(title, description, dueDate string) *Task {
	return &Task{
		TaskID:      newTaskID(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   time.Now().UTC(),
	}
}

// newTaskID returns a UUID v7 string, falling back to v4 if the clock
// source fails.
func newTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// MarkCompleted marks the task as done. Idempotent.
func (t *Task) MarkCompleted() {
	t.Completed = true
}

// Status returns the user-facing status label.
func (t *Task) Status() string {
	if t.Completed {
		return StatusCompleted
	}
	return StatusNotCompleted
}

// String renders the task as the multi-line block shown in listings.
// Every line, including the last, ends with a newline.
func (t *Task) String() string {
	return fmt.Sprintf("Title: %s\nDescription: %s\nDue Date: %s\nStatus: %s\n",
		t.Title, t.Description, t.DueDate, t.Status())
}
