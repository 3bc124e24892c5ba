// Package domain contains the core business entities for TaskMaster.
// These entities represent the fundamental concepts of the task collection
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNothingToExport = errors.New("no tasks to export")
	ErrInvalidFilter   = errors.New("invalid filter type")
	ErrInvalidSort     = errors.New("invalid sort type")
)

// TimestampLayout is the wire format for task timestamps: ISO-8601 with
// millisecond precision, matching the persisted payloads.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Task represents a single to-do item.
//
// Order is used only by the manual sort mode; it is assigned at creation
// (one past the current maximum) and rewritten wholesale on reorder.
// Completed is a plain flag, never derived from dates: "overdue" is a view
// concept computed against DueDate at render time.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	DueDate     *time.Time
	Categories  []string
	Order       int
}

// NewTask creates a new task with the given title and description.
// The title must not be blank once trimmed.
func NewTask(title, description string) (*Task, error) {
	if err := validateTaskTitle(title); err != nil {
		return nil, err
	}

	return &Task{
		ID:          generateID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
		Categories:  []string{},
	}, nil
}

// validateTaskTitle ensures the title is not blank.
func validateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}

// Toggle flips the completion flag.
func (t *Task) Toggle() {
	t.Completed = !t.Completed
}

// HasCategory reports whether the task references the named category.
func (t *Task) HasCategory(name string) bool {
	for _, c := range t.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// RemoveCategory drops the named category from the task's category list.
func (t *Task) RemoveCategory(name string) {
	kept := t.Categories[:0]
	for _, c := range t.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	t.Categories = kept
}

// IsOverdue reports whether the task has a deadline in the past and is not
// yet completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(now)
}

// IsDueWithin reports whether the task has an upcoming deadline inside the
// given window. Overdue and completed tasks are excluded.
func (t *Task) IsDueWithin(now time.Time, window time.Duration) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return !t.DueDate.Before(now) && !t.DueDate.After(now.Add(window))
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	clone.Categories = append([]string{}, t.Categories...)
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	return &clone
}
