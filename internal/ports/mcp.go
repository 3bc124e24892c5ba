package ports

import (
	"context"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// TaskProvider exposes the task repository surface consumed by external
// collaborators such as the MCP server.
// This is a driven port (implemented by the services layer).
type TaskProvider interface {
	// Tasks returns a snapshot of the full task collection.
	Tasks() []*domain.Task

	// Categories returns a snapshot of the available category list.
	Categories() []string

	// AddTask creates a new task.
	AddTask(ctx context.Context, title, description string, dueDate *time.Time, categories []string) (*domain.Task, error)

	// ToggleComplete flips the completion flag on the matching task.
	// It reports whether a task with the given ID existed.
	ToggleComplete(ctx context.Context, id string) bool

	// DeleteTask removes the matching task, reporting whether it existed.
	DeleteTask(ctx context.Context, id string) bool

	// AddCategory appends a category, reporting whether it was new.
	AddCategory(ctx context.Context, name string) bool

	// DeleteCategory removes a category from the list and from every
	// task, reporting whether it existed.
	DeleteCategory(ctx context.Context, name string) bool

	// FindByTitle does a fuzzy search for tasks by title.
	FindByTitle(query string) []*domain.Task
}
