// Package ports defines the interfaces (driven and driving ports)
// for the TaskMaster application following hexagonal architecture
// principles. These interfaces define the contracts between the domain
// layer and external infrastructure.
package ports

import (
	"context"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// TaskStore defines the interface for durable local persistence of the
// full task collection and the category list.
// This is a driven port (implemented by adapters).
//
// The store is deliberately fail-soft: a failed save degrades to "changes
// not persisted" and a failed load yields an empty collection, each with a
// warning on stderr. Neither direction ever surfaces an error to the
// caller; the application must stay usable with a fresh, empty state.
type TaskStore interface {
	// SaveTasks writes the full task collection under the task key.
	SaveTasks(ctx context.Context, tasks []*domain.Task)

	// LoadTasks reads the task collection. Missing or corrupt data
	// yields an empty collection.
	LoadTasks(ctx context.Context) []*domain.Task

	// SaveCategories writes the full category list under the category key.
	SaveCategories(ctx context.Context, categories []string)

	// LoadCategories reads the category list. Missing or corrupt data
	// yields an empty list.
	LoadCategories(ctx context.Context) []string

	// Close closes the storage connection.
	Close() error
}
