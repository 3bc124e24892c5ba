// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
	"github.com/nvelasco/taskmaster-cli/internal/ports"
	"github.com/nvelasco/taskmaster-cli/internal/views"
)

// Repository is the single authoritative in-memory collection of tasks and
// categories. All mutation goes through it, and every mutation writes the
// full current state through to the store. The store itself is fail-soft,
// so a failed write leaves the in-memory state correct but not durable.
//
// The filter/sort/search state lives here too; it is transient and never
// persisted. Consumers receive snapshots and never share mutable state
// with the repository.
type Repository struct {
	mu         sync.Mutex
	store      ports.TaskStore
	tasks      []*domain.Task
	categories []string
	state      domain.FilterState
}

// Ensure Repository implements the provider port.
var _ ports.TaskProvider = (*Repository)(nil)

// NewRepository creates a repository and loads both collections from the
// store. Missing or corrupt stored data yields an empty, usable state.
func NewRepository(ctx context.Context, store ports.TaskStore) *Repository {
	return &Repository{
		store:      store,
		tasks:      store.LoadTasks(ctx),
		categories: store.LoadCategories(ctx),
		state:      domain.DefaultFilterState(),
	}
}

// AddTask creates a new task and appends it to the collection.
// The order field is assigned one past the current maximum, or 0 for the
// first task.
func (r *Repository) AddTask(ctx context.Context, title, description string, dueDate *time.Time, categories []string) (*domain.Task, error) {
	task, err := domain.NewTask(title, description)
	if err != nil {
		return nil, err
	}
	if dueDate != nil {
		due := *dueDate
		task.DueDate = &due
	}
	if len(categories) > 0 {
		task.Categories = append([]string{}, categories...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task.Order = r.nextOrder()
	r.tasks = append(r.tasks, task)
	r.persistTasks(ctx)

	return task.Clone(), nil
}

// EditTask replaces the title, description, due date, and categories of the
// matching task. ID, creation time, completion flag, and manual order are
// preserved. An unknown ID is a silent no-op; a blank title is rejected.
func (r *Repository) EditTask(ctx context.Context, id, title, description string, dueDate *time.Time, categories []string) error {
	if strings.TrimSpace(title) == "" {
		return domain.ErrEmptyTaskTitle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.findLocked(id)
	if task == nil {
		return nil
	}

	task.Title = title
	task.Description = description
	task.DueDate = nil
	if dueDate != nil {
		due := *dueDate
		task.DueDate = &due
	}
	task.Categories = append([]string{}, categories...)
	r.persistTasks(ctx)

	return nil
}

// ToggleComplete flips the completion flag on the matching task.
// It reports whether the task existed.
func (r *Repository) ToggleComplete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.findLocked(id)
	if task == nil {
		return false
	}
	task.Toggle()
	r.persistTasks(ctx)
	return true
}

// DeleteTask removes the matching task, reporting whether it existed.
func (r *Repository) DeleteTask(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persistTasks(ctx)
			return true
		}
	}
	return false
}

// ClearAll empties the task collection. Categories are untouched.
// Confirmation is the caller's concern; the repository clears
// unconditionally once called.
func (r *Repository) ClearAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = []*domain.Task{}
	r.persistTasks(ctx)
}

// ReorderTasks replaces the task collection with the given sequence and
// re-derives each task's order from its new position. The sort mode is
// forced to manual so the new order is not immediately overridden.
func (r *Repository) ReorderTasks(ctx context.Context, ordered []*domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reorderLocked(ctx, ordered)
}

// reorderLocked installs the given sequence as the new manual order.
// Callers must hold r.mu.
func (r *Repository) reorderLocked(ctx context.Context, ordered []*domain.Task) {
	replaced := make([]*domain.Task, len(ordered))
	for i, t := range ordered {
		clone := t.Clone()
		clone.Order = i
		replaced[i] = clone
	}
	r.tasks = replaced
	r.state.Sort = domain.SortManual
	r.persistTasks(ctx)
}

// MoveTask moves the matching task to the given position in manual order
// (clamped to the collection bounds) and reorders the whole collection
// around it. It reports whether the task existed.
func (r *Repository) MoveTask(ctx context.Context, id string, position int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := views.SortTasks(r.tasks, domain.SortManual)

	from := -1
	for i, t := range current {
		if t.ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return false
	}

	if position < 0 {
		position = 0
	}
	if position >= len(current) {
		position = len(current) - 1
	}

	task := current[from]
	current = append(current[:from], current[from+1:]...)
	current = append(current[:position], append([]*domain.Task{task}, current[position:]...)...)

	r.reorderLocked(ctx, current)
	return true
}

// AddCategory appends a new category name. Names already present (exact,
// case-sensitive match) and blank names are no-ops. It reports whether the
// category was added.
func (r *Repository) AddCategory(ctx context.Context, name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c == name {
			return false
		}
	}
	r.categories = append(r.categories, name)
	r.persistCategories(ctx)
	return true
}

// DeleteCategory removes the named category from the available list and
// from every task's category sequence, and clears the active category
// filter if it pointed at the name. It reports whether the category was
// present in the available list.
func (r *Repository) DeleteCategory(ctx context.Context, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	kept := r.categories[:0]
	for _, c := range r.categories {
		if c == name {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	r.categories = kept

	for _, t := range r.tasks {
		t.RemoveCategory(name)
	}
	if r.state.CategoryFilter == name {
		r.state.CategoryFilter = ""
	}

	r.persistCategories(ctx)
	r.persistTasks(ctx)
	return found
}

// ImportTasks replaces both collections wholesale. No merge, no dedup;
// existing data is discarded. Confirmation is the caller's concern.
func (r *Repository) ImportTasks(ctx context.Context, tasks []*domain.Task, categories []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		replaced[i] = t.Clone()
	}
	r.tasks = replaced
	r.categories = append([]string{}, categories...)

	r.persistTasks(ctx)
	r.persistCategories(ctx)
}

// Tasks returns a snapshot of the full task collection.
func (r *Repository) Tasks() []*domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// Categories returns a snapshot of the available category list.
func (r *Repository) Categories() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.categories...)
}

// FilterState returns the current transient view state.
func (r *Repository) FilterState() domain.FilterState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetFilter sets the completion filter.
func (r *Repository) SetFilter(f domain.FilterType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Filter = f
}

// SetSort sets the sort mode.
func (r *Repository) SetSort(s domain.SortType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Sort = s
}

// SetSearchQuery sets the search query.
func (r *Repository) SetSearchQuery(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.SearchQuery = q
}

// SetCategoryFilter sets the active category filter; empty clears it.
func (r *Repository) SetCategoryFilter(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.CategoryFilter = name
}

// FilteredTasks derives the displayed list for the current view state:
// the filtered collection in the selected order. It is recomputed on every
// call and is never a second source of truth.
func (r *Repository) FilteredTasks() []*domain.Task {
	r.mu.Lock()
	snapshot := r.snapshotLocked()
	state := r.state
	r.mu.Unlock()

	filtered := views.FilterTasks(snapshot, state.Filter, state.SearchQuery, state.CategoryFilter)
	return views.SortTasks(filtered, state.Sort)
}

// Find retrieves a task by exact ID, or by unique ID prefix.
func (r *Repository) Find(id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t := r.findLocked(id); t != nil {
		return t.Clone(), nil
	}

	var match *domain.Task
	for _, t := range r.tasks {
		if strings.HasPrefix(t.ID, id) {
			if match != nil {
				return nil, domain.ErrTaskNotFound
			}
			match = t
		}
	}
	if match == nil {
		return nil, domain.ErrTaskNotFound
	}
	return match.Clone(), nil
}

// FindByTitle does a fuzzy search for tasks by title, best matches first.
func (r *Repository) FindByTitle(query string) []*domain.Task {
	snapshot := r.Tasks()

	titles := make([]string, len(snapshot))
	for i, t := range snapshot {
		titles[i] = t.Title
	}

	matches := fuzzy.Find(query, titles)

	var result []*domain.Task
	for _, match := range matches {
		if match.Score > 0 {
			result = append(result, snapshot[match.Index])
		}
	}
	return result
}

// nextOrder returns one past the current maximum order, or 0 for an empty
// collection. Callers must hold the lock.
func (r *Repository) nextOrder() int {
	if len(r.tasks) == 0 {
		return 0
	}
	max := r.tasks[0].Order
	for _, t := range r.tasks[1:] {
		if t.Order > max {
			max = t.Order
		}
	}
	return max + 1
}

func (r *Repository) findLocked(id string) *domain.Task {
	for _, t := range r.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (r *Repository) snapshotLocked() []*domain.Task {
	snapshot := make([]*domain.Task, len(r.tasks))
	for i, t := range r.tasks {
		snapshot[i] = t.Clone()
	}
	return snapshot
}

// persistTasks writes the full task collection through to the store.
// Callers must hold the lock. The store swallows and logs failures.
func (r *Repository) persistTasks(ctx context.Context) {
	r.store.SaveTasks(ctx, r.tasks)
}

// persistCategories writes the full category list through to the store.
// Callers must hold the lock.
func (r *Repository) persistCategories(ctx context.Context) {
	r.store.SaveCategories(ctx, r.categories)
}
