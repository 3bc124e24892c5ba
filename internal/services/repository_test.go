package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/adapters/storage"
	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// newTestRepository creates a repository backed by an in-memory store.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewRepository(context.Background(), store)
}

func TestRepository_AddTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task, err := repo.AddTask(ctx, "Buy milk", "2%", nil, []string{"errands"})
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if task.Title != "Buy milk" {
		t.Errorf("task.Title = %q, want %q", task.Title, "Buy milk")
	}
	if task.Order != 0 {
		t.Errorf("first task Order = %d, want 0", task.Order)
	}

	second, _ := repo.AddTask(ctx, "Second", "", nil, nil)
	third, _ := repo.AddTask(ctx, "Third", "", nil, nil)
	if second.Order != 1 || third.Order != 2 {
		t.Errorf("orders = %d, %d, want 1, 2", second.Order, third.Order)
	}

	if _, err := repo.AddTask(ctx, "   ", "", nil, nil); err != domain.ErrEmptyTaskTitle {
		t.Errorf("blank title error = %v, want ErrEmptyTaskTitle", err)
	}
}

func TestRepository_AddTask_OrderAfterDeletion(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddTask(ctx, "a", "", nil, nil)
	b, _ := repo.AddTask(ctx, "b", "", nil, nil)
	repo.AddTask(ctx, "c", "", nil, nil)

	repo.DeleteTask(ctx, b.ID)

	d, _ := repo.AddTask(ctx, "d", "", nil, nil)
	if d.Order != 3 {
		t.Errorf("Order after deletion = %d, want 3 (one past the max)", d.Order)
	}
}

func TestRepository_EditTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	due := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	task, _ := repo.AddTask(ctx, "Original", "old text", nil, []string{"home"})

	if err := repo.EditTask(ctx, task.ID, "Updated", "new text", &due, []string{"work"}); err != nil {
		t.Fatalf("EditTask() error = %v", err)
	}

	updated, err := repo.Find(task.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if updated.Title != "Updated" || updated.Description != "new text" {
		t.Errorf("edit did not apply: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", updated.DueDate, due)
	}
	if len(updated.Categories) != 1 || updated.Categories[0] != "work" {
		t.Errorf("Categories = %v, want [work]", updated.Categories)
	}
	if updated.ID != task.ID || !updated.CreatedAt.Equal(task.CreatedAt) || updated.Order != task.Order {
		t.Error("edit must preserve ID, creation time, and order")
	}

	// Blank titles are rejected
	if err := repo.EditTask(ctx, task.ID, "  ", "", nil, nil); err != domain.ErrEmptyTaskTitle {
		t.Errorf("blank title error = %v, want ErrEmptyTaskTitle", err)
	}

	// Unknown IDs are a silent no-op
	if err := repo.EditTask(ctx, "no-such-id", "Title", "", nil, nil); err != nil {
		t.Errorf("unknown ID error = %v, want nil", err)
	}
}

func TestRepository_ToggleAndDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task, _ := repo.AddTask(ctx, "Lifecycle", "", nil, nil)

	if !repo.ToggleComplete(ctx, task.ID) {
		t.Fatal("ToggleComplete should report success for a known ID")
	}
	toggled, _ := repo.Find(task.ID)
	if !toggled.Completed {
		t.Error("task should be completed after toggle")
	}

	if repo.ToggleComplete(ctx, "no-such-id") {
		t.Error("ToggleComplete should report failure for an unknown ID")
	}

	if !repo.DeleteTask(ctx, task.ID) {
		t.Fatal("DeleteTask should report success for a known ID")
	}
	if repo.DeleteTask(ctx, task.ID) {
		t.Error("DeleteTask should report failure once the task is gone")
	}
	if len(repo.Tasks()) != 0 {
		t.Errorf("len(Tasks()) = %d, want 0", len(repo.Tasks()))
	}
}

func TestRepository_ClearAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddTask(ctx, "a", "", nil, nil)
	repo.AddTask(ctx, "b", "", nil, nil)
	repo.AddCategory(ctx, "kept")

	repo.ClearAll(ctx)

	if len(repo.Tasks()) != 0 {
		t.Errorf("len(Tasks()) = %d, want 0", len(repo.Tasks()))
	}
	categories := repo.Categories()
	if len(categories) != 1 || categories[0] != "kept" {
		t.Errorf("Categories() = %v, categories should survive a clear", categories)
	}
}

func TestRepository_ReorderTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a, _ := repo.AddTask(ctx, "a", "", nil, nil)
	b, _ := repo.AddTask(ctx, "b", "", nil, nil)
	c, _ := repo.AddTask(ctx, "c", "", nil, nil)

	repo.SetSort(domain.SortTitleDesc)
	repo.ReorderTasks(ctx, []*domain.Task{c, a, b})

	if repo.FilterState().Sort != domain.SortManual {
		t.Error("reordering should force manual sort")
	}

	got := repo.FilteredTasks()
	want := []string{"c", "a", "b"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("FilteredTasks()[%d] = %q, want %q", i, got[i].Title, title)
		}
		if got[i].Order != i {
			t.Errorf("task %q Order = %d, want %d", title, got[i].Order, i)
		}
	}
}

func TestRepository_MoveTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddTask(ctx, "a", "", nil, nil)
	repo.AddTask(ctx, "b", "", nil, nil)
	c, _ := repo.AddTask(ctx, "c", "", nil, nil)

	if !repo.MoveTask(ctx, c.ID, 0) {
		t.Fatal("MoveTask should report success for a known ID")
	}

	got := repo.FilteredTasks()
	want := []string{"c", "a", "b"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("after move, position %d = %q, want %q", i, got[i].Title, title)
		}
	}

	// Positions beyond the end are clamped
	if !repo.MoveTask(ctx, c.ID, 99) {
		t.Fatal("MoveTask with an out-of-range position should still succeed")
	}
	got = repo.FilteredTasks()
	if got[len(got)-1].Title != "c" {
		t.Errorf("clamped move should place the task last, got %q", got[len(got)-1].Title)
	}

	if repo.MoveTask(ctx, "no-such-id", 0) {
		t.Error("MoveTask should report failure for an unknown ID")
	}
}

func TestRepository_MoveTask_ConcurrentMutations(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	ids := make([]string, 8)
	for i := range ids {
		task, err := repo.AddTask(ctx, string(rune('a'+i)), "", nil, nil)
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		ids[i] = task.ID
	}

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(2)
		go func(id string, pos int) {
			defer wg.Done()
			repo.MoveTask(ctx, id, pos)
		}(id, (i*3)%len(ids))
		go func(id string) {
			defer wg.Done()
			repo.ToggleComplete(ctx, id)
			repo.ToggleComplete(ctx, id)
		}(id)
	}
	wg.Wait()

	// Whatever interleaving happened, the manual order must still be a
	// contiguous 0..n-1 sequence over all tasks.
	got := repo.FilteredTasks()
	if len(got) != len(ids) {
		t.Fatalf("task count = %d, want %d", len(got), len(ids))
	}
	seen := make(map[int]bool)
	for _, task := range got {
		if task.Order < 0 || task.Order >= len(ids) {
			t.Errorf("task %q Order = %d, want within [0, %d)", task.Title, task.Order, len(ids))
		}
		if seen[task.Order] {
			t.Errorf("duplicate Order %d", task.Order)
		}
		seen[task.Order] = true
	}
}

func TestRepository_Categories(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if !repo.AddCategory(ctx, "home") {
		t.Fatal("AddCategory should succeed for a new name")
	}
	if repo.AddCategory(ctx, "home") {
		t.Error("AddCategory should be a no-op for a duplicate")
	}
	if repo.AddCategory(ctx, "  ") {
		t.Error("AddCategory should be a no-op for a blank name")
	}

	// Case-sensitive: "Home" is a distinct category
	if !repo.AddCategory(ctx, "Home") {
		t.Error("category names are case-sensitive")
	}
}

func TestRepository_DeleteCategory_Cascades(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddCategory(ctx, "home")
	repo.AddCategory(ctx, "work")
	task, _ := repo.AddTask(ctx, "Chores", "", nil, []string{"home", "work"})
	repo.SetCategoryFilter("home")

	if !repo.DeleteCategory(ctx, "home") {
		t.Fatal("DeleteCategory should report success for a known name")
	}

	updated, _ := repo.Find(task.ID)
	if updated.HasCategory("home") {
		t.Error("deleted category should be removed from tasks")
	}
	if !updated.HasCategory("work") {
		t.Error("other categories should survive")
	}
	if repo.FilterState().CategoryFilter != "" {
		t.Error("deleting the filtered category should clear the filter")
	}

	if repo.DeleteCategory(ctx, "home") {
		t.Error("DeleteCategory should report failure once the name is gone")
	}
}

func TestRepository_ImportTasks_Replaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddTask(ctx, "existing", "", nil, nil)
	repo.AddCategory(ctx, "old")

	imported := []*domain.Task{
		{ID: "i1", Title: "imported one", CreatedAt: time.Now(), Categories: []string{}},
		{ID: "i2", Title: "imported two", CreatedAt: time.Now(), Categories: []string{}, Order: 1},
	}
	repo.ImportTasks(ctx, imported, []string{"new"})

	tasks := repo.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("len(Tasks()) = %d, want 2", len(tasks))
	}
	if tasks[0].Title != "imported one" {
		t.Errorf("tasks[0].Title = %q", tasks[0].Title)
	}

	categories := repo.Categories()
	if len(categories) != 1 || categories[0] != "new" {
		t.Errorf("Categories() = %v, want [new]", categories)
	}
}

func TestRepository_FilteredTasks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	milk, _ := repo.AddTask(ctx, "Buy milk", "", nil, []string{"errands"})
	repo.AddTask(ctx, "Write report", "", nil, []string{"work"})
	done, _ := repo.AddTask(ctx, "Milk the goat", "", nil, []string{"errands"})
	repo.ToggleComplete(ctx, done.ID)

	repo.SetFilter(domain.FilterActive)
	repo.SetCategoryFilter("errands")
	repo.SetSearchQuery("milk")

	got := repo.FilteredTasks()
	if len(got) != 1 || got[0].ID != milk.ID {
		t.Fatalf("FilteredTasks() = %v, want just %q", got, milk.Title)
	}
}

func TestRepository_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir + "/tasks.db")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	repo := NewRepository(ctx, store)
	task, _ := repo.AddTask(ctx, "Durable", "survives restarts", nil, []string{"infra"})
	repo.AddCategory(ctx, "infra")
	store.Close()

	store2, err := storage.New(dir + "/tasks.db")
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer store2.Close()

	repo2 := NewRepository(ctx, store2)
	reloaded, err := repo2.Find(task.ID)
	if err != nil {
		t.Fatalf("task should survive a restart: %v", err)
	}
	if reloaded.Title != "Durable" || reloaded.Description != "survives restarts" {
		t.Errorf("reloaded task = %+v", reloaded)
	}

	categories := repo2.Categories()
	if len(categories) != 1 || categories[0] != "infra" {
		t.Errorf("reloaded categories = %v, want [infra]", categories)
	}
}

func TestRepository_Find(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	task, _ := repo.AddTask(ctx, "Find me", "", nil, nil)

	byID, err := repo.Find(task.ID)
	if err != nil || byID.ID != task.ID {
		t.Fatalf("Find by exact ID failed: %v", err)
	}

	byPrefix, err := repo.Find(task.ID[:8])
	if err != nil || byPrefix.ID != task.ID {
		t.Fatalf("Find by unique prefix failed: %v", err)
	}

	if _, err := repo.Find("zzzz"); err != domain.ErrTaskNotFound {
		t.Errorf("unknown ref error = %v, want ErrTaskNotFound", err)
	}
}

func TestRepository_FindByTitle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	repo.AddTask(ctx, "Buy groceries", "", nil, nil)
	repo.AddTask(ctx, "Water the plants", "", nil, nil)

	matches := repo.FindByTitle("grocries")
	if len(matches) != 1 || matches[0].Title != "Buy groceries" {
		t.Errorf("FindByTitle should tolerate typos, got %v", matches)
	}

	if got := repo.FindByTitle("xyzzy"); len(got) != 0 {
		t.Errorf("FindByTitle for nonsense = %v, want none", got)
	}
}
