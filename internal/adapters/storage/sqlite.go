// Package storage provides the SQLite implementation of the task store
// port. The full task collection and the category list are persisted as
// JSON array payloads under fixed keys in a small key-value table, and
// every read tolerates missing or corrupt data by falling back to an
// empty collection.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
	"github.com/nvelasco/taskmaster-cli/internal/ports"
)

// Persistence keys. These match the original storage layout, so payloads
// round-trip between installations.
const (
	tasksKey      = "taskmaster_tasks"
	categoriesKey = "taskmaster_categories"
)

// Store implements ports.TaskStore using SQLite.
type Store struct {
	db *sql.DB
}

// Ensure Store implements ports.TaskStore.
var _ ports.TaskStore = (*Store)(nil)

// New creates a new SQLite store instance.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	store := &Store{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// NewMemory creates a new in-memory store instance for testing.
func NewMemory() (*Store, error) {
	return New(":memory:")
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema.
func (s *Store) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// SaveTasks writes the full task collection under the task key.
// Failures are logged and swallowed: a failed save degrades to "changes
// not persisted" without crashing the application.
func (s *Store) SaveTasks(ctx context.Context, tasks []*domain.Task) {
	records := encodeTasks(tasks)
	data, err := json.Marshal(records)
	if err != nil {
		warn("failed to serialize tasks: %v", err)
		return
	}
	if err := s.put(ctx, tasksKey, data); err != nil {
		warn("failed to save tasks: %v", err)
	}
}

// LoadTasks reads the task collection. A missing key or a corrupt payload
// yields an empty collection, never an error.
func (s *Store) LoadTasks(ctx context.Context) []*domain.Task {
	data, ok := s.get(ctx, tasksKey)
	if !ok {
		return []*domain.Task{}
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		warn("failed to parse stored tasks: %v", err)
		return []*domain.Task{}
	}

	tasks, err := decodeTasks(records)
	if err != nil {
		warn("failed to decode stored tasks: %v", err)
		return []*domain.Task{}
	}
	return tasks
}

// SaveCategories writes the full category list under the category key.
// Failures are logged and swallowed.
func (s *Store) SaveCategories(ctx context.Context, categories []string) {
	if categories == nil {
		categories = []string{}
	}
	data, err := json.Marshal(categories)
	if err != nil {
		warn("failed to serialize categories: %v", err)
		return
	}
	if err := s.put(ctx, categoriesKey, data); err != nil {
		warn("failed to save categories: %v", err)
	}
}

// LoadCategories reads the category list, falling back to empty on
// missing or corrupt data.
func (s *Store) LoadCategories(ctx context.Context) []string {
	data, ok := s.get(ctx, categoriesKey)
	if !ok {
		return []string{}
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		warn("failed to parse stored categories: %v", err)
		return []string{}
	}
	if categories == nil {
		categories = []string{}
	}
	return categories
}

func (s *Store) put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := s.db.ExecContext(ctx, query, key, string(value))
	return err
}

func (s *Store) get(ctx context.Context, key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		warn("failed to read %s: %v", key, err)
		return nil, false
	}
	return []byte(value), true
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
