// Package export serializes the task collection for backup and re-import.
// JSON exports are round-trippable; CSV exports are display-only and are
// never read back.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// Version identifies the JSON envelope format.
const Version = "1.0"

// ErrInvalidFormat is returned when an imported file has no tasks array.
var ErrInvalidFormat = errors.New("invalid file format: tasks array not found")

// csvHeader is the fixed CSV column set.
var csvHeader = []string{"Title", "Description", "Status", "Created", "Due Date", "Categories"}

// displayDateLayout renders dates for the CSV export. It is a display
// format, not a round-trippable one.
const displayDateLayout = "1/2/2006"

// Payload is the parsed result of a JSON import. It is returned to the
// caller for explicit application; importing never mutates the repository
// directly.
type Payload struct {
	Tasks      []*domain.Task
	Categories []string
}

type envelope struct {
	Tasks      []jsonTask `json:"tasks"`
	Categories []string   `json:"categories"`
	ExportedAt string     `json:"exportedAt"`
	Version    string     `json:"version"`
}

// jsonTask is the envelope shape of a task. An absent due date is written
// as an explicit null.
type jsonTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"createdAt"`
	DueDate     *string  `json:"dueDate"`
	Categories  []string `json:"categories,omitempty"`
	Order       *int     `json:"order,omitempty"`
}

// JSON writes the backup envelope for the given collections.
// An empty task list is rejected with domain.ErrNothingToExport.
func JSON(w io.Writer, tasks []*domain.Task, categories []string) error {
	if len(tasks) == 0 {
		return domain.ErrNothingToExport
	}
	if categories == nil {
		categories = []string{}
	}

	env := envelope{
		Tasks:      make([]jsonTask, len(tasks)),
		Categories: categories,
		ExportedAt: time.Now().UTC().Format(domain.TimestampLayout),
		Version:    Version,
	}
	for i, t := range tasks {
		order := t.Order
		jt := jsonTask{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.UTC().Format(domain.TimestampLayout),
			Categories:  t.Categories,
			Order:       &order,
		}
		if jt.Categories == nil {
			jt.Categories = []string{}
		}
		if t.DueDate != nil {
			due := t.DueDate.UTC().Format(domain.TimestampLayout)
			jt.DueDate = &due
		}
		env.Tasks[i] = jt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// CSV writes a display-oriented spreadsheet of the task list: one quoted
// row per task, completion rendered as Completed/Active, dates in display
// format, categories joined with "; ". Every cell is quoted with embedded
// quotes doubled. An empty task list is rejected.
func CSV(w io.Writer, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return domain.ErrNothingToExport
	}

	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, joinRow(csvHeader))

	for _, t := range tasks {
		status := "Active"
		if t.Completed {
			status = "Completed"
		}
		due := "No due date"
		if t.DueDate != nil {
			due = t.DueDate.Format(displayDateLayout)
		}
		lines = append(lines, joinRow([]string{
			t.Title,
			t.Description,
			status,
			t.CreatedAt.Format(displayDateLayout),
			due,
			strings.Join(t.Categories, "; "),
		}))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// joinRow quotes every cell and doubles embedded quotes.
func joinRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, cell := range cells {
		quoted[i] = `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ImportJSON parses a backup file and returns its payload without touching
// any repository state. It fails with a descriptive error when the file
// cannot be read, the JSON cannot be parsed, or the top-level tasks field
// is missing or not an array. Missing categories default to empty and a
// missing order defaults to 0.
func ImportJSON(r io.Reader) (*Payload, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var raw struct {
		Tasks      json.RawMessage `json:"tasks"`
		Categories []string        `json:"categories"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON file: %w", err)
	}
	if len(raw.Tasks) == 0 || string(raw.Tasks) == "null" {
		return nil, ErrInvalidFormat
	}

	var records []jsonTask
	if err := json.Unmarshal(raw.Tasks, &records); err != nil {
		return nil, ErrInvalidFormat
	}

	tasks := make([]*domain.Task, len(records))
	for i, rec := range records {
		createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON file: task %q has bad createdAt %q", rec.ID, rec.CreatedAt)
		}

		task := &domain.Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Completed:   rec.Completed,
			CreatedAt:   createdAt,
			Categories:  rec.Categories,
		}
		if task.Categories == nil {
			task.Categories = []string{}
		}
		if rec.Order != nil {
			task.Order = *rec.Order
		}
		if rec.DueDate != nil {
			due, err := time.Parse(time.RFC3339, *rec.DueDate)
			if err != nil {
				return nil, fmt.Errorf("failed to parse JSON file: task %q has bad dueDate %q", rec.ID, *rec.DueDate)
			}
			task.DueDate = &due
		}
		tasks[i] = task
	}

	categories := raw.Categories
	if categories == nil {
		categories = []string{}
	}

	return &Payload{Tasks: tasks, Categories: categories}, nil
}
