package storage

import (
	"fmt"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// taskRecord is the persisted shape of a task. Timestamps are ISO-8601
// strings; an absent due date is omitted rather than written as a
// sentinel. Categories and order are pointers on the way in so records
// written before those fields existed can be defaulted.
type taskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"createdAt"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Order       *int     `json:"order,omitempty"`
}

func encodeTasks(tasks []*domain.Task) []taskRecord {
	records := make([]taskRecord, len(tasks))
	for i, t := range tasks {
		order := t.Order
		records[i] = taskRecord{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.UTC().Format(domain.TimestampLayout),
			Categories:  t.Categories,
			Order:       &order,
		}
		if records[i].Categories == nil {
			records[i].Categories = []string{}
		}
		if t.DueDate != nil {
			due := t.DueDate.UTC().Format(domain.TimestampLayout)
			records[i].DueDate = &due
		}
	}
	return records
}

// decodeTasks reconstructs tasks from stored records, applying the
// migration defaults for records written before categories and manual
// ordering existed: missing categories become empty, a missing order
// becomes the record's position in the array.
func decodeTasks(records []taskRecord) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, len(records))
	for i, rec := range records {
		createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("task %q: bad createdAt %q: %w", rec.ID, rec.CreatedAt, err)
		}

		task := &domain.Task{
			ID:          rec.ID,
			Title:       rec.Title,
			Description: rec.Description,
			Completed:   rec.Completed,
			CreatedAt:   createdAt,
			Categories:  rec.Categories,
			Order:       i,
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
				return nil, fmt.Errorf("task %q: bad dueDate %q: %w", rec.ID, *rec.DueDate, err)
			}
			task.DueDate = &due
		}
		tasks[i] = task
	}
	return tasks, nil
}
