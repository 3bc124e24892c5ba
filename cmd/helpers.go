package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// dueDateLayouts are accepted by --due, most specific first.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// shortID abbreviates an ID for display. IDs are opaque strings: generated
// ones are uuids, but imported ones can be arbitrarily short.
func shortID(id string) string {
	runes := []rune(id)
	if len(runes) <= 8 {
		return id
	}
	return string(runes[:8])
}

// resolveTask finds a task by exact ID, unique ID prefix, or fuzzy title match.
func resolveTask(ref string) (*domain.Task, error) {
	task, err := repo.Find(ref)
	if err == nil {
		return task, nil
	}

	matches := repo.FindByTitle(ref)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		titles := make([]string, len(matches))
		for i, m := range matches {
			titles[i] = fmt.Sprintf("%q (ID: %s)", m.Title, shortID(m.ID))
		}
		return nil, fmt.Errorf("%q is ambiguous, matches: %s", ref, strings.Join(titles, ", "))
	}
}

// parseDueDate parses a due date flag value, trying each accepted layout.
func parseDueDate(value string) (*time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339)", value)
}

// splitCategories parses a comma-separated category flag value.
func splitCategories(raw string) []string {
	if raw == "" {
		return nil
	}
	var categories []string
	for _, c := range strings.Split(raw, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}

// taskJSON renders a task for --json output.
func taskJSON(t *domain.Task) map[string]interface{} {
	data := map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"completed":   t.Completed,
		"categories":  t.Categories,
		"order":       t.Order,
		"created_at":  t.CreatedAt.Format(domain.TimestampLayout),
	}
	if t.DueDate != nil {
		data["due_date"] = t.DueDate.Format(domain.TimestampLayout)
	}
	return data
}

// joinArgs combines positional arguments into a single title string.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
