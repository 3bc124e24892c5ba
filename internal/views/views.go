// Package views derives displayed task lists from the authoritative
// collection. Every function is pure: inputs are never mutated and the
// returned slices are freshly allocated.
package views

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// FilterTasks narrows the task list by completion state, category, and
// search query, in that fixed order. Remaining tasks keep their relative
// order from the input.
func FilterTasks(tasks []*domain.Task, filter domain.FilterType, searchQuery, categoryFilter string) []*domain.Task {
	filtered := make([]*domain.Task, 0, len(tasks))
	filtered = append(filtered, tasks...)

	switch filter {
	case domain.FilterActive:
		filtered = keep(filtered, func(t *domain.Task) bool { return !t.Completed })
	case domain.FilterCompleted:
		filtered = keep(filtered, func(t *domain.Task) bool { return t.Completed })
	}

	if categoryFilter != "" {
		filtered = keep(filtered, func(t *domain.Task) bool { return t.HasCategory(categoryFilter) })
	}

	if query := strings.TrimSpace(searchQuery); query != "" {
		query = strings.ToLower(query)
		filtered = keep(filtered, func(t *domain.Task) bool { return matchesQuery(t, query) })
	}

	return filtered
}

// matchesQuery reports whether the lowercased query is a substring of the
// task's title, description, or any of its category names.
func matchesQuery(t *domain.Task, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), query) {
		return true
	}
	for _, c := range t.Categories {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

// SortTasks returns a new ordering of the task list. The input is never
// mutated and the sort is stable, so ties keep their input order.
// An unrecognized sort type falls back to manual ordering.
func SortTasks(tasks []*domain.Task, sortType domain.SortType) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)

	switch sortType {
	case domain.SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case domain.SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case domain.SortTitleAsc:
		c := titleCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case domain.SortTitleDesc:
		c := titleCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[j].Title, sorted[i].Title) < 0
		})
	default:
		// Manual, and the defensive fallback for anything unknown.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Order < sorted[j].Order
		})
	}

	return sorted
}

// titleCollator builds a locale-aware, case-insensitive collator.
// Collators are not safe for concurrent use, so one is built per sort.
func titleCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

func keep(tasks []*domain.Task, pred func(*domain.Task) bool) []*domain.Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if pred(t) {
			kept = append(kept, t)
		}
	}
	return kept
}
