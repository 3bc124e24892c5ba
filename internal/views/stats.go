package views

import (
	"math"
	"time"

	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// Statistics aggregates counts over the full task collection for the
// stats dashboard. All values are derived; nothing here is persisted.
type Statistics struct {
	Total             int
	Completed         int
	Active            int
	Overdue           int
	CompletionRate    int // percentage, 0-100
	CategoryCounts    map[string]int
	CreatedThisWeek   int
	CompletedThisWeek int
	Upcoming          int // due within the next 7 days
	AvgCompletionDays int // mean |due - created| for completed dated tasks
}

// ComputeStatistics derives dashboard statistics from the task collection
// as of the given moment.
func ComputeStatistics(tasks []*domain.Task, now time.Time) Statistics {
	stats := Statistics{
		Total:          len(tasks),
		CategoryCounts: make(map[string]int),
	}

	oneWeekAgo := now.AddDate(0, 0, -7)
	oneWeekAhead := now.AddDate(0, 0, 7)

	var completionSpanDays float64
	var completedWithDates int

	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
		for _, c := range t.Categories {
			stats.CategoryCounts[c]++
		}
		if !t.CreatedAt.Before(oneWeekAgo) {
			stats.CreatedThisWeek++
			if t.Completed {
				stats.CompletedThisWeek++
			}
		}
		if t.DueDate != nil && !t.Completed &&
			!t.DueDate.Before(now) && !t.DueDate.After(oneWeekAhead) {
			stats.Upcoming++
		}
		if t.Completed && t.DueDate != nil {
			completionSpanDays += math.Abs(t.DueDate.Sub(t.CreatedAt).Hours()) / 24
			completedWithDates++
		}
	}

	stats.Active = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	if completedWithDates > 0 {
		stats.AvgCompletionDays = int(math.Round(completionSpanDays / float64(completedWithDates)))
	}

	return stats
}
