package cmd

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/views"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of task statistics",
	Long:  `Display a terminal dashboard with task counts, completion rate, per-category totals, and due-date summaries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		stats := views.ComputeStatistics(repo.Tasks(), now)

		if jsonOutput {
			data := map[string]interface{}{
				"total":               stats.Total,
				"completed":           stats.Completed,
				"active":              stats.Active,
				"overdue":             stats.Overdue,
				"completion_rate":     stats.CompletionRate,
				"category_counts":     stats.CategoryCounts,
				"created_this_week":   stats.CreatedThisWeek,
				"completed_this_week": stats.CompletedThisWeek,
				"upcoming":            stats.Upcoming,
				"avg_completion_days": stats.AvgCompletionDays,
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal statistics: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		renderDashboard(&stats)
		return nil
	},
}

func renderDashboard(stats *views.Statistics) {
	theme := &appConfig.Theme
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorAccent))
	overdueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorOverdue))
	barColor := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorAccent))

	// Header
	fmt.Printf("  %s %s\n", theme.IconStats, titleStyle.Render("Taskmaster"))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Summary line
	fmt.Printf("  Total: %s tasks, %s done, %s active\n\n",
		valueStyle.Render(fmt.Sprintf("%d", stats.Total)),
		valueStyle.Render(fmt.Sprintf("%d", stats.Completed)),
		valueStyle.Render(fmt.Sprintf("%d", stats.Active)),
	)

	if stats.Total == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No tasks yet. Add one with \"taskmaster add\"."))
		return
	}

	// Completion rate bar
	maxBarWidth := 30
	barWidth := int(math.Round(float64(stats.CompletionRate) / 100 * float64(maxBarWidth)))
	fmt.Printf("  %s %s %s\n\n",
		dimStyle.Render("Completion"),
		barColor.Render(buildBar(barWidth)),
		valueStyle.Render(fmt.Sprintf("%d%%", stats.CompletionRate)),
	)

	if stats.Overdue > 0 {
		fmt.Printf("  %s  %s\n\n",
			dimStyle.Render("Overdue:"),
			overdueStyle.Render(fmt.Sprintf("%d", stats.Overdue)),
		)
	}

	// Bar chart: tasks per category
	if len(stats.CategoryCounts) > 0 {
		fmt.Printf("  %s\n", dimStyle.Render("Tasks by category"))

		type categoryEntry struct {
			Name  string
			Count int
		}
		entries := make([]categoryEntry, 0, len(stats.CategoryCounts))
		maxCount := 0
		for name, count := range stats.CategoryCounts {
			entries = append(entries, categoryEntry{Name: name, Count: count})
			if count > maxCount {
				maxCount = count
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Name < entries[j].Name
		})

		for _, e := range entries {
			barWidth := 0
			if maxCount > 0 {
				barWidth = int(math.Round(float64(e.Count) / float64(maxCount) * float64(maxBarWidth)))
			}
			if barWidth < 1 && e.Count > 0 {
				barWidth = 1
			}
			nameLabel := fmt.Sprintf("%-12s", e.Name)
			fmt.Printf("  %s %s %d\n",
				dimStyle.Render(nameLabel),
				barColor.Render(buildBar(barWidth)),
				e.Count,
			)
		}
		fmt.Println()
	}

	// Weekly activity
	fmt.Printf("  %s  created %s, completed %s\n",
		dimStyle.Render("This week:"),
		valueStyle.Render(fmt.Sprintf("%d", stats.CreatedThisWeek)),
		valueStyle.Render(fmt.Sprintf("%d", stats.CompletedThisWeek)),
	)

	if stats.Upcoming > 0 {
		fmt.Printf("  %s  %s due in the next 7 days\n",
			dimStyle.Render("Upcoming: "),
			valueStyle.Render(fmt.Sprintf("%d", stats.Upcoming)),
		)
	}

	if stats.AvgCompletionDays > 0 {
		fmt.Printf("  %s  %s days from creation to done\n",
			dimStyle.Render("Avg turnaround:"),
			valueStyle.Render(fmt.Sprintf("%d", stats.AvgCompletionDays)),
		)
	}
	fmt.Println()
}

// buildBar creates a horizontal bar using block characters.
func buildBar(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat("█", width)
}
