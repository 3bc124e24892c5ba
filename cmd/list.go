package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

var (
	listFilter   string
	listSort     string
	listSearch   string
	listCategory string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks, narrowed by completion filter, category, and search query.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFilter != "" {
			filter, err := domain.ParseFilterType(listFilter)
			if err != nil {
				return err
			}
			repo.SetFilter(filter)
		}
		if listSort != "" {
			sortType, err := domain.ParseSortType(listSort)
			if err != nil {
				return err
			}
			repo.SetSort(sortType)
		}
		repo.SetSearchQuery(listSearch)
		repo.SetCategoryFilter(listCategory)

		tasks := repo.FilteredTasks()

		if jsonOutput {
			taskList := make([]map[string]interface{}, 0, len(tasks))
			for _, task := range tasks {
				taskList = append(taskList, taskJSON(task))
			}
			data := map[string]interface{}{
				"tasks": taskList,
				"count": len(taskList),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tasks: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		theme := &appConfig.Theme
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle))
		doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDone)).Strikethrough(true)
		overdueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorOverdue))
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp))

		fmt.Printf("%s Tasks (%d):\n\n", theme.IconTask, len(tasks))
		now := time.Now()
		for _, task := range tasks {
			icon := " "
			title := titleStyle.Render(task.Title)
			if task.Completed {
				icon = theme.IconDone
				title = doneStyle.Render(task.Title)
			}
			fmt.Printf("%s %s %s\n", icon, title, helpStyle.Render("(ID: "+shortID(task.ID)+")"))
			if task.Description != "" {
				fmt.Printf("   %s\n", helpStyle.Render(task.Description))
			}
			if task.DueDate != nil {
				due := "Due: " + task.DueDate.Format("2006-01-02")
				if task.IsOverdue(now) {
					fmt.Printf("   %s\n", overdueStyle.Render(due+" (overdue)"))
				} else {
					fmt.Printf("   %s\n", helpStyle.Render(due))
				}
			}
			if len(task.Categories) > 0 {
				fmt.Printf("   %s\n", helpStyle.Render(fmt.Sprintf("Categories: %v", task.Categories)))
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Completion filter (all, active, completed)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort order (manual, date_desc, date_asc, title_asc, title_desc)")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Search query matched against title, description, and categories")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Keep only tasks in this category")
}
