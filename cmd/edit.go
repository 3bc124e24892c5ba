package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/tui"
)

var (
	editTitle       string
	editDescription string
	editDue         string
	editCategories  string
	editClearDue    bool
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [task]",
	Short: "Edit a task",
	Long:  `Edit the title, description, due date, or categories of an existing task.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}

		flagged := false
		for _, name := range []string{"title", "description", "due", "categories", "clear-due"} {
			if cmd.Flags().Changed(name) {
				flagged = true
				break
			}
		}

		title := task.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		} else if !flagged && !jsonOutput {
			// No edit flags: prompt for a new title interactively
			result := tui.RunTextPrompt("New title:", task.Title, &appConfig.Theme)
			if result.Aborted {
				return nil
			}
			if result.Value != "" {
				title = result.Value
			}
		}
		description := task.Description
		if cmd.Flags().Changed("description") {
			description = editDescription
		}

		dueDate := task.DueDate
		if editClearDue {
			dueDate = nil
		} else if editDue != "" {
			dueDate, err = parseDueDate(editDue)
			if err != nil {
				return err
			}
		}

		categories := task.Categories
		if cmd.Flags().Changed("categories") {
			categories = splitCategories(editCategories)
		}

		if err := repo.EditTask(ctx, task.ID, title, description, dueDate, categories); err != nil {
			return fmt.Errorf("failed to edit task: %w", err)
		}

		updated, err := repo.Find(task.ID)
		if err != nil {
			return fmt.Errorf("failed to edit task: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(taskJSON(updated), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("%s Task updated: %s (ID: %s)\n", appConfig.Theme.IconDone, updated.Title, shortID(updated.ID))
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description")
	editCmd.Flags().StringVar(&editDue, "due", "", "New due date (YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339)")
	editCmd.Flags().StringVarP(&editCategories, "categories", "c", "", "Comma-separated category names (replaces existing)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "Remove the due date")
}
