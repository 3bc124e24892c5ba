package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	addDescription string
	addDue         string
	addCategories  string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long:  `Add a new task to the Taskmaster list.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		title := joinArgs(args)

		var dueDate *time.Time
		if addDue != "" {
			var err error
			dueDate, err = parseDueDate(addDue)
			if err != nil {
				return err
			}
		}

		task, err := repo.AddTask(ctx, title, addDescription, dueDate, splitCategories(addCategories))
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(taskJSON(task), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("%s Task added: %s (ID: %s)\n", appConfig.Theme.IconDone, task.Title, shortID(task.ID))
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description for the task")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339)")
	addCmd.Flags().StringVarP(&addCategories, "categories", "c", "", "Comma-separated category names")
}
