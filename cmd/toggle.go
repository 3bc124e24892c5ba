package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:     "toggle [task]",
	Aliases: []string{"done", "complete"},
	Short:   "Toggle a task's completion",
	Long:    `Flip the completion flag of a task, identified by ID, ID prefix, or title.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}

		if !repo.ToggleComplete(ctx, task.ID) {
			return fmt.Errorf("task not found: %s", task.ID)
		}

		updated, err := repo.Find(task.ID)
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		if jsonOutput {
			jsonData, err := json.MarshalIndent(taskJSON(updated), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal task: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if updated.Completed {
			fmt.Printf("%s Task completed: %s\n", appConfig.Theme.IconDone, updated.Title)
		} else {
			fmt.Printf("%s Task reopened: %s\n", appConfig.Theme.IconTask, updated.Title)
		}
		return nil
	},
}
