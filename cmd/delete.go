package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/tui"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Delete a task, identified by ID, ID prefix, or title.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}

		if !assumeYes && !jsonOutput {
			prompt := fmt.Sprintf("Delete %q?", task.Title)
			if !tui.RunConfirm(prompt, &appConfig.Theme) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if !repo.DeleteTask(ctx, task.ID) {
			return fmt.Errorf("task not found: %s", task.ID)
		}

		if jsonOutput {
			fmt.Printf(`{"deleted": true, "task_id": %q}`+"\n", task.ID)
			return nil
		}

		fmt.Printf("Task deleted: %s\n", task.Title)
		return nil
	},
}
