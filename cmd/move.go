package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// moveCmd represents the move command
var moveCmd = &cobra.Command{
	Use:   "move [task] [position]",
	Short: "Move a task to a new position",
	Long: `Move a task to a new position in the manual ordering (1-based).
Moving a task switches the list to manual sort order.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := resolveTask(args[0])
		if err != nil {
			return err
		}

		position, err := strconv.Atoi(args[1])
		if err != nil || position < 1 {
			return fmt.Errorf("invalid position %q (expected a 1-based index)", args[1])
		}

		if !repo.MoveTask(ctx, task.ID, position-1) {
			return fmt.Errorf("task not found: %s", task.ID)
		}

		if jsonOutput {
			fmt.Printf(`{"moved": true, "task_id": %q, "position": %d}`+"\n", task.ID, position)
			return nil
		}

		fmt.Printf("Moved %q to position %d.\n", task.Title, position)
		return nil
	},
}
