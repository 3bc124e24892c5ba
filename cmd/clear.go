package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/tui"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks",
	Long:  `Delete every task in the collection. Categories are kept.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		count := len(repo.Tasks())
		if count == 0 {
			fmt.Println("No tasks to clear.")
			return nil
		}

		if !assumeYes && !jsonOutput {
			prompt := fmt.Sprintf("Delete all %d tasks?", count)
			if !tui.RunConfirm(prompt, &appConfig.Theme) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		repo.ClearAll(ctx)

		if jsonOutput {
			fmt.Printf(`{"cleared": true, "count": %d}`+"\n", count)
			return nil
		}

		fmt.Printf("Cleared %d tasks.\n", count)
		return nil
	},
}
