package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/export"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/tui"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import tasks from a JSON export",
	Long: `Import tasks from a JSON file produced by "taskmaster export".

Importing replaces the entire collection: current tasks and categories are
discarded in favor of the file's contents.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		payload, err := export.ImportJSON(f)
		if err != nil {
			return err
		}

		if !assumeYes && !jsonOutput {
			prompt := fmt.Sprintf("Replace %d tasks with %d imported tasks?", len(repo.Tasks()), len(payload.Tasks))
			if !tui.RunConfirm(prompt, &appConfig.Theme) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		repo.ImportTasks(ctx, payload.Tasks, payload.Categories)

		if jsonOutput {
			fmt.Printf(`{"imported": true, "tasks": %d, "categories": %d}`+"\n", len(payload.Tasks), len(payload.Categories))
			return nil
		}

		fmt.Printf("%s Imported %d tasks and %d categories.\n", appConfig.Theme.IconDone, len(payload.Tasks), len(payload.Categories))
		return nil
	},
}
