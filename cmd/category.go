package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/tui"
)

// categoryCmd groups the category subcommands
var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage categories",
	Long:    `Add, remove, and list the categories tasks can reference.`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name := args[0]
		if !repo.AddCategory(ctx, name) {
			fmt.Printf("Category %q already exists.\n", name)
			return nil
		}

		fmt.Printf("%s Category added: %s\n", appConfig.Theme.IconCategory, name)
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:     "rm [name]",
	Aliases: []string{"delete"},
	Short:   "Delete a category",
	Long:    `Delete a category. The category is also removed from every task that references it.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name := args[0]
		if !assumeYes && !jsonOutput {
			prompt := fmt.Sprintf("Delete category %q? It will be removed from every task.", name)
			if !tui.RunConfirm(prompt, &appConfig.Theme) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if !repo.DeleteCategory(ctx, name) {
			return fmt.Errorf("category not found: %s", name)
		}

		fmt.Printf("Category deleted: %s\n", name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories := repo.Categories()

		if jsonOutput {
			data := map[string]interface{}{
				"categories": categories,
				"count":      len(categories),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal categories: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(categories) == 0 {
			fmt.Println("No categories defined.")
			return nil
		}

		fmt.Printf("%s Categories (%d):\n\n", appConfig.Theme.IconCategory, len(categories))
		for _, c := range categories {
			fmt.Printf("  %s\n", c)
		}
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	categoryCmd.AddCommand(categoryListCmd)
}
