package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/adapters/export"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks to JSON or CSV",
	Long: `Export the task collection.

JSON exports carry the full collection (tasks, categories, export timestamp,
format version) and can be re-imported with "taskmaster import". CSV exports
are a display-oriented snapshot and cannot be imported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		tasks := repo.Tasks()

		switch exportFormat {
		case "json":
			if err := export.JSON(w, tasks, repo.Categories()); err != nil {
				return fmt.Errorf("failed to export tasks: %w", err)
			}
		case "csv":
			if err := export.CSV(w, tasks); err != nil {
				return fmt.Errorf("failed to export tasks: %w", err)
			}
		default:
			return fmt.Errorf("unknown export format %q (expected json or csv)", exportFormat)
		}

		if exportOutput != "" {
			fmt.Fprintf(os.Stderr, "Exported %d tasks to %s\n", len(tasks), exportOutput)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json or csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}
