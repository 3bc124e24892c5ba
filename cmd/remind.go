package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/nvelasco/taskmaster-cli/internal/domain"
)

// remindCmd represents the remind command
var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send desktop notifications for overdue and upcoming tasks",
	Long: `Check active tasks against their due dates and send desktop
notifications for anything overdue or due within the configured window.
Intended to be run periodically, e.g. from cron.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		window := time.Duration(appConfig.Notifications.DueWindow)

		var overdue, dueSoon []*domain.Task
		for _, task := range repo.Tasks() {
			if task.Completed {
				continue
			}
			switch {
			case task.IsOverdue(now):
				overdue = append(overdue, task)
			case task.IsDueWithin(now, window):
				dueSoon = append(dueSoon, task)
			}
		}

		if len(overdue) == 0 && len(dueSoon) == 0 {
			fmt.Println("Nothing due. You're all caught up.")
			return nil
		}

		if notifier.IsEnabled() {
			if len(overdue) > 0 {
				if err := notifier.NotifyOverdue(len(overdue), overdue[0].Title); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
				}
			}
			if len(dueSoon) > 0 {
				if err := notifier.NotifyDueSoon(len(dueSoon), dueSoon[0].Title); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: notification failed: %v\n", err)
				}
			}
		}

		for _, task := range overdue {
			fmt.Printf("Overdue: %s (due %s)\n", task.Title, task.DueDate.Format("2006-01-02"))
		}
		for _, task := range dueSoon {
			fmt.Printf("Due soon: %s (due %s)\n", task.Title, task.DueDate.Format("2006-01-02 15:04"))
		}

		return nil
	},
}
