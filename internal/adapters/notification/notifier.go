// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/nvelasco/taskmaster-cli/internal/config"
)

// Notifier handles desktop notifications for due-date reminders.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// IsEnabled reports whether notifications are turned on.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifyOverdue displays a notification for overdue tasks.
func (n *Notifier) NotifyOverdue(count int, first string) error {
	title := "⏰ Overdue tasks"
	message := fmt.Sprintf("%d task(s) past their due date. Next up: %s", count, first)
	if count == 1 {
		message = fmt.Sprintf("\"%s\" is past its due date.", first)
	}
	return n.Notify(title, message)
}

// NotifyDueSoon displays a notification for tasks approaching their due
// date.
func (n *Notifier) NotifyDueSoon(count int, first string) error {
	title := "📅 Tasks due soon"
	message := fmt.Sprintf("%d task(s) due soon. Next up: %s", count, first)
	if count == 1 {
		message = fmt.Sprintf("\"%s\" is due soon.", first)
	}
	return n.Notify(title, message)
}
