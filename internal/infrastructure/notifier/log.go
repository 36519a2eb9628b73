// Package notifier holds notifiers that do not need an external service.
package notifier

import (
	"context"
	"fmt"

	"georeminder/internal/application/service"
	"georeminder/internal/domain/entity"
	"georeminder/internal/pkg/logger"
)

// LogNotifier writes notifications to the application log. Used when LINE is not configured.
type LogNotifier struct {
	log logger.Logger
}

var _ service.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notification entity.Notification) error {
	n.log.Info(fmt.Sprintf("🔔 Reminder %s: %s at %s (%s)",
		notification.ReminderID, notification.Title, notification.Location, notification.Description))
	return nil
}
