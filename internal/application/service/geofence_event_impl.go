package service

import (
	"context"
	"fmt"

	"georeminder/internal/domain/entity"
	"georeminder/internal/pkg/logger"
	"georeminder/internal/pkg/metrics"
)

type geofenceEventHandler struct {
	reminders ReminderService
	notifier  Notifier
	log       logger.Logger
}

// NewGeofenceEventHandler creates a new instance of GeofenceEventHandler implementation.
func NewGeofenceEventHandler(reminders ReminderService, notifier Notifier, log logger.Logger) GeofenceEventHandler {
	return &geofenceEventHandler{
		reminders: reminders,
		notifier:  notifier,
		log:       log,
	}
}

func (h *geofenceEventHandler) HandleEvent(ctx context.Context, event entity.GeofenceEvent) {
	if event.ErrorCode != 0 {
		h.log.Warn(fmt.Sprintf("Geofence event carried error code %d, dropping", event.ErrorCode))
		metrics.GeofenceEvents.WithLabelValues("error").Inc()
		return
	}
	if event.Transition != entity.TransitionEnter {
		h.log.Debug(fmt.Sprintf("Ignoring geofence transition %q", event.Transition))
		metrics.GeofenceEvents.WithLabelValues("ignored").Inc()
		return
	}

	for _, id := range event.RequestIDs {
		res := h.reminders.GetReminder(ctx, id)
		reminder, ok := res.Get()
		if !ok {
			// The reminder was deleted after its geofence was armed.
			h.log.Debug(fmt.Sprintf("No reminder for geofence %s: %s", id, res.Message()))
			metrics.GeofenceEvents.WithLabelValues("dropped").Inc()
			continue
		}

		n := entity.Notification{
			ReminderID:  reminder.ID,
			Title:       reminder.Title,
			Description: reminder.Description,
			Location:    reminder.Location,
		}
		metrics.GeofenceEvents.WithLabelValues("notified").Inc()
		if err := h.notifier.Notify(ctx, n); err != nil {
			h.log.Error(fmt.Sprintf("Failed to send notification for reminder %s", reminder.ID), err)
			metrics.Notifications.WithLabelValues("failed").Inc()
			continue
		}
		metrics.Notifications.WithLabelValues("sent").Inc()
		h.log.Info(fmt.Sprintf("Sent notification for reminder %s", reminder.ID))
	}
}
