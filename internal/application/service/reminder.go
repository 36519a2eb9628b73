package service

import (
	"context"

	"georeminder/internal/domain/entity"
	"georeminder/internal/pkg/result"
)

const (
	// MsgReminderNotFound is returned by GetReminder on a miss. Callers match on it.
	MsgReminderNotFound = "Reminder not found!"
	// MsgRemindersNotFound is returned by GetReminders when the forced-error seam is on.
	MsgRemindersNotFound = "Reminders not found"
)

// ReminderService is the result-typed repository over the reminder store.
type ReminderService interface {
	// SaveReminder upserts a reminder by ID. No validation is performed.
	SaveReminder(ctx context.Context, reminder *entity.Reminder) result.Result[struct{}]
	// GetReminders retrieves every reminder.
	GetReminders(ctx context.Context) result.Result[[]*entity.Reminder]
	// GetReminder retrieves a reminder by ID, or Error(MsgReminderNotFound).
	GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder]
	// DeleteReminder removes a reminder by ID.
	DeleteReminder(ctx context.Context, id string) result.Result[struct{}]
	// DeleteAllReminders removes every reminder.
	DeleteAllReminders(ctx context.Context) result.Result[struct{}]
}
