package repository

import (
	"context"
	"georeminder/internal/domain/entity"
)

// ReminderStore defines the durable keyed storage for reminders.
// Implementations must be safe for concurrent use.
type ReminderStore interface {
	// InsertOrReplace upserts a reminder by its ID.
	InsertOrReplace(ctx context.Context, reminder *entity.Reminder) error
	// FetchAll retrieves every stored reminder.
	FetchAll(ctx context.Context) ([]*entity.Reminder, error)
	// FetchByID retrieves a reminder by its ID. A missing reminder returns (nil, nil).
	FetchByID(ctx context.Context, id string) (*entity.Reminder, error)
	// DeleteByID deletes a reminder by its ID. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id string) error
	// DeleteAll deletes every stored reminder.
	DeleteAll(ctx context.Context) error
}
