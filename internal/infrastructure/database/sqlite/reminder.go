package sqlite

import (
	"context"
	"errors"
	"fmt"

	"georeminder/internal/domain/entity"
	"georeminder/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reminderStore struct {
	db *gorm.DB
}

// NewReminderStore creates a new gorm-backed ReminderStore.
func NewReminderStore(db *gorm.DB) repository.ReminderStore {
	return &reminderStore{db: db}
}

// InsertOrReplace upserts a reminder by its ID.
func (s *reminderStore) InsertOrReplace(ctx context.Context, reminder *entity.Reminder) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "location", "latitude", "longitude", "updated_at"}),
		}).
		Create(reminder).Error
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to save reminder %s: %w", reminder.ID, err)
	}
	return nil
}

// FetchAll retrieves every stored reminder, oldest first.
func (s *reminderStore) FetchAll(ctx context.Context) ([]*entity.Reminder, error) {
	var reminders []*entity.Reminder
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to find all reminders: %w", err)
	}
	return reminders, nil
}

// FetchByID retrieves a reminder by its ID. A missing reminder returns (nil, nil).
func (s *reminderStore) FetchByID(ctx context.Context, id string) (*entity.Reminder, error) {
	var reminder entity.Reminder
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&reminder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("🔴 ERROR: failed to find reminder by id %s: %w", id, err)
	}
	return &reminder, nil
}

// DeleteByID deletes a reminder by its ID.
func (s *reminderStore) DeleteByID(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete reminder %s: %w", id, err)
	}
	return nil
}

// DeleteAll deletes every stored reminder.
func (s *reminderStore) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Reminder{}).Error; err != nil {
		return fmt.Errorf("🔴 ERROR: failed to delete all reminders: %w", err)
	}
	return nil
}
