package service

import (
	"context"
	"fmt"

	"georeminder/internal/domain/entity"
	"georeminder/internal/domain/repository"
	"georeminder/internal/pkg/logger"
	"georeminder/internal/pkg/metrics"
	"georeminder/internal/pkg/result"
)

type reminderService struct {
	store          repository.ReminderStore
	log            logger.Logger
	forceListError bool
}

// ReminderServiceOption configures a ReminderService.
type ReminderServiceOption func(*reminderService)

// WithForcedListError makes GetReminders return Error(MsgRemindersNotFound)
// regardless of store state. Test and development seam.
func WithForcedListError(force bool) ReminderServiceOption {
	return func(s *reminderService) {
		s.forceListError = force
	}
}

// NewReminderService creates a new instance of ReminderService implementation.
func NewReminderService(store repository.ReminderStore, log logger.Logger, opts ...ReminderServiceOption) ReminderService {
	s := &reminderService{
		store: store,
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveReminder upserts a reminder by ID.
func (s *reminderService) SaveReminder(ctx context.Context, reminder *entity.Reminder) result.Result[struct{}] {
	if err := s.store.InsertOrReplace(ctx, reminder); err != nil {
		s.log.Error(fmt.Sprintf("Failed to save reminder %s", reminder.ID), err)
		metrics.RepositoryErrors.WithLabelValues("save").Inc()
		return result.Error[struct{}](err.Error(), err)
	}
	s.log.Debug(fmt.Sprintf("Saved reminder %s", reminder.ID))
	return result.Success(struct{}{})
}

// GetReminders retrieves every reminder.
func (s *reminderService) GetReminders(ctx context.Context) result.Result[[]*entity.Reminder] {
	if s.forceListError {
		metrics.RepositoryErrors.WithLabelValues("get_all").Inc()
		return result.Error[[]*entity.Reminder](MsgRemindersNotFound, nil)
	}
	reminders, err := s.store.FetchAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reminders", err)
		metrics.RepositoryErrors.WithLabelValues("get_all").Inc()
		return result.Error[[]*entity.Reminder](err.Error(), err)
	}
	if reminders == nil {
		reminders = []*entity.Reminder{}
	}
	return result.Success(reminders)
}

// GetReminder retrieves a reminder by ID.
func (s *reminderService) GetReminder(ctx context.Context, id string) result.Result[*entity.Reminder] {
	reminder, err := s.store.FetchByID(ctx, id)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to get reminder %s", id), err)
		metrics.RepositoryErrors.WithLabelValues("get_by_id").Inc()
		return result.Error[*entity.Reminder](err.Error(), err)
	}
	if reminder == nil {
		return result.Error[*entity.Reminder](MsgReminderNotFound, nil)
	}
	return result.Success(reminder)
}

// DeleteReminder removes a reminder by ID.
func (s *reminderService) DeleteReminder(ctx context.Context, id string) result.Result[struct{}] {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete reminder %s", id), err)
		metrics.RepositoryErrors.WithLabelValues("delete").Inc()
		return result.Error[struct{}](err.Error(), err)
	}
	s.log.Info(fmt.Sprintf("Deleted reminder %s", id))
	return result.Success(struct{}{})
}

// DeleteAllReminders removes every reminder.
func (s *reminderService) DeleteAllReminders(ctx context.Context) result.Result[struct{}] {
	if err := s.store.DeleteAll(ctx); err != nil {
		s.log.Error("Failed to delete all reminders", err)
		metrics.RepositoryErrors.WithLabelValues("delete_all").Inc()
		return result.Error[struct{}](err.Error(), err)
	}
	s.log.Info("Deleted all reminders")
	return result.Success(struct{}{})
}
