// Package memory provides an in-process ReminderStore used by tests and by
// the "memory" database driver in development.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"georeminder/internal/domain/entity"
	"georeminder/internal/domain/repository"
)

// ErrUnavailable is returned by every call while the store is marked unavailable.
var ErrUnavailable = errors.New("store unavailable")

// ReminderStore keeps reminders in a map guarded by a RWMutex.
type ReminderStore struct {
	mu          sync.RWMutex
	reminders   map[string]*entity.Reminder
	unavailable bool
	now         func() time.Time
}

var _ repository.ReminderStore = (*ReminderStore)(nil)

// NewReminderStore creates an empty in-memory store.
func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		reminders: make(map[string]*entity.Reminder),
		now:       time.Now,
	}
}

// SetUnavailable makes every subsequent call fail with ErrUnavailable until reset.
func (s *ReminderStore) SetUnavailable(unavailable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = unavailable
}

func (s *ReminderStore) InsertOrReplace(ctx context.Context, reminder *entity.Reminder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	now := s.now()
	stored := *reminder
	stored.UpdatedAt = now
	if existing, ok := s.reminders[reminder.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	s.reminders[reminder.ID] = &stored
	return nil
}

func (s *ReminderStore) FetchAll(ctx context.Context) ([]*entity.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	out := make([]*entity.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		c := *r
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *ReminderStore) FetchByID(ctx context.Context, id string) (*entity.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	r, ok := s.reminders[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}

func (s *ReminderStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	delete(s.reminders, id)
	return nil
}

func (s *ReminderStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.reminders = make(map[string]*entity.Reminder)
	return nil
}

// check must be called with the lock held.
func (s *ReminderStore) check(ctx context.Context) error {
	if s.unavailable {
		return ErrUnavailable
	}
	return ctx.Err()
}
