package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"georeminder/internal/domain/entity"
	"georeminder/internal/domain/repository"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ReminderStoreSuite struct {
	suite.Suite
	db    *gorm.DB
	store repository.ReminderStore
	ctx   context.Context
}

func (s *ReminderStoreSuite) SetupTest() {
	// A fresh named in-memory database per test; shared cache keeps it alive
	// across the pool's single connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(s.T().Name(), "/", "_"))
	db, err := NewDB(dsn, false)
	s.Require().NoError(err)
	s.db = db
	s.store = NewReminderStore(db)
	s.ctx = context.Background()
}

func (s *ReminderStoreSuite) TearDownTest() {
	s.Require().NoError(CloseDB(s.db))
}

func TestReminderStoreSuite(t *testing.T) {
	suite.Run(t, new(ReminderStoreSuite))
}

func (s *ReminderStoreSuite) TestInsertReminderAndGetByID() {
	reminder := &entity.Reminder{ID: "r1", Title: "title", Description: "description", Location: "paris", Latitude: 1.1, Longitude: 2.2}
	s.Require().NoError(s.store.InsertOrReplace(s.ctx, reminder))

	loaded, err := s.store.FetchByID(s.ctx, reminder.ID)
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal(reminder.ID, loaded.ID)
	s.Equal(reminder.Title, loaded.Title)
	s.Equal(reminder.Description, loaded.Description)
	s.Equal(reminder.Location, loaded.Location)
	s.Equal(reminder.Latitude, loaded.Latitude)
	s.Equal(reminder.Longitude, loaded.Longitude)
}

func (s *ReminderStoreSuite) TestFetchMissingReturnsNil() {
	loaded, err := s.store.FetchByID(s.ctx, "missing")
	s.Require().NoError(err)
	s.Nil(loaded)
}

func (s *ReminderStoreSuite) TestInsertOrReplaceUpdatesInPlace() {
	reminder := &entity.Reminder{ID: "r1", Title: "title", Location: "paris", Latitude: 1.1, Longitude: 2.2}
	s.Require().NoError(s.store.InsertOrReplace(s.ctx, reminder))

	replacement := &entity.Reminder{ID: "r1", Title: "new title", Location: "moscow", Latitude: 55.75, Longitude: 37.61}
	s.Require().NoError(s.store.InsertOrReplace(s.ctx, replacement))

	all, err := s.store.FetchAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("new title", all[0].Title)
	s.Equal("moscow", all[0].Location)
	s.Equal(55.75, all[0].Latitude)
}

func (s *ReminderStoreSuite) TestGetAllReminders() {
	reminders := []*entity.Reminder{
		{ID: "r1", Title: "title", Description: "description", Location: "paris", Latitude: 1.1, Longitude: 2.2},
		{ID: "r2", Title: "title2", Description: "description2", Location: "paris2", Latitude: 1.21, Longitude: 2.22},
		{ID: "r3", Title: "title3", Description: "description3", Location: "paris3", Latitude: 1.31, Longitude: 2.24},
	}
	for _, r := range reminders {
		s.Require().NoError(s.store.InsertOrReplace(s.ctx, r))
	}

	loaded, err := s.store.FetchAll(s.ctx)
	s.Require().NoError(err)
	s.Len(loaded, 3)
}

func (s *ReminderStoreSuite) TestDeleteAllReminders() {
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.InsertOrReplace(s.ctx, &entity.Reminder{ID: fmt.Sprintf("r%d", i), Title: "t"}))
	}

	s.Require().NoError(s.store.DeleteAll(s.ctx))

	loaded, err := s.store.FetchAll(s.ctx)
	s.Require().NoError(err)
	s.Empty(loaded)

	// Wiping an empty table is not an error.
	s.NoError(s.store.DeleteAll(s.ctx))
}

func (s *ReminderStoreSuite) TestDeleteByID() {
	s.Require().NoError(s.store.InsertOrReplace(s.ctx, &entity.Reminder{ID: "r1", Title: "t"}))
	s.Require().NoError(s.store.InsertOrReplace(s.ctx, &entity.Reminder{ID: "r2", Title: "t"}))

	s.Require().NoError(s.store.DeleteByID(s.ctx, "r1"))
	s.Require().NoError(s.store.DeleteByID(s.ctx, "missing"))

	loaded, err := s.store.FetchAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded, 1)
	s.Equal("r2", loaded[0].ID)
}
