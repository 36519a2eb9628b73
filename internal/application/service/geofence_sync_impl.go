package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"georeminder/internal/domain/entity"
	"georeminder/internal/infrastructure/scheduler"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/logger"
	"georeminder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

const syncConcurrency = 4

type geofenceSyncService struct {
	cronScheduler *scheduler.Scheduler
	reminders     ReminderService
	geofencer     Geofencer
	spec          string
	log           logger.Logger

	mu      sync.Mutex
	entryID cron.EntryID
}

// NewGeofenceSyncService creates a new instance of GeofenceSyncService implementation.
// spec is the cron expression (with seconds) of the periodic sync.
func NewGeofenceSyncService(
	cronScheduler *scheduler.Scheduler,
	reminders ReminderService,
	geofencer Geofencer,
	spec string,
	log logger.Logger,
) GeofenceSyncService {
	return &geofenceSyncService{
		cronScheduler: cronScheduler,
		reminders:     reminders,
		geofencer:     geofencer,
		spec:          spec,
		log:           log,
	}
}

// Sync loads every reminder and re-adds its region. Individual failures are
// counted, not returned.
func (s *geofenceSyncService) Sync(ctx context.Context) (SyncReport, error) {
	res := s.reminders.GetReminders(ctx)
	reminders, ok := res.Get()
	if !ok {
		s.log.Error("Failed to retrieve reminders for geofence sync", res.Err())
		return SyncReport{}, fmt.Errorf("%w: %s", appErrors.ErrDatabaseOperation, res.Message())
	}

	var armed, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(syncConcurrency)
	for _, reminder := range reminders {
		g.Go(func() error {
			if err := s.geofencer.Add(gctx, entity.RegionFor(reminder)); err != nil {
				failed.Add(1)
				metrics.GeofenceRegistrations.WithLabelValues("sync", "failed").Inc()
				s.log.Warn(fmt.Sprintf("Failed to re-arm geofence for reminder %s: %v", reminder.ID, err))
				return nil
			}
			armed.Add(1)
			metrics.GeofenceRegistrations.WithLabelValues("sync", "ok").Inc()
			return nil
		})
	}
	_ = g.Wait()

	report := SyncReport{Armed: int(armed.Load()), Failed: int(failed.Load())}
	s.log.Info(fmt.Sprintf("Geofence sync complete. Armed: %d, Failed: %d", report.Armed, report.Failed))
	return report, ctx.Err()
}

// Start runs an initial sync then schedules the periodic one.
func (s *geofenceSyncService) Start(ctx context.Context) error {
	s.log.Info("Initializing geofences from database...")
	if _, err := s.Sync(ctx); err != nil {
		s.log.Warn(fmt.Sprintf("Initial geofence sync failed: %v", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entryID != 0 {
		return nil
	}

	entryID, err := s.cronScheduler.AddJob(s.spec, func() {
		// Use background context for cron job execution
		if _, err := s.Sync(context.Background()); err != nil {
			s.log.Error("Scheduled geofence sync failed", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrScheduling, err)
	}
	s.entryID = entryID
	s.cronScheduler.Start()
	s.log.Debug(fmt.Sprintf("Current cron entries: %v", s.cronScheduler.GetEntries()))
	return nil
}

// Stop stops the underlying scheduler.
func (s *geofenceSyncService) Stop() {
	s.mu.Lock()
	if s.entryID != 0 {
		s.cronScheduler.RemoveJob(s.entryID)
		s.entryID = 0
	}
	s.mu.Unlock()
	s.cronScheduler.Stop()
}
