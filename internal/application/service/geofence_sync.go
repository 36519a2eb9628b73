package service

import "context"

// SyncReport counts the regions re-armed by one sync run.
type SyncReport struct {
	Armed  int
	Failed int
}

// GeofenceSyncService re-arms geofences for every persisted reminder.
// Platforms drop geofences on reboot, so this runs on startup and on a schedule.
type GeofenceSyncService interface {
	// Sync re-registers the region of every stored reminder.
	Sync(ctx context.Context) (SyncReport, error)
	// Start runs an initial sync and schedules the periodic one.
	Start(ctx context.Context) error
	// Stop stops the underlying scheduler.
	Stop()
}
