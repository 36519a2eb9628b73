package service

import (
	"context"

	"georeminder/internal/domain/entity"
)

// GeofenceEventHandler turns platform geofence transitions into reminder notifications.
type GeofenceEventHandler interface {
	// HandleEvent processes one platform event. It never fails: problems are
	// logged and counted.
	HandleEvent(ctx context.Context, event entity.GeofenceEvent)
}
