package platform

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"georeminder/internal/application/service"
	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/geo"
	"georeminder/internal/pkg/logger"
)

// MaxGeofences is the number of regions the platform keeps active per app.
const MaxGeofences = 100

type position struct {
	lat, lon float64
}

// Geofencer keeps registered regions and raises ENTER events as the device moves.
type Geofencer struct {
	device  *Device
	handler service.GeofenceEventHandler
	log     logger.Logger

	mu       sync.Mutex
	regions  map[string]entity.Region
	inside   map[string]bool
	position *position
	wg       sync.WaitGroup
}

var _ service.Geofencer = (*Geofencer)(nil)

// NewGeofencer creates a geofencer delivering events to handler.
func NewGeofencer(device *Device, handler service.GeofenceEventHandler, log logger.Logger) *Geofencer {
	return &Geofencer{
		device:  device,
		handler: handler,
		log:     log,
		regions: make(map[string]entity.Region),
		inside:  make(map[string]bool),
	}
}

// Add registers or replaces a region keyed by its request ID.
func (g *Geofencer) Add(ctx context.Context, region entity.Region) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !g.device.IsGranted(constant.PermissionFineLocation) {
		return fmt.Errorf("%w: fine location permission missing", appErrors.ErrGeofenceNotAvailable)
	}
	if !g.device.LocationEnabled() {
		return fmt.Errorf("%w: device location is off", appErrors.ErrGeofenceNotAvailable)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.regions[region.RequestID]; !exists && len(g.regions) >= MaxGeofences {
		return fmt.Errorf("%w: limit is %d", appErrors.ErrTooManyGeofences, MaxGeofences)
	}
	g.regions[region.RequestID] = region

	wasInside := g.inside[region.RequestID]
	in := g.position != nil && contains(region, *g.position)
	if region.InitialTrigger != entity.TransitionEnter {
		// The current position is only evaluated with an initial trigger;
		// otherwise the next location report inside the region enters it.
		g.inside[region.RequestID] = wasInside && in
	} else {
		g.inside[region.RequestID] = in
	}
	if in && !wasInside && region.InitialTrigger == entity.TransitionEnter {
		g.dispatch(ctx, entity.GeofenceEvent{
			Transition: entity.TransitionEnter,
			RequestIDs: []string{region.RequestID},
		})
	}
	g.log.Debug(fmt.Sprintf("Geofence %s registered (%d active)", region.RequestID, len(g.regions)))
	return nil
}

// Remove unregisters regions. Unknown IDs are ignored.
func (g *Geofencer) Remove(_ context.Context, requestIDs ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range requestIDs {
		delete(g.regions, id)
		delete(g.inside, id)
	}
	return nil
}

// RemoveAll unregisters every region.
func (g *Geofencer) RemoveAll(_ context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := len(g.regions)
	g.regions = make(map[string]entity.Region)
	g.inside = make(map[string]bool)
	g.log.Debug(fmt.Sprintf("Removed all %d geofences", n))
	return nil
}

// Regions returns the active regions ordered by request ID.
func (g *Geofencer) Regions() []entity.Region {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]entity.Region, 0, len(g.regions))
	for _, r := range g.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestID < out[j].RequestID })
	return out
}

// ReportLocation moves the device and returns the request IDs of regions it entered.
func (g *Geofencer) ReportLocation(ctx context.Context, lat, lon float64) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	pos := position{lat: lat, lon: lon}
	g.position = &pos

	var entered []string
	for id, region := range g.regions {
		in := contains(region, pos)
		if in && !g.inside[id] && region.Triggers(entity.TransitionEnter) {
			entered = append(entered, id)
		}
		g.inside[id] = in
	}
	sort.Strings(entered)

	if len(entered) > 0 {
		g.dispatch(ctx, entity.GeofenceEvent{Transition: entity.TransitionEnter, RequestIDs: entered})
	}
	return entered
}

// Wait blocks until every dispatched event has been handled.
func (g *Geofencer) Wait() {
	g.wg.Wait()
}

// dispatch delivers the event on its own goroutine, the way the OS does.
func (g *Geofencer) dispatch(ctx context.Context, event entity.GeofenceEvent) {
	if g.handler == nil {
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.handler.HandleEvent(context.WithoutCancel(ctx), event)
	}()
}

func contains(region entity.Region, p position) bool {
	return geo.Haversine(region.Latitude, region.Longitude, p.lat, p.lon) <= region.RadiusMeters
}
