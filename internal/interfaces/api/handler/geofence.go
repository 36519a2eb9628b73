package handler

import (
	"context"
	"net/http"

	"georeminder/internal/application/service"
	"georeminder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// GeofenceHandler is the callback surface a device bridge posts transitions to.
type GeofenceHandler struct {
	events service.GeofenceEventHandler
}

func NewGeofenceHandler(events service.GeofenceEventHandler) *GeofenceHandler {
	return &GeofenceHandler{events: events}
}

// HandleEvent handles POST /geofence-events. Events are processed asynchronously.
func (h *GeofenceHandler) HandleEvent(c echo.Context) error {
	var event entity.GeofenceEvent
	if err := c.Bind(&event); err != nil {
		return badRequest(c, "invalid request body")
	}
	if event.Transition == "" || len(event.RequestIDs) == 0 {
		return badRequest(c, "transition and request_ids are required")
	}

	go h.events.HandleEvent(context.WithoutCancel(c.Request().Context()), event)
	return c.NoContent(http.StatusAccepted)
}
