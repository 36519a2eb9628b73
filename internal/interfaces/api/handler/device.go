package handler

import (
	"context"
	"net/http"

	"georeminder/internal/application/dto"
	"georeminder/internal/infrastructure/platform"

	"github.com/labstack/echo/v4"
)

// LocationReporter receives device positions.
type LocationReporter interface {
	ReportLocation(ctx context.Context, lat, lon float64) []string
}

// DeviceHandler exposes the simulated device.
type DeviceHandler struct {
	device    *platform.Device
	geofencer *platform.Geofencer
}

func NewDeviceHandler(device *platform.Device, geofencer *platform.Geofencer) *DeviceHandler {
	return &DeviceHandler{device: device, geofencer: geofencer}
}

// Get handles GET /device.
func (h *DeviceHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

// Update handles PUT /device.
func (h *DeviceHandler) Update(c echo.Context) error {
	var req dto.DeviceUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if req.APILevel != nil {
		h.device.SetAPILevel(*req.APILevel)
	}
	h.device.Grant(req.Granted...)
	h.device.Revoke(req.Revoked...)
	h.device.DenyPermanently(req.PermanentlyDenied...)
	if req.LocationEnabled != nil {
		h.device.SetLocationEnabled(*req.LocationEnabled)
	}
	if req.Resolvable != nil {
		h.device.SetResolvable(*req.Resolvable)
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// ReportLocation handles POST /device/location.
func (h *DeviceHandler) ReportLocation(c echo.Context) error {
	var req dto.LocationReport
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entered := h.geofencer.ReportLocation(c.Request().Context(), *req.Latitude, *req.Longitude)
	if entered == nil {
		entered = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"entered": entered})
}

// Geofences handles GET /geofences.
func (h *DeviceHandler) Geofences(c echo.Context) error {
	return c.JSON(http.StatusOK, h.geofencer.Regions())
}

func (h *DeviceHandler) snapshot() dto.DeviceResponse {
	state := h.device.State()
	return dto.DeviceResponse{
		APILevel:          state.APILevel,
		Granted:           state.Granted,
		PermanentlyDenied: state.PermanentlyDenied,
		LocationEnabled:   state.LocationEnabled,
		Resolvable:        state.Resolvable,
		ActiveGeofences:   len(h.geofencer.Regions()),
	}
}
