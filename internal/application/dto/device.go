package dto

import "georeminder/internal/domain/constant"

// DeviceUpdateRequest mutates the simulated device. Nil fields are left unchanged.
type DeviceUpdateRequest struct {
	APILevel          *int                  `json:"api_level,omitempty" validate:"omitempty,min=1"`
	Granted           []constant.Permission `json:"granted,omitempty" validate:"omitempty,dive,oneof=ACCESS_FINE_LOCATION ACCESS_COARSE_LOCATION ACCESS_BACKGROUND_LOCATION"`
	Revoked           []constant.Permission `json:"revoked,omitempty" validate:"omitempty,dive,oneof=ACCESS_FINE_LOCATION ACCESS_COARSE_LOCATION ACCESS_BACKGROUND_LOCATION"`
	PermanentlyDenied []constant.Permission `json:"permanently_denied,omitempty" validate:"omitempty,dive,oneof=ACCESS_FINE_LOCATION ACCESS_COARSE_LOCATION ACCESS_BACKGROUND_LOCATION"`
	LocationEnabled   *bool                 `json:"location_enabled,omitempty"`
	Resolvable        *bool                 `json:"resolvable,omitempty"`
}

// DeviceResponse is a snapshot of the simulated device.
type DeviceResponse struct {
	APILevel          int                   `json:"api_level"`
	Granted           []constant.Permission `json:"granted"`
	PermanentlyDenied []constant.Permission `json:"permanently_denied"`
	LocationEnabled   bool                  `json:"location_enabled"`
	Resolvable        bool                  `json:"resolvable"`
	ActiveGeofences   int                   `json:"active_geofences"`
}

// LocationReport is a device position update.
type LocationReport struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}
