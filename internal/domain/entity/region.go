package entity

import "time"

// GeofenceRadiusMeters is the radius of every reminder region.
const GeofenceRadiusMeters = 100.0

// NeverExpire marks a region without expiration.
const NeverExpire time.Duration = -1

// Transition is a geofence transition type.
type Transition string

const (
	TransitionEnter Transition = "enter"
	TransitionExit  Transition = "exit"
	TransitionDwell Transition = "dwell"
)

// Region describes a circular geofence submitted to the platform.
type Region struct {
	RequestID      string        `json:"request_id"`
	Latitude       float64       `json:"latitude"`
	Longitude      float64       `json:"longitude"`
	RadiusMeters   float64       `json:"radius_meters"`
	Transitions    []Transition  `json:"transitions"`
	Expiration     time.Duration `json:"expiration"`
	InitialTrigger Transition    `json:"initial_trigger,omitempty"`
}

// RegionFor builds the enter-triggered, non-expiring region for a reminder.
func RegionFor(r *Reminder) Region {
	return Region{
		RequestID:      r.ID,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		RadiusMeters:   GeofenceRadiusMeters,
		Transitions:    []Transition{TransitionEnter},
		Expiration:     NeverExpire,
		InitialTrigger: TransitionEnter,
	}
}

// Triggers reports whether the region fires on the given transition.
func (r Region) Triggers(t Transition) bool {
	for _, tr := range r.Transitions {
		if tr == t {
			return true
		}
	}
	return false
}

// GeofenceEvent is delivered by the platform when a registered region transitions.
type GeofenceEvent struct {
	Transition Transition `json:"transition"`
	RequestIDs []string   `json:"request_ids"`
	// ErrorCode is non-zero when the platform failed to compute the event.
	ErrorCode int `json:"error_code,omitempty"`
}

// Notification is the content derived from a triggered reminder.
type Notification struct {
	ReminderID  string `json:"reminder_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
