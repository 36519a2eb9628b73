package errors

import "errors"

// Custom application errors
var (
	ErrReminderNotFound  = errors.New("reminder not found")        // Point lookup missed
	ErrDatabaseOperation = errors.New("database operation failed") // Generic store error
	ErrInternalServer    = errors.New("internal server error")     // Generic internal error
	ErrScheduling        = errors.New("scheduling failed")         // Cron job could not be added
	ErrLineAPI           = errors.New("LINE API request failed")   // Push message delivery failed
	ErrAttemptNotFound   = errors.New("registration attempt not found")
	ErrNoPendingPrompt   = errors.New("no prompt is waiting for an answer")

	// Registration attempt outcomes
	ErrTitleMissing       = errors.New("please enter title")                                      // Validation: empty title
	ErrLocationMissing    = errors.New("please select location")                                  // Validation: no location selected
	ErrAbandoned          = errors.New("registration abandoned by user")                          // User dismissed an interactive gate
	ErrPermissionDenied   = errors.New("location permission denied")                              // Foreground permission permanently denied
	ErrSettingsUnresolved = errors.New("device location is required for location reminders")      // Location setting was not enabled
	ErrRegistrationFailed = errors.New("geofence could not be added")                             // Platform refused the region
	ErrPersistence        = errors.New("reminder could not be saved after geofence registration") // Repository returned an error

	// Platform geofencing errors
	ErrTooManyGeofences     = errors.New("too many geofences registered")
	ErrGeofenceNotAvailable = errors.New("geofence service is not available")
)
