package constant

import "fmt"

// AttemptState defines the states of a geofence registration attempt.
type AttemptState int

const (
	StateIdle AttemptState = iota
	StateValidatingInput
	StateCheckingForegroundPermission
	// StateCheckingBackgroundPermission is only entered on platforms that gate
	// background location separately.
	StateCheckingBackgroundPermission
	StateCheckingLocationSettings
	// StateResolvingSettings waits on the user to accept the platform's correction.
	StateResolvingSettings
	StateRegisteringGeofence
	StatePersisting
	StateDone

	// Failure exits
	StateAbandonedByUser
	StatePermissionDenied
	StateSettingsUnresolved
	StateRegistrationFailed
	StatePersistenceFailed
)

var stateNames = map[AttemptState]string{
	StateIdle:                         "Idle",
	StateValidatingInput:              "ValidatingInput",
	StateCheckingForegroundPermission: "CheckingForegroundPermission",
	StateCheckingBackgroundPermission: "CheckingBackgroundPermission",
	StateCheckingLocationSettings:     "CheckingLocationSettings",
	StateResolvingSettings:            "ResolvingSettings",
	StateRegisteringGeofence:          "RegisteringGeofence",
	StatePersisting:                   "Persisting",
	StateDone:                         "Done",
	StateAbandonedByUser:              "AbandonedByUser",
	StatePermissionDenied:             "PermissionDenied",
	StateSettingsUnresolved:           "SettingsUnresolved",
	StateRegistrationFailed:           "RegistrationFailed",
	StatePersistenceFailed:            "PersistenceFailed",
}

func (s AttemptState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Terminal reports whether no further transition leaves s.
func (s AttemptState) Terminal() bool {
	switch s {
	case StateDone, StateAbandonedByUser, StatePermissionDenied,
		StateSettingsUnresolved, StateRegistrationFailed, StatePersistenceFailed:
		return true
	}
	return false
}

func (s AttemptState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *AttemptState) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown attempt state %q", text)
}
