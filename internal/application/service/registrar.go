package service

import (
	"context"

	"georeminder/internal/application/dto"
	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
)

// AttemptPorts are the interactive collaborators of a single attempt.
type AttemptPorts struct {
	Permissions PermissionService
	Settings    LocationSettings
	Prompter    Prompter
	// OnState is called on every state entry when set.
	OnState func(state constant.AttemptState)
}

// Outcome is the result of a finished registration attempt.
type Outcome struct {
	State constant.AttemptState
	// Err is nil only when State is StateDone.
	Err      error
	Trail    []constant.AttemptState
	Notices  []Notice
	Degraded bool
	Reminder entity.Reminder
}

// GeofenceRegistrar drives a reminder through permission checks, location
// settings resolution, geofence registration and persistence.
type GeofenceRegistrar interface {
	// Register runs one attempt to completion and blocks until it ends.
	// A new ID is generated when input.ID is empty. Cancelling ctx abandons
	// the attempt without writes.
	Register(ctx context.Context, input dto.ReminderInput, ports AttemptPorts) *Outcome
}

// RegistrarOptions bounds the interactive loops of an attempt.
type RegistrarOptions struct {
	MaxPermissionPrompts int
	MaxSettingsRetries   int
}
