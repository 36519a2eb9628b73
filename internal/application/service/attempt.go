package service

import (
	"context"

	"georeminder/internal/application/dto"
)

// AttemptService runs registration attempts in the background and keeps them
// addressable by ID while they run and for a retention period afterwards.
type AttemptService interface {
	// Start launches the registrar in the background and returns immediately.
	Start(input dto.ReminderInput) dto.AttemptCreatedResponse
	// Get returns a snapshot of an attempt.
	Get(id string) (dto.AttemptResponse, error)
	// Respond answers the prompt the attempt is blocked on.
	Respond(id string, answer Answer) error
	// Cancel abandons a running attempt.
	Cancel(id string) error
	// Wait blocks until the attempt finishes or ctx ends.
	Wait(ctx context.Context, id string) (*Outcome, error)
	// Shutdown cancels every running attempt.
	Shutdown()
}
