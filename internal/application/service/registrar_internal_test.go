package service

import (
	"context"
	"testing"

	"georeminder/internal/application/dto"
	"georeminder/internal/infrastructure/database/memory"
	"georeminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestPersist_PanicsWithoutCoordinates(t *testing.T) {
	reminders := NewReminderService(memory.NewReminderStore(), logger.Nop())
	r := NewGeofenceRegistrar(reminders, nil, logger.Nop(), RegistrarOptions{}).(*geofenceRegistrar)

	a := &attempt{input: dto.ReminderInput{Title: "title", Location: "paris"}, registered: true}
	a.reminder = candidateFrom(a.input)

	assert.Panics(t, func() {
		_, _ = r.persist(context.Background(), a)
	})
}
