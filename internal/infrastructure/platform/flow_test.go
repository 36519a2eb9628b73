package platform_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"georeminder/internal/application/dto"
	"georeminder/internal/application/service"
	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
	"georeminder/internal/infrastructure/database/memory"
	"georeminder/internal/infrastructure/platform"
	"georeminder/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureNotifier struct {
	mu   sync.Mutex
	sent []entity.Notification
}

func (c *captureNotifier) Notify(_ context.Context, n entity.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, n)
	return nil
}

func (c *captureNotifier) Sent() []entity.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Notification(nil), c.sent...)
}

func answer(t *testing.T, s *platform.Session, kind service.PromptKind, a service.Answer) {
	t.Helper()
	require.Eventually(t, func() bool {
		p, ok := s.Pending()
		return ok && p.Kind == kind
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, s.Respond(a))
}

func TestRegistrationFlow_SaveThenArrive(t *testing.T) {
	log := logger.Nop()
	device := platform.NewDevice(29)
	reminders := service.NewReminderService(memory.NewReminderStore(), log)
	notifier := &captureNotifier{}
	handler := service.NewGeofenceEventHandler(reminders, notifier, log)
	geofencer := platform.NewGeofencer(device, handler, log)
	registrar := service.NewGeofenceRegistrar(reminders, geofencer, log, service.RegistrarOptions{
		MaxPermissionPrompts: 3,
		MaxSettingsRetries:   3,
	})
	session := platform.NewSession(device, log)

	lat, lon := 1.1, 2.2
	input := dto.ReminderInput{Title: "title", Description: "description", Location: "paris", Latitude: &lat, Longitude: &lon}

	outcomes := make(chan *service.Outcome, 1)
	go func() {
		outcomes <- registrar.Register(context.Background(), input, service.AttemptPorts{
			Permissions: session,
			Settings:    session,
			Prompter:    session,
		})
	}()

	answer(t, session, service.PromptPermissions, service.Answer{Accept: true})
	answer(t, session, service.PromptPermissions, service.Answer{Accept: false})

	out := <-outcomes
	require.NoError(t, out.Err)
	assert.Equal(t, constant.StateDone, out.State)
	assert.True(t, out.Degraded)
	assert.Len(t, geofencer.Regions(), 1)

	stored := reminders.GetReminder(context.Background(), out.Reminder.ID)
	require.True(t, stored.IsSuccess())

	geofencer.ReportLocation(context.Background(), lat, lon)
	geofencer.Wait()

	sent := notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, entity.Notification{
		ReminderID:  out.Reminder.ID,
		Title:       "title",
		Description: "description",
		Location:    "paris",
	}, sent[0])
}

func TestRegistrationFlow_DeletedReminderIsNotNotified(t *testing.T) {
	log := logger.Nop()
	device := platform.NewDevice(28)
	device.Grant(constant.ForegroundPermissions...)
	reminders := service.NewReminderService(memory.NewReminderStore(), log)
	notifier := &captureNotifier{}
	geofencer := platform.NewGeofencer(device, service.NewGeofenceEventHandler(reminders, notifier, log), log)
	registrar := service.NewGeofenceRegistrar(reminders, geofencer, log, service.RegistrarOptions{})
	session := platform.NewSession(device, log)

	lat, lon := 48.8566, 2.3522
	out := registrar.Register(context.Background(), dto.ReminderInput{
		Title: "bread", Location: "bakery", Latitude: &lat, Longitude: &lon,
	}, service.AttemptPorts{Permissions: session, Settings: session, Prompter: session})
	require.Equal(t, constant.StateDone, out.State)
	assert.NotContains(t, out.Trail, constant.StateCheckingBackgroundPermission)

	require.True(t, reminders.DeleteAllReminders(context.Background()).IsSuccess())

	geofencer.ReportLocation(context.Background(), lat, lon)
	geofencer.Wait()
	assert.Empty(t, notifier.Sent())
}

func TestRegistrationFlow_AlreadyInsideNotifiesStoredReminder(t *testing.T) {
	log := logger.Nop()
	device := platform.NewDevice(28)
	device.Grant(constant.ForegroundPermissions...)
	reminders := service.NewReminderService(memory.NewReminderStore(), log)
	notifier := &captureNotifier{}
	geofencer := platform.NewGeofencer(device, service.NewGeofenceEventHandler(reminders, notifier, log), log)
	registrar := service.NewGeofenceRegistrar(reminders, geofencer, log, service.RegistrarOptions{})
	session := platform.NewSession(device, log)

	lat, lon := 48.8566, 2.3522
	geofencer.ReportLocation(context.Background(), lat, lon)

	out := registrar.Register(context.Background(), dto.ReminderInput{
		Title: "bread", Location: "bakery", Latitude: &lat, Longitude: &lon,
	}, service.AttemptPorts{Permissions: session, Settings: session, Prompter: session})
	require.Equal(t, constant.StateDone, out.State)
	geofencer.Wait()

	sent := notifier.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, out.Reminder.ID, sent[0].ReminderID)
}

func TestRegistrationFlow_FailedUpdateKeepsStoredReminderArmed(t *testing.T) {
	log := logger.Nop()
	device := platform.NewDevice(28)
	device.Grant(constant.ForegroundPermissions...)
	store := memory.NewReminderStore()
	reminders := service.NewReminderService(store, log)
	notifier := &captureNotifier{}
	geofencer := platform.NewGeofencer(device, service.NewGeofenceEventHandler(reminders, notifier, log), log)
	registrar := service.NewGeofenceRegistrar(reminders, geofencer, log, service.RegistrarOptions{})
	ports := func() service.AttemptPorts {
		session := platform.NewSession(device, log)
		return service.AttemptPorts{Permissions: session, Settings: session, Prompter: session}
	}

	lat, lon := 48.8566, 2.3522
	original := registrar.Register(context.Background(), dto.ReminderInput{
		Title: "bread", Location: "bakery", Latitude: &lat, Longitude: &lon,
	}, ports())
	require.Equal(t, constant.StateDone, original.State)

	store.SetUnavailable(true)
	newLat, newLon := 45.76, 4.83
	update := registrar.Register(context.Background(), dto.ReminderInput{
		ID: original.Reminder.ID, Title: "bread", Location: "market", Latitude: &newLat, Longitude: &newLon,
	}, ports())
	store.SetUnavailable(false)

	assert.Equal(t, constant.StatePersistenceFailed, update.State)
	regions := geofencer.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, original.Reminder.ID, regions[0].RequestID)
	assert.True(t, reminders.GetReminder(context.Background(), original.Reminder.ID).IsSuccess())
}
