package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"georeminder/internal/application/dto"
	"georeminder/internal/application/service"
	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
	"georeminder/internal/infrastructure/database/memory"
	"georeminder/internal/infrastructure/notifier"
	"georeminder/internal/infrastructure/platform"
	"georeminder/internal/interfaces/api/handler"
	"georeminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RouterSuite struct {
	suite.Suite
	e         *echo.Echo
	cfg       Config
	store     *memory.ReminderStore
	device    *platform.Device
	geofencer *platform.Geofencer
	reminders service.ReminderService
	attempts  service.AttemptService
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	log := logger.Nop()
	s.device = platform.NewDevice(28)
	s.store = memory.NewReminderStore()
	s.reminders = service.NewReminderService(s.store, log)
	events := service.NewGeofenceEventHandler(s.reminders, notifier.NewLogNotifier(log), log)
	s.geofencer = platform.NewGeofencer(s.device, events, log)
	registrar := service.NewGeofenceRegistrar(s.reminders, s.geofencer, log, service.RegistrarOptions{
		MaxPermissionPrompts: 3,
		MaxSettingsRetries:   3,
	})
	s.attempts = service.NewAttemptService(registrar, platform.SessionFactory(s.device, log), time.Minute, log)

	s.cfg = Config{
		ReminderHandler: handler.NewReminderHandler(s.reminders, s.geofencer, log),
		AttemptHandler:  handler.NewAttemptHandler(s.attempts, log),
		DeviceHandler:   handler.NewDeviceHandler(s.device, s.geofencer),
		GeofenceHandler: handler.NewGeofenceHandler(events),
		Logger:          log,
	}
	s.e = NewRouter(&s.cfg)
}

func (s *RouterSuite) TearDownTest() {
	s.attempts.Shutdown()
	s.geofencer.Wait()
}

func (s *RouterSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *RouterSuite) startAttempt(body string) dto.AttemptCreatedResponse {
	rec := s.do(http.MethodPost, "/attempts", body)
	s.Require().Equal(http.StatusAccepted, rec.Code, rec.Body.String())
	var created dto.AttemptCreatedResponse
	s.decode(rec, &created)
	return created
}

type attemptView struct {
	State    string `json:"state"`
	Finished bool   `json:"finished"`
	Degraded bool   `json:"degraded"`
	Error    string `json:"error"`
	Prompt   *struct {
		Kind string `json:"kind"`
	} `json:"prompt"`
}

func (s *RouterSuite) poll(id string, done func(attemptView) bool) attemptView {
	var view attemptView
	s.Require().Eventually(func() bool {
		rec := s.do(http.MethodGet, "/attempts/"+id, "")
		if rec.Code != http.StatusOK {
			return false
		}
		view = attemptView{}
		if json.Unmarshal(rec.Body.Bytes(), &view) != nil {
			return false
		}
		return done(view)
	}, 5*time.Second, 10*time.Millisecond)
	return view
}

func finished(v attemptView) bool { return v.Finished }

func promptOf(kind service.PromptKind) func(attemptView) bool {
	return func(v attemptView) bool { return v.Prompt != nil && v.Prompt.Kind == string(kind) }
}

const parisBody = `{"title":"title","description":"description","location":"paris","latitude":1.1,"longitude":2.2}`

func (s *RouterSuite) TestHealthAndMetrics() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/", "").Code)

	rec := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "georeminder_registrar_attempts_degraded_total")
}

func (s *RouterSuite) TestReminders_EmptyAndNotFound() {
	rec := s.do(http.MethodGet, "/reminders", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/reminders/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"message":"Reminder not found!"}`, rec.Body.String())
}

func (s *RouterSuite) TestCreateAttempt_RejectsOutOfRangeCoordinates() {
	rec := s.do(http.MethodPost, "/attempts", `{"title":"t","location":"x","latitude":100,"longitude":2}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestAttempt_ValidationFailureIsReported() {
	created := s.startAttempt(`{"location":"paris","latitude":1.1,"longitude":2.2}`)

	view := s.poll(created.ID, finished)

	s.Equal("ValidatingInput", view.State)
	s.Equal("please enter title", view.Error)
}

func (s *RouterSuite) TestAttempt_GrantedDeviceSavesAndTriggers() {
	rec := s.do(http.MethodPut, "/device", `{"granted":["ACCESS_FINE_LOCATION","ACCESS_COARSE_LOCATION"]}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	created := s.startAttempt(parisBody)
	view := s.poll(created.ID, finished)
	s.Require().Equal("Done", view.State, view.Error)

	var list []dto.ReminderResponse
	s.decode(s.do(http.MethodGet, "/reminders", ""), &list)
	s.Require().Len(list, 1)
	s.Equal(created.ReminderID, list[0].ID)
	s.Equal("paris", list[0].Location)

	rec = s.do(http.MethodPost, "/device/location", `{"latitude":1.1,"longitude":2.2}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"entered":["`+created.ReminderID+`"]}`, rec.Body.String())

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/reminders/"+created.ReminderID, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/reminders/"+created.ReminderID, "").Code)
	var regions []entity.Region
	s.decode(s.do(http.MethodGet, "/geofences", ""), &regions)
	s.Empty(regions)
}

func (s *RouterSuite) TestAttempt_InteractivePermissionsDegrade() {
	s.device.SetAPILevel(constant.BackgroundGateAPILevel)
	created := s.startAttempt(parisBody)

	s.poll(created.ID, promptOf(service.PromptPermissions))
	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/attempts/"+created.ID+"/respond", `{"answer":"accept"}`).Code)

	// Second prompt asks for background location.
	s.Require().Eventually(func() bool {
		rec := s.do(http.MethodGet, "/attempts/"+created.ID, "")
		var resp dto.AttemptResponse
		if json.Unmarshal(rec.Body.Bytes(), &resp) != nil || resp.Prompt == nil {
			return false
		}
		return len(resp.Prompt.Permissions) == 1 && resp.Prompt.Permissions[0] == constant.PermissionBackgroundLocation
	}, 5*time.Second, 10*time.Millisecond)
	s.Equal(http.StatusNoContent, s.do(http.MethodPost, "/attempts/"+created.ID+"/respond", `{"answer":"dismiss"}`).Code)

	view := s.poll(created.ID, finished)
	s.Equal("Done", view.State)
	s.True(view.Degraded)
}

func (s *RouterSuite) TestAttempt_CancelAbandons() {
	created := s.startAttempt(parisBody)
	s.poll(created.ID, promptOf(service.PromptPermissions))

	s.Equal(http.StatusAccepted, s.do(http.MethodDelete, "/attempts/"+created.ID, "").Code)

	view := s.poll(created.ID, finished)
	s.Equal("AbandonedByUser", view.State)
	s.JSONEq(`[]`, s.do(http.MethodGet, "/reminders", "").Body.String())
}

func (s *RouterSuite) TestAttempt_ErrorsMapToStatusCodes() {
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/attempts/unknown", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/attempts/unknown", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/attempts/unknown/respond", `{"answer":"maybe"}`).Code)

	created := s.startAttempt(`{}`)
	s.poll(created.ID, finished)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/attempts/"+created.ID+"/respond", `{"answer":"accept"}`).Code)
}

func (s *RouterSuite) TestDevice_UpdateValidates() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, "/device", `{"granted":["CAMERA"]}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/device/location", `{"latitude":1}`).Code)

	rec := s.do(http.MethodPut, "/device", `{"api_level":33,"location_enabled":false}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	var device dto.DeviceResponse
	s.decode(rec, &device)
	s.Equal(33, device.APILevel)
	s.False(device.LocationEnabled)
}

func (s *RouterSuite) TestGeofenceEvents() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/geofence-events", `{"transition":"enter"}`).Code)
	s.Equal(http.StatusAccepted, s.do(http.MethodPost, "/geofence-events", `{"transition":"enter","request_ids":["x"]}`).Code)
}

func (s *RouterSuite) TestDeleteAllReminders() {
	s.device.Grant(constant.ForegroundPermissions...)
	for i := 0; i < 3; i++ {
		created := s.startAttempt(parisBody)
		s.Require().Equal("Done", s.poll(created.ID, finished).State)
	}
	s.Len(s.geofencer.Regions(), 3)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/reminders", "").Code)

	s.JSONEq(`[]`, s.do(http.MethodGet, "/reminders", "").Body.String())
	s.Empty(s.geofencer.Regions())
}

func (s *RouterSuite) TestDeleteAllReminders_ClearsGeofencesWhenListingFails() {
	ctx := context.Background()
	log := logger.Nop()
	forced := service.NewReminderService(s.store, log, service.WithForcedListError(true))
	s.device.Grant(constant.ForegroundPermissions...)
	for _, id := range []string{"a", "b", "c"} {
		r := &entity.Reminder{ID: id, Title: id, Location: id, Latitude: 1.1, Longitude: 2.2}
		s.Require().True(forced.SaveReminder(ctx, r).IsSuccess())
		s.Require().NoError(s.geofencer.Add(ctx, entity.RegionFor(r)))
	}
	cfg := s.cfg
	cfg.ReminderHandler = handler.NewReminderHandler(forced, s.geofencer, log)
	s.e = NewRouter(&cfg)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/reminders", "").Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/reminders", "").Code)

	s.Empty(s.geofencer.Regions())
	all, err := s.store.FetchAll(ctx)
	s.Require().NoError(err)
	s.Empty(all)
}
