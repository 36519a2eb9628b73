package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"georeminder/internal/application/dto"
	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/geo"
	"georeminder/internal/pkg/logger"
	"georeminder/internal/pkg/metrics"

	"github.com/google/uuid"
)

// User-facing notice texts.
const (
	MsgRationale          = "Location permission is needed to trigger reminders when you arrive at a place."
	MsgPermissionDenied   = "Location permission was denied. Enable it in the app settings to add location reminders."
	MsgRationaleDismissed = "Reminder not saved: location permission was not requested."
	MsgBackgroundDenied   = "Background location denied: the reminder only fires while the app is in use."
	MsgSettingsRequired   = "Device location must be turned on to add location reminders."
	MsgGeofenceNotAdded   = "Geofence could not be added."
	MsgReminderNotSaved   = "Reminder could not be saved."
	MsgReminderSaved      = "Reminder saved!"
)

type step func(ctx context.Context, a *attempt) (constant.AttemptState, error)

// priorRecord is what the store held under the candidate's ID before the
// geofence was replaced.
type priorRecord int

const (
	priorNone priorRecord = iota
	priorStored
	priorUnknown
)

type attempt struct {
	input    dto.ReminderInput
	reminder entity.Reminder
	ports    AttemptPorts

	trail           []constant.AttemptState
	notices         []Notice
	degraded        bool
	registered      bool
	prior           priorRecord
	previous        *entity.Reminder
	rationaleShown  int
	settingsRetries int
	permissionAsked bool
}

func (a *attempt) enter(state constant.AttemptState) {
	a.trail = append(a.trail, state)
	if a.ports.OnState != nil {
		a.ports.OnState(state)
	}
}

type geofenceRegistrar struct {
	reminders ReminderService
	geofencer Geofencer
	log       logger.Logger
	opts      RegistrarOptions
	steps     map[constant.AttemptState]step
}

// NewGeofenceRegistrar creates a new instance of GeofenceRegistrar implementation.
func NewGeofenceRegistrar(reminders ReminderService, geofencer Geofencer, log logger.Logger, opts RegistrarOptions) GeofenceRegistrar {
	if opts.MaxPermissionPrompts <= 0 {
		opts.MaxPermissionPrompts = 3
	}
	if opts.MaxSettingsRetries < 0 {
		opts.MaxSettingsRetries = 0
	}
	r := &geofenceRegistrar{
		reminders: reminders,
		geofencer: geofencer,
		log:       log,
		opts:      opts,
	}
	r.steps = map[constant.AttemptState]step{
		constant.StateValidatingInput:              r.validateInput,
		constant.StateCheckingForegroundPermission: r.checkForegroundPermission,
		constant.StateCheckingBackgroundPermission: r.checkBackgroundPermission,
		constant.StateCheckingLocationSettings:     r.checkLocationSettings,
		constant.StateResolvingSettings:            r.resolveSettings,
		constant.StateSettingsUnresolved:           r.offerSettingsRetry,
		constant.StateRegisteringGeofence:          r.registerGeofence,
		constant.StatePersisting:                   r.persist,
	}
	return r
}

// Register runs the attempt loop until a step ends it.
func (r *geofenceRegistrar) Register(ctx context.Context, input dto.ReminderInput, ports AttemptPorts) *Outcome {
	a := &attempt{
		input:    input,
		reminder: candidateFrom(input),
		ports:    ports,
	}
	a.enter(constant.StateIdle)

	state := constant.StateValidatingInput
	for {
		if state != constant.StateValidatingInput && ctx.Err() != nil {
			state, err := r.abandon(ctx, a)
			a.enter(state)
			return r.finish(a, state, err)
		}
		a.enter(state)

		next, err := r.steps[state](ctx, a)
		if err != nil {
			if next != state {
				a.enter(next)
			}
			return r.finish(a, next, err)
		}
		if next == constant.StateDone {
			a.enter(next)
			return r.finish(a, next, nil)
		}
		state = next
	}
}

func candidateFrom(input dto.ReminderInput) entity.Reminder {
	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}
	reminder := entity.Reminder{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
	}
	if input.Latitude != nil && input.Longitude != nil {
		reminder.Latitude = *input.Latitude
		reminder.Longitude = *input.Longitude
	}
	return reminder
}

func (r *geofenceRegistrar) finish(a *attempt, state constant.AttemptState, err error) *Outcome {
	metrics.AttemptsFinished.WithLabelValues(state.String()).Inc()
	if a.degraded && state == constant.StateDone {
		metrics.AttemptsDegraded.Inc()
	}
	if err != nil {
		r.log.Info(fmt.Sprintf("Registration attempt for reminder %s ended in %s: %v", a.reminder.ID, state, err))
	} else {
		r.log.Info(fmt.Sprintf("Registration attempt for reminder %s completed", a.reminder.ID))
	}
	return &Outcome{
		State:    state,
		Err:      err,
		Trail:    a.trail,
		Notices:  a.notices,
		Degraded: a.degraded,
		Reminder: a.reminder,
	}
}

func (r *geofenceRegistrar) notify(ctx context.Context, a *attempt, notice Notice) {
	a.notices = append(a.notices, notice)
	a.ports.Prompter.Notify(context.WithoutCancel(ctx), notice)
}

// abandon ends the attempt after the user walked away, undoing a registration
// that has not been persisted yet.
func (r *geofenceRegistrar) abandon(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	if a.registered {
		r.rollbackGeofence(context.WithoutCancel(ctx), a)
	}
	return constant.StateAbandonedByUser, appErrors.ErrAbandoned
}

// lookupPrevious records the stored reminder an update is about to replace.
func (r *geofenceRegistrar) lookupPrevious(ctx context.Context, a *attempt) {
	a.prior = priorNone
	if a.input.ID == "" {
		return
	}
	res := r.reminders.GetReminder(ctx, a.reminder.ID)
	if previous, ok := res.Get(); ok {
		a.prior = priorStored
		a.previous = previous
		return
	}
	if res.Message() != MsgReminderNotFound {
		r.log.Warn(fmt.Sprintf("Could not look up reminder %s before registration: %s", a.reminder.ID, res.Message()))
		a.prior = priorUnknown
	}
}

// rollbackGeofence undoes the registration of an unsaved candidate. A stored
// reminder with the same ID keeps a region: its own when known, otherwise the
// candidate's until the next sync re-arms it from the store.
func (r *geofenceRegistrar) rollbackGeofence(ctx context.Context, a *attempt) {
	switch a.prior {
	case priorStored:
		if err := r.geofencer.Add(ctx, entity.RegionFor(a.previous)); err != nil {
			r.log.Warn(fmt.Sprintf("Failed to restore geofence %s: %v", a.reminder.ID, err))
			return
		}
		r.log.Debug(fmt.Sprintf("Restored geofence %s of the stored reminder", a.reminder.ID))
	case priorUnknown:
		r.log.Warn(fmt.Sprintf("Leaving geofence %s armed: the store could not say whether it is in use", a.reminder.ID))
	default:
		r.removeGeofence(ctx, a.reminder.ID)
	}
}

func (r *geofenceRegistrar) removeGeofence(ctx context.Context, id string) {
	if err := r.geofencer.Remove(ctx, id); err != nil {
		r.log.Warn(fmt.Sprintf("Failed to remove geofence %s: %v", id, err))
		return
	}
	r.log.Debug(fmt.Sprintf("Removed geofence %s", id))
}

func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (r *geofenceRegistrar) validateInput(_ context.Context, a *attempt) (constant.AttemptState, error) {
	if strings.TrimSpace(a.input.Title) == "" {
		return constant.StateValidatingInput, appErrors.ErrTitleMissing
	}
	in := a.input
	if in.Latitude == nil || in.Longitude == nil || strings.TrimSpace(in.Location) == "" ||
		!geo.ValidCoordinate(*in.Latitude, *in.Longitude) {
		return constant.StateValidatingInput, appErrors.ErrLocationMissing
	}
	return constant.StateCheckingForegroundPermission, nil
}

func (r *geofenceRegistrar) checkForegroundPermission(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	perms := a.ports.Permissions
	granted, err := r.allGranted(ctx, perms, constant.ForegroundPermissions)
	if err != nil {
		return r.permissionFailure(ctx, a, err)
	}

	for !granted {
		rationale, err := perms.ShouldShowRationale(ctx, constant.PermissionFineLocation)
		if err != nil {
			return r.permissionFailure(ctx, a, err)
		}
		if a.permissionAsked && !rationale {
			return r.denyPermission(ctx, a)
		}
		if rationale {
			if a.rationaleShown >= r.opts.MaxPermissionPrompts {
				return r.denyPermission(ctx, a)
			}
			a.rationaleShown++
			ack, err := a.ports.Prompter.ShowRationale(ctx, MsgRationale)
			if err != nil {
				return r.permissionFailure(ctx, a, err)
			}
			if !ack {
				r.notify(ctx, a, Notice{Kind: NoticeTransient, Message: MsgRationaleDismissed})
				return constant.StateAbandonedByUser, appErrors.ErrAbandoned
			}
		}

		grants, err := perms.Request(ctx, constant.ForegroundPermissions)
		if err != nil {
			return r.permissionFailure(ctx, a, err)
		}
		a.permissionAsked = true
		granted = grantedAll(grants, constant.ForegroundPermissions)
	}

	if perms.BackgroundGated(ctx) {
		return constant.StateCheckingBackgroundPermission, nil
	}
	return constant.StateCheckingLocationSettings, nil
}

func (r *geofenceRegistrar) allGranted(ctx context.Context, perms PermissionService, want []constant.Permission) (bool, error) {
	for _, p := range want {
		ok, err := perms.IsGranted(ctx, p)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func grantedAll(grants map[constant.Permission]bool, want []constant.Permission) bool {
	for _, p := range want {
		if !grants[p] {
			return false
		}
	}
	return true
}

func (r *geofenceRegistrar) permissionFailure(ctx context.Context, a *attempt, err error) (constant.AttemptState, error) {
	if interrupted(ctx, err) {
		return r.abandon(ctx, a)
	}
	r.log.Error("Permission service failed", err)
	return r.denyPermission(ctx, a)
}

func (r *geofenceRegistrar) denyPermission(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	r.notify(ctx, a, Notice{Kind: NoticePersistent, Message: MsgPermissionDenied, Action: ActionOpenSettings})
	return constant.StatePermissionDenied, appErrors.ErrPermissionDenied
}

// checkBackgroundPermission never aborts: a denial degrades the reminder to
// foreground-only delivery.
func (r *geofenceRegistrar) checkBackgroundPermission(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	perms := a.ports.Permissions
	bg := []constant.Permission{constant.PermissionBackgroundLocation}

	granted, err := r.allGranted(ctx, perms, bg)
	if err == nil && !granted {
		var grants map[constant.Permission]bool
		grants, err = perms.Request(ctx, bg)
		granted = err == nil && grantedAll(grants, bg)
	}
	if err != nil {
		if interrupted(ctx, err) {
			return r.abandon(ctx, a)
		}
		r.log.Error("Background permission check failed", err)
	}
	if !granted {
		a.degraded = true
		r.notify(ctx, a, Notice{Kind: NoticeTransient, Message: MsgBackgroundDenied})
	}
	return constant.StateCheckingLocationSettings, nil
}

func (r *geofenceRegistrar) checkLocationSettings(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	status, err := a.ports.Settings.Check(ctx)
	if err != nil {
		if interrupted(ctx, err) {
			return r.abandon(ctx, a)
		}
		r.log.Error("Location settings check failed", err)
		return constant.StateSettingsUnresolved, nil
	}
	switch status {
	case SettingsSatisfied:
		return constant.StateRegisteringGeofence, nil
	case SettingsResolvable:
		return constant.StateResolvingSettings, nil
	default:
		return constant.StateSettingsUnresolved, nil
	}
}

func (r *geofenceRegistrar) resolveSettings(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	ok, err := a.ports.Settings.Resolve(ctx)
	if err != nil {
		if interrupted(ctx, err) {
			return r.abandon(ctx, a)
		}
		r.log.Warn(fmt.Sprintf("Location settings resolution failed: %v", err))
		return constant.StateSettingsUnresolved, nil
	}
	if !ok {
		return constant.StateSettingsUnresolved, nil
	}
	return constant.StateRegisteringGeofence, nil
}

// offerSettingsRetry re-enters the settings check when the user asks to retry.
func (r *geofenceRegistrar) offerSettingsRetry(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	if a.settingsRetries >= r.opts.MaxSettingsRetries {
		r.notify(ctx, a, Notice{Kind: NoticePersistent, Message: MsgSettingsRequired})
		return constant.StateSettingsUnresolved, appErrors.ErrSettingsUnresolved
	}

	notice := Notice{Kind: NoticePersistent, Message: MsgSettingsRequired, Action: ActionRetry}
	a.notices = append(a.notices, notice)
	retry, err := a.ports.Prompter.OfferRetry(ctx, notice)
	if err != nil {
		if interrupted(ctx, err) {
			return r.abandon(ctx, a)
		}
		r.log.Error("Retry offer failed", err)
		return constant.StateSettingsUnresolved, appErrors.ErrSettingsUnresolved
	}
	if !retry {
		return constant.StateSettingsUnresolved, appErrors.ErrSettingsUnresolved
	}
	a.settingsRetries++
	return constant.StateCheckingLocationSettings, nil
}

func (r *geofenceRegistrar) registerGeofence(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	r.lookupPrevious(ctx, a)

	// The initial trigger is armed once the reminder is stored, so the event
	// handler can always resolve it.
	region := entity.RegionFor(&a.reminder)
	region.InitialTrigger = ""
	if err := r.geofencer.Add(ctx, region); err != nil {
		if interrupted(ctx, err) {
			return r.abandon(ctx, a)
		}
		metrics.GeofenceRegistrations.WithLabelValues("registrar", "failed").Inc()
		r.log.Warn(fmt.Sprintf("Failed to add geofence for reminder %s: %v", a.reminder.ID, err))
		r.notify(ctx, a, Notice{Kind: NoticeTransient, Message: MsgGeofenceNotAdded})
		return constant.StateRegistrationFailed, fmt.Errorf("%w: %v", appErrors.ErrRegistrationFailed, err)
	}
	metrics.GeofenceRegistrations.WithLabelValues("registrar", "ok").Inc()
	a.registered = true
	r.log.Debug(fmt.Sprintf("Added geofence for reminder %s", a.reminder.ID))
	return constant.StatePersisting, nil
}

func (r *geofenceRegistrar) persist(ctx context.Context, a *attempt) (constant.AttemptState, error) {
	if !a.registered || a.input.Latitude == nil || a.input.Longitude == nil ||
		!geo.ValidCoordinate(a.reminder.Latitude, a.reminder.Longitude) {
		panic(fmt.Sprintf("persisting reminder %s without a registered geofence and valid coordinates", a.reminder.ID))
	}

	res := r.reminders.SaveReminder(ctx, &a.reminder)
	if !res.IsSuccess() {
		r.rollbackGeofence(context.WithoutCancel(ctx), a)
		r.notify(ctx, a, Notice{Kind: NoticeTransient, Message: MsgReminderNotSaved})
		return constant.StatePersistenceFailed, fmt.Errorf("%w: %s", appErrors.ErrPersistence, res.Message())
	}
	r.armInitialTrigger(context.WithoutCancel(ctx), a)
	r.notify(ctx, a, Notice{Kind: NoticeTransient, Message: MsgReminderSaved})
	return constant.StateDone, nil
}

// armInitialTrigger re-submits the stored reminder's region with its ENTER
// initial trigger. A failure leaves the region armed for later transitions.
func (r *geofenceRegistrar) armInitialTrigger(ctx context.Context, a *attempt) {
	if err := r.geofencer.Add(ctx, entity.RegionFor(&a.reminder)); err != nil {
		r.log.Warn(fmt.Sprintf("Failed to arm initial trigger for geofence %s: %v", a.reminder.ID, err))
	}
}
