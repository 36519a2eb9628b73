package service

import (
	"context"

	"georeminder/internal/domain/constant"
	"georeminder/internal/domain/entity"
)

//go:generate mockgen -source=platform.go -destination=mocks/platform_mocks.go -package=mocks

// PermissionService checks and requests platform capabilities.
type PermissionService interface {
	// IsGranted reports whether a capability is currently granted.
	IsGranted(ctx context.Context, perm constant.Permission) (bool, error)
	// ShouldShowRationale reports whether the platform wants an explanation
	// shown before asking for perm again. False after a permanent denial.
	ShouldShowRationale(ctx context.Context, perm constant.Permission) (bool, error)
	// Request interactively asks the user for perms and blocks until they answer.
	Request(ctx context.Context, perms []constant.Permission) (map[constant.Permission]bool, error)
	// BackgroundGated reports whether background location is granted separately
	// from foreground location on this platform version.
	BackgroundGated(ctx context.Context) bool
}

// SettingsStatus is the result of a location settings check.
type SettingsStatus int

const (
	// SettingsSatisfied means device location is on at sufficient accuracy.
	SettingsSatisfied SettingsStatus = iota
	// SettingsResolvable means the platform offers an interactive correction.
	SettingsResolvable
	// SettingsUnresolvable means location is off and no correction is offered.
	SettingsUnresolvable
)

// LocationSettings checks and resolves the device location setting.
type LocationSettings interface {
	Check(ctx context.Context) (SettingsStatus, error)
	// Resolve launches the interactive correction and blocks until the user
	// accepts (true) or cancels (false).
	Resolve(ctx context.Context) (bool, error)
}

// NoticeKind distinguishes how a notice is presented.
type NoticeKind string

const (
	// NoticeTransient is a short-lived message (toast).
	NoticeTransient NoticeKind = "transient"
	// NoticePersistent stays until dismissed (snackbar) and may carry an action.
	NoticePersistent NoticeKind = "persistent"
)

// NoticeAction is the action attached to a persistent notice.
type NoticeAction string

const (
	ActionNone         NoticeAction = ""
	ActionOpenSettings NoticeAction = "open_settings"
	ActionRetry        NoticeAction = "retry"
)

// Notice is a user-visible message produced by an attempt.
type Notice struct {
	Kind    NoticeKind   `json:"kind"`
	Message string       `json:"message"`
	Action  NoticeAction `json:"action,omitempty"`
}

// Prompter presents explanations and notices to the user.
type Prompter interface {
	// ShowRationale explains why location is needed and blocks until the user
	// acknowledges (true) or dismisses (false).
	ShowRationale(ctx context.Context, message string) (bool, error)
	// Notify surfaces a notice without waiting.
	Notify(ctx context.Context, notice Notice)
	// OfferRetry shows a persistent notice with a retry action and blocks until
	// the user retries (true) or dismisses it (false).
	OfferRetry(ctx context.Context, notice Notice) (bool, error)
}

// Geofencer registers regions with the platform geofencing facility.
type Geofencer interface {
	Add(ctx context.Context, region entity.Region) error
	Remove(ctx context.Context, requestIDs ...string) error
	// RemoveAll unregisters every region the app owns.
	RemoveAll(ctx context.Context) error
}

// Notifier emits the notification for a triggered reminder.
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}

// PromptKind identifies what a pending prompt asks of the user.
type PromptKind string

const (
	PromptRationale       PromptKind = "rationale"
	PromptPermissions     PromptKind = "permission_request"
	PromptResolveSettings PromptKind = "resolve_settings"
	PromptRetrySettings   PromptKind = "retry_settings"
)

// Prompt is a suspension point waiting on the user.
type Prompt struct {
	Kind        PromptKind
	Message     string
	Options     []string
	Permissions []constant.Permission
}

// Answer is the user's reply to a Prompt.
type Answer struct {
	Accept bool
	// Grants answers a PromptPermissions prompt. Missing entries count as denied.
	Grants map[constant.Permission]bool
}

// Session is the per-attempt interactive surface: it implements the ports
// the registrar blocks on and lets an outside caller answer them.
type Session interface {
	PermissionService
	LocationSettings
	Prompter
	// Pending returns the prompt currently waiting for an answer.
	Pending() (Prompt, bool)
	// Respond answers the pending prompt.
	Respond(answer Answer) error
	// Notices returns the notices surfaced so far.
	Notices() []Notice
}

// SessionFactory creates a fresh Session for every attempt.
type SessionFactory func() Session
