package platform

import (
	"context"
	"fmt"
	"sync"

	"georeminder/internal/application/service"
	"georeminder/internal/domain/constant"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/logger"
)

var (
	acknowledgeOptions = []string{"accept", "dismiss"}
	grantOptions       = []string{"accept", "dismiss", "grants"}
)

// Session realises the interactive gates of one attempt as prompts that an
// outside caller answers through Respond.
type Session struct {
	device *Device
	log    logger.Logger

	mu      sync.Mutex
	pending *service.Prompt
	answers chan service.Answer
	notices []service.Notice
}

var _ service.Session = (*Session)(nil)

func NewSession(device *Device, log logger.Logger) *Session {
	return &Session{device: device, log: log}
}

// SessionFactory returns a factory creating sessions bound to device.
func SessionFactory(device *Device, log logger.Logger) service.SessionFactory {
	return func() service.Session {
		return NewSession(device, log)
	}
}

// ask publishes prompt and blocks until it is answered or ctx ends.
func (s *Session) ask(ctx context.Context, prompt service.Prompt) (service.Answer, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return service.Answer{}, fmt.Errorf("%w: prompt %s already pending", appErrors.ErrInternalServer, s.pending.Kind)
	}
	answers := make(chan service.Answer, 1)
	s.pending = &prompt
	s.answers = answers
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.pending = nil
		s.answers = nil
		s.mu.Unlock()
	}()

	select {
	case answer := <-answers:
		return answer, nil
	case <-ctx.Done():
		return service.Answer{}, ctx.Err()
	}
}

func (s *Session) Pending() (service.Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return service.Prompt{}, false
	}
	return *s.pending, true
}

func (s *Session) Respond(answer service.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return appErrors.ErrNoPendingPrompt
	}
	s.answers <- answer
	s.pending = nil
	s.answers = nil
	return nil
}

func (s *Session) Notices() []service.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]service.Notice(nil), s.notices...)
}

func (s *Session) IsGranted(_ context.Context, perm constant.Permission) (bool, error) {
	return s.device.IsGranted(perm), nil
}

func (s *Session) ShouldShowRationale(_ context.Context, perm constant.Permission) (bool, error) {
	return s.device.ShouldShowRationale(perm), nil
}

// Request asks for perms. Permanently denied permissions are refused without a prompt.
func (s *Session) Request(ctx context.Context, perms []constant.Permission) (map[constant.Permission]bool, error) {
	result := make(map[constant.Permission]bool, len(perms))
	var ask []constant.Permission
	for _, p := range perms {
		switch {
		case s.device.IsGranted(p):
			result[p] = true
		case s.device.IsPermanentlyDenied(p):
			result[p] = false
		default:
			ask = append(ask, p)
		}
	}
	if len(ask) == 0 {
		return result, nil
	}

	answer, err := s.ask(ctx, service.Prompt{
		Kind:        service.PromptPermissions,
		Message:     "Allow access to this device's location?",
		Options:     grantOptions,
		Permissions: ask,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range ask {
		granted := answer.Accept
		if answer.Grants != nil {
			granted = answer.Grants[p]
		}
		if granted {
			s.device.Grant(p)
		} else {
			s.device.Deny(p)
		}
		result[p] = granted
	}
	return result, nil
}

func (s *Session) BackgroundGated(context.Context) bool {
	return s.device.BackgroundGated()
}

func (s *Session) Check(context.Context) (service.SettingsStatus, error) {
	switch {
	case s.device.LocationEnabled():
		return service.SettingsSatisfied, nil
	case s.device.Resolvable():
		return service.SettingsResolvable, nil
	default:
		return service.SettingsUnresolvable, nil
	}
}

// Resolve offers to turn device location on.
func (s *Session) Resolve(ctx context.Context) (bool, error) {
	answer, err := s.ask(ctx, service.Prompt{
		Kind:    service.PromptResolveSettings,
		Message: "Turn on device location?",
		Options: acknowledgeOptions,
	})
	if err != nil {
		return false, err
	}
	if answer.Accept {
		s.device.SetLocationEnabled(true)
	}
	return answer.Accept, nil
}

func (s *Session) ShowRationale(ctx context.Context, message string) (bool, error) {
	answer, err := s.ask(ctx, service.Prompt{
		Kind:    service.PromptRationale,
		Message: message,
		Options: acknowledgeOptions,
	})
	if err != nil {
		return false, err
	}
	return answer.Accept, nil
}

func (s *Session) Notify(_ context.Context, notice service.Notice) {
	s.mu.Lock()
	s.notices = append(s.notices, notice)
	s.mu.Unlock()
	s.log.Debug(fmt.Sprintf("Notice (%s): %s", notice.Kind, notice.Message))
}

func (s *Session) OfferRetry(ctx context.Context, notice service.Notice) (bool, error) {
	answer, err := s.ask(ctx, service.Prompt{
		Kind:    service.PromptRetrySettings,
		Message: notice.Message,
		Options: acknowledgeOptions,
	})
	if err != nil {
		return false, err
	}
	return answer.Accept, nil
}
