package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"georeminder/internal/application/dto"
	"georeminder/internal/domain/constant"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/logger"

	"github.com/google/uuid"
)

type trackedAttempt struct {
	id         string
	reminderID string
	session    Session
	cancel     context.CancelFunc
	done       chan struct{}

	mu         sync.Mutex
	state      constant.AttemptState
	trail      []constant.AttemptState
	outcome    *Outcome
	finishedAt time.Time
}

func (t *trackedAttempt) onState(state constant.AttemptState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	t.trail = append(t.trail, state)
}

type attemptService struct {
	registrar  GeofenceRegistrar
	newSession SessionFactory
	retention  time.Duration
	log        logger.Logger
	now        func() time.Time

	baseCtx  context.Context
	stop     context.CancelFunc
	mu       sync.Mutex
	attempts map[string]*trackedAttempt
}

// NewAttemptService creates a new instance of AttemptService implementation.
func NewAttemptService(registrar GeofenceRegistrar, newSession SessionFactory, retention time.Duration, log logger.Logger) AttemptService {
	ctx, stop := context.WithCancel(context.Background())
	return &attemptService{
		registrar:  registrar,
		newSession: newSession,
		retention:  retention,
		log:        log,
		now:        time.Now,
		baseCtx:    ctx,
		stop:       stop,
		attempts:   make(map[string]*trackedAttempt),
	}
}

func (s *attemptService) Start(input dto.ReminderInput) dto.AttemptCreatedResponse {
	s.sweep()

	if input.ID == "" {
		input.ID = uuid.NewString()
	}
	ctx, cancel := context.WithCancel(s.baseCtx)
	t := &trackedAttempt{
		id:         uuid.NewString(),
		reminderID: input.ID,
		session:    s.newSession(),
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	s.mu.Lock()
	s.attempts[t.id] = t
	s.mu.Unlock()

	ports := AttemptPorts{
		Permissions: t.session,
		Settings:    t.session,
		Prompter:    t.session,
		OnState:     t.onState,
	}
	go func() {
		defer close(t.done)
		defer cancel()
		outcome := s.registrar.Register(ctx, input, ports)

		t.mu.Lock()
		t.outcome = outcome
		t.state = outcome.State
		t.finishedAt = s.now()
		t.mu.Unlock()
	}()

	s.log.Info(fmt.Sprintf("Started registration attempt %s for reminder %s", t.id, t.reminderID))
	return dto.AttemptCreatedResponse{ID: t.id, ReminderID: t.reminderID}
}

func (s *attemptService) lookup(id string) (*trackedAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.attempts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", appErrors.ErrAttemptNotFound, id)
	}
	return t, nil
}

func (s *attemptService) Get(id string) (dto.AttemptResponse, error) {
	s.sweep()
	t, err := s.lookup(id)
	if err != nil {
		return dto.AttemptResponse{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	resp := dto.AttemptResponse{
		ID:    t.id,
		State: t.state,
		Trail: append([]constant.AttemptState(nil), t.trail...),
	}
	if t.outcome == nil {
		if prompt, ok := t.session.Pending(); ok {
			resp.Prompt = &dto.PromptResponse{
				Kind:        string(prompt.Kind),
				Message:     prompt.Message,
				Options:     prompt.Options,
				Permissions: prompt.Permissions,
			}
		}
		resp.Notices = toNoticeResponses(t.session.Notices())
		return resp, nil
	}

	resp.Finished = true
	resp.Trail = append([]constant.AttemptState(nil), t.outcome.Trail...)
	resp.Notices = toNoticeResponses(t.outcome.Notices)
	resp.Degraded = t.outcome.Degraded
	if t.outcome.Err != nil {
		resp.Error = t.outcome.Err.Error()
	}
	if t.outcome.State == constant.StateDone {
		reminder := dto.ToReminderResponse(&t.outcome.Reminder)
		resp.Reminder = &reminder
	}
	return resp, nil
}

func toNoticeResponses(notices []Notice) []dto.NoticeResponse {
	out := make([]dto.NoticeResponse, len(notices))
	for i, n := range notices {
		out[i] = dto.NoticeResponse{Kind: string(n.Kind), Message: n.Message, Action: string(n.Action)}
	}
	return out
}

func (s *attemptService) Respond(id string, answer Answer) error {
	t, err := s.lookup(id)
	if err != nil {
		return err
	}
	return t.session.Respond(answer)
}

func (s *attemptService) Cancel(id string) error {
	t, err := s.lookup(id)
	if err != nil {
		return err
	}
	t.cancel()
	s.log.Info(fmt.Sprintf("Cancelled registration attempt %s", id))
	return nil
}

func (s *attemptService) Wait(ctx context.Context, id string) (*Outcome, error) {
	t, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.outcome, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *attemptService) Shutdown() {
	s.stop()
}

// sweep forgets finished attempts older than the retention period.
func (s *attemptService) sweep() {
	cutoff := s.now().Add(-s.retention)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.attempts {
		t.mu.Lock()
		expired := t.outcome != nil && t.finishedAt.Before(cutoff)
		t.mu.Unlock()
		if expired {
			delete(s.attempts, id)
			s.log.Debug(fmt.Sprintf("Forgot registration attempt %s", id))
		}
	}
}
