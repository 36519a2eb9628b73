package dto

import (
	"georeminder/internal/domain/constant"
)

// AttemptCreatedResponse is returned when an attempt has been started.
type AttemptCreatedResponse struct {
	ID         string `json:"id"`
	ReminderID string `json:"reminder_id"`
}

// PromptResponse describes the interaction an attempt is waiting on.
type PromptResponse struct {
	Kind        string                `json:"kind"`
	Message     string                `json:"message"`
	Options     []string              `json:"options"`
	Permissions []constant.Permission `json:"permissions,omitempty"`
}

// NoticeResponse is a notice issued by an attempt.
type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// AttemptResponse is a snapshot of a registration attempt.
type AttemptResponse struct {
	ID       string                  `json:"id"`
	State    constant.AttemptState   `json:"state"`
	Finished bool                    `json:"finished"`
	Trail    []constant.AttemptState `json:"trail"`
	Prompt   *PromptResponse         `json:"prompt,omitempty"`
	Notices  []NoticeResponse        `json:"notices"`
	Degraded bool                    `json:"degraded"`
	Error    string                  `json:"error,omitempty"`
	Reminder *ReminderResponse       `json:"reminder,omitempty"`
}

// RespondRequest answers the pending prompt of an attempt.
// Grants is only read for permission requests.
type RespondRequest struct {
	Answer string                       `json:"answer" validate:"required,oneof=accept dismiss"`
	Grants map[constant.Permission]bool `json:"grants,omitempty"`
}

// Accepted reports whether the answer is "accept".
func (r RespondRequest) Accepted() bool {
	return r.Answer == "accept"
}
