package handler

import (
	"errors"
	"net/http"

	"georeminder/internal/application/dto"
	"georeminder/internal/application/service"
	appErrors "georeminder/internal/pkg/errors"
	"georeminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AttemptHandler drives registration attempts over HTTP.
type AttemptHandler struct {
	attempts service.AttemptService
	log      logger.Logger
}

func NewAttemptHandler(attempts service.AttemptService, log logger.Logger) *AttemptHandler {
	return &AttemptHandler{attempts: attempts, log: log}
}

// Create handles POST /attempts.
func (h *AttemptHandler) Create(c echo.Context) error {
	var req dto.ReminderInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, h.attempts.Start(req))
}

// Get handles GET /attempts/:id.
func (h *AttemptHandler) Get(c echo.Context) error {
	resp, err := h.attempts.Get(c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Respond handles POST /attempts/:id/respond.
func (h *AttemptHandler) Respond(c echo.Context) error {
	var req dto.RespondRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	answer := service.Answer{Accept: req.Accepted(), Grants: req.Grants}
	if err := h.attempts.Respond(c.Param("id"), answer); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Cancel handles DELETE /attempts/:id.
func (h *AttemptHandler) Cancel(c echo.Context) error {
	if err := h.attempts.Cancel(c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *AttemptHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrAttemptNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrNoPendingPrompt):
		return errorJSON(c, http.StatusConflict, err.Error())
	default:
		h.log.Error("Attempt request failed", err)
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}
