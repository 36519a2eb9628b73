package handler

import (
	"fmt"
	"net/http"

	"georeminder/internal/application/dto"
	"georeminder/internal/application/service"
	"georeminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReminderHandler exposes the reminder repository.
type ReminderHandler struct {
	reminders service.ReminderService
	geofencer service.Geofencer
	log       logger.Logger
}

func NewReminderHandler(reminders service.ReminderService, geofencer service.Geofencer, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminders: reminders,
		geofencer: geofencer,
		log:       log,
	}
}

// List handles GET /reminders.
func (h *ReminderHandler) List(c echo.Context) error {
	res := h.reminders.GetReminders(c.Request().Context())
	reminders, ok := res.Get()
	if !ok {
		status := http.StatusInternalServerError
		if res.Message() == service.MsgRemindersNotFound {
			status = http.StatusNotFound
		}
		return errorJSON(c, status, res.Message())
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponseList(reminders))
}

// Get handles GET /reminders/:id.
func (h *ReminderHandler) Get(c echo.Context) error {
	res := h.reminders.GetReminder(c.Request().Context(), c.Param("id"))
	reminder, ok := res.Get()
	if !ok {
		status := http.StatusInternalServerError
		if res.Message() == service.MsgReminderNotFound {
			status = http.StatusNotFound
		}
		return errorJSON(c, status, res.Message())
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(reminder))
}

// Delete handles DELETE /reminders/:id. The reminder's geofence is removed as well.
func (h *ReminderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if res := h.reminders.DeleteReminder(ctx, id); !res.IsSuccess() {
		return errorJSON(c, http.StatusInternalServerError, res.Message())
	}
	if err := h.geofencer.Remove(ctx, id); err != nil {
		h.log.Warn(fmt.Sprintf("Failed to remove geofence %s: %v", id, err))
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll handles DELETE /reminders.
func (h *ReminderHandler) DeleteAll(c echo.Context) error {
	ctx := c.Request().Context()

	if res := h.reminders.DeleteAllReminders(ctx); !res.IsSuccess() {
		return errorJSON(c, http.StatusInternalServerError, res.Message())
	}
	// Every region belongs to a reminder, so the wipe clears them all.
	if err := h.geofencer.RemoveAll(ctx); err != nil {
		h.log.Warn(fmt.Sprintf("Failed to remove geofences: %v", err))
	}
	return c.NoContent(http.StatusNoContent)
}
