package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"georeminder/internal/application/service"
	"georeminder/internal/infrastructure/line"
	"georeminder/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

const howToUse = `Share a location to move the device there.
Reminders whose place you reach are pushed to this chat.

"list" shows the saved reminders.
"help" shows this message.`

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	lineClient *line.Client
	reminders  service.ReminderService
	locations  LocationReporter
	log        logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(
	lineClient *line.Client,
	reminders service.ReminderService,
	locations LocationReporter,
	log logger.Logger,
) *LineHandler {
	return &LineHandler{
		lineClient: lineClient,
		reminders:  reminders,
		locations:  locations,
		log:        log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		h.log.Info(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.reply(event.ReplyToken, linebot.NewTextMessage(howToUse))
		default:
			h.log.Info(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	replyToken := event.ReplyToken

	switch message := event.Message.(type) {
	case *linebot.LocationMessage:
		entered := h.locations.ReportLocation(ctx, message.Latitude, message.Longitude)
		h.log.Info(fmt.Sprintf("Device moved to %.5f,%.5f via LINE, entered %d regions", message.Latitude, message.Longitude, len(entered)))
		h.reply(replyToken, linebot.NewTextMessage(fmt.Sprintf("Location updated. Reminders triggered: %d", len(entered))))

	case *linebot.TextMessage:
		switch strings.ToLower(strings.TrimSpace(message.Text)) {
		case "list":
			h.sendReminderList(ctx, replyToken)
		default:
			quickReply := linebot.NewQuickReplyItems(
				linebot.NewQuickReplyButton("", linebot.NewMessageAction("list", "list")),
				linebot.NewQuickReplyButton("", linebot.NewLocationAction("location")),
			)
			h.reply(replyToken, linebot.NewTextMessage(howToUse).WithQuickReplies(quickReply))
		}

	default:
		h.log.Info("Received unsupported message type")
	}
}

func (h *LineHandler) sendReminderList(ctx context.Context, replyToken string) {
	res := h.reminders.GetReminders(ctx)
	reminders, ok := res.Get()
	if !ok {
		h.reply(replyToken, linebot.NewTextMessage(res.Message()))
		return
	}
	if len(reminders) == 0 {
		h.reply(replyToken, linebot.NewTextMessage("No reminders saved."))
		return
	}

	var builder strings.Builder
	for _, r := range reminders {
		builder.WriteString(fmt.Sprintf("%s (%s)\n%.5f, %.5f\n\n", r.Title, r.Location, r.Latitude, r.Longitude))
	}
	h.reply(replyToken, linebot.NewTextMessage(strings.TrimSuffix(builder.String(), "\n\n")))
}

func (h *LineHandler) reply(replyToken string, messages ...linebot.SendingMessage) {
	if err := h.lineClient.SendMessages(replyToken, messages...); err != nil {
		h.log.Error("Failed to send reply message", err)
	}
}
