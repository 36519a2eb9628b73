package line

import (
	"context"
	"fmt"

	"georeminder/internal/application/service"
	"georeminder/internal/domain/entity"
	appErrors "georeminder/internal/pkg/errors"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Notifier pushes triggered reminders to a LINE user, group or room.
type Notifier struct {
	client *Client
	to     string
}

var _ service.Notifier = (*Notifier)(nil)

func NewNotifier(client *Client, to string) *Notifier {
	return &Notifier{client: client, to: to}
}

// Notify pushes the reminder as a single text message.
func (n *Notifier) Notify(_ context.Context, notification entity.Notification) error {
	if err := n.client.PushMessages(n.to, linebot.NewTextMessage(FormatNotification(notification))); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrLineAPI, err)
	}
	return nil
}

// FormatNotification renders a notification as chat text.
func FormatNotification(n entity.Notification) string {
	text := fmt.Sprintf("📍 %s\n%s", n.Location, n.Title)
	if n.Description != "" {
		text += "\n" + n.Description
	}
	return text
}
