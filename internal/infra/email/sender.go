package email

import (
	"context"
	"log/slog"

	"nomaddesk/internal/infra/stream"
)

// Sender is the delivery sink for the notification worker. There is no
// SMTP integration yet, so deliveries are logged; the worker contract
// stays the same when a real mailer replaces this.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, msg stream.NotificationMessage) error {
	slog.Info("delivering notification email",
		"recipient_id", msg.RecipientID,
		"recipient_email", msg.RecipientEmail,
		"type", msg.Type,
		"title", msg.Title)
	return nil
}
