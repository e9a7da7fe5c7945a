package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"nomaddesk/internal/domain/notification"
	"nomaddesk/internal/infra/stream"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/pkg/errs"
	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/shared"
)

// Publisher streams delivered notifications to out-of-band channels.
type Publisher interface {
	Publish(ctx context.Context, msg stream.NotificationMessage) error
}

// Notifier persists each notification and then streams it best-effort.
// Persistence is the source of truth; a stream failure only costs the
// out-of-band delivery, never the in-app record.
type Notifier struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
}

func NewNotifier(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock) *Notifier {
	return &Notifier{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (n *Notifier) Notify(ctx context.Context, event commands.NotificationEvent) error {
	title, message := notification.Render(event.Action, notification.TemplateContext{
		ActorName:     event.ActorName,
		GroupName:     event.GroupName,
		WorkspaceName: event.WorkspaceName,
		Detail:        event.Detail,
	})

	record := &notification.Notification{
		UserID:  event.RecipientID,
		Type:    notification.TypeFor(event.Action),
		Title:   title,
		Message: message,
		Metadata: map[string]any{
			"action": string(event.Action),
		},
		CreatedAt: n.clock.Now(),
	}
	if event.BookingID != uuid.Nil {
		bookingID := event.BookingID
		record.RelatedBookingID = &bookingID
		record.ActionURL = fmt.Sprintf("/bookings/group/%s", bookingID)
		record.ActionText = "View booking"
	}

	var notificationID uuid.UUID
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Notifications().Create(ctx, tx.DB(), record)
		if err != nil {
			return err
		}
		notificationID = id
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to persist notification")
	}

	n.publish(ctx, notificationID, record)
	return nil
}

func (n *Notifier) publish(ctx context.Context, notificationID uuid.UUID, record *notification.Notification) {
	if n.publisher == nil {
		return
	}

	msg := stream.NotificationMessage{
		NotificationID: notificationID,
		RecipientID:    record.UserID,
		Type:           string(record.Type),
		Title:          record.Title,
		Message:        record.Message,
		CreatedAt:      record.CreatedAt,
	}
	if record.RelatedBookingID != nil {
		msg.BookingID = *record.RelatedBookingID
	}
	if recipient, err := n.uow.CommandReads().UserByID(ctx, record.UserID); err == nil {
		msg.RecipientEmail = recipient.Email
	}

	if err := n.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("failed to stream notification",
			"notification_id", notificationID,
			"recipient_id", record.UserID,
			"error", err.Error())
	}
}
