package commands

import (
	"context"
	"log/slog"

	"nomaddesk/internal/domain/notification"

	"github.com/google/uuid"
)

// NotificationEvent is one fan-out unit: a recipient plus the action
// that happened and the names the template interpolates.
type NotificationEvent struct {
	RecipientID   uuid.UUID
	Action        notification.Action
	ActorName     string
	GroupName     string
	WorkspaceName string
	Detail        string
	BookingID     uuid.UUID
}

// Notifier is the injected notification sink. Implementations persist
// the notification and may additionally publish it to a stream; either
// way a failure belongs to the sink, not to the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}

// notify is the fire-and-forget call site shared by all commands:
// sink failures are logged and swallowed.
func notify(ctx context.Context, n Notifier, event NotificationEvent) {
	if err := n.Notify(ctx, event); err != nil {
		slog.Warn("notification delivery failed",
			"recipient_id", event.RecipientID,
			"action", string(event.Action),
			"booking_id", event.BookingID,
			"error", err.Error())
	}
}

// InvitationResult reports one entry's outcome; the batch is
// best-effort and partial success is expected.
type InvitationResult struct {
	Email    string     `json:"email,omitempty"`
	UserID   *uuid.UUID `json:"user_id,omitempty"`
	Success  bool       `json:"success"`
	InviteID *uuid.UUID `json:"invite_id,omitempty"`
	Error    string     `json:"error,omitempty"`
}
