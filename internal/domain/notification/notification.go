package notification

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBooking    Type = "booking"
	TypeConnection Type = "connection"
	TypeMessage    Type = "message"
	TypeSystem     Type = "system"
	TypeSession    Type = "session"
	TypeReview     Type = "review"
)

// Notification is the persisted record handed to the sink. The core
// only ever creates these; read-state belongs to the notification
// center, not to the booking flow.
type Notification struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Type             Type
	Title            string
	Message          string
	Read             bool
	ActionURL        string
	ActionText       string
	RelatedBookingID *uuid.UUID
	Metadata         map[string]any
	CreatedAt        time.Time
}
