package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"nomaddesk/internal/usecase/queries"
)

type NotificationResponse struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	Read             bool       `json:"read"`
	ActionURL        *string    `json:"action_url,omitempty"`
	ActionText       *string    `json:"action_text,omitempty"`
	RelatedBookingID *uuid.UUID `json:"related_booking_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func FromNotificationViews(views []*queries.NotificationView, unreadCount int) *NotificationListResponse {
	notifications := make([]NotificationResponse, 0, len(views))
	_ = copier.Copy(&notifications, &views)
	return &NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unreadCount,
	}
}
