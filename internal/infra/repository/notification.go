package repository

import (
	"context"
	"encoding/json"

	"nomaddesk/internal/domain/notification"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationSQL = `
INSERT INTO notifications (
    id, user_id, type, title, message, read,
    action_url, action_text, related_booking_id, metadata, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) (uuid.UUID, error) {
	var metadata []byte
	if len(n.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(n.Metadata)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to encode notification metadata", err)
		}
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertNotificationSQL,
		n.ID, n.UserID, string(n.Type), n.Title, n.Message, n.Read,
		nullableText(n.ActionURL), nullableText(n.ActionText), n.RelatedBookingID, metadata, n.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create notification", err)
	}
	return id, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "notification not found", nil)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
