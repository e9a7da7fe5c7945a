package readstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/usecase/queries"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

const selectNotificationViewsSQL = `
SELECT id, type, title, message, read, action_url, action_text, related_booking_id, created_at
FROM notifications
WHERE user_id = $1%s
ORDER BY created_at DESC
LIMIT $2`

func (r *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*queries.NotificationView, error) {
	filter := ""
	if unreadOnly {
		filter = " AND NOT read"
	}
	query := fmt.Sprintf(selectNotificationViewsSQL, filter)

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list notifications", err)
	}
	defer rows.Close()

	views := make([]*queries.NotificationView, 0)
	for rows.Next() {
		var view queries.NotificationView
		if err := rows.Scan(
			&view.ID, &view.Type, &view.Title, &view.Message, &view.Read,
			&view.ActionURL, &view.ActionText, &view.RelatedBookingID, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read notifications", err)
	}
	return views, nil
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT read`, userID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to count unread notifications", err)
	}
	return count, nil
}
