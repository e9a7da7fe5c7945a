package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.readStore.FindByUser(ctx, userID, unreadOnly, limit)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return q.readStore.CountUnread(ctx, userID)
}
