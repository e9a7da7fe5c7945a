package queries

import (
	"context"
	"log/slog"

	"nomaddesk/internal/infra"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInviteNotFound = errs.New("invitation not found")
	ErrInviteAccess   = errs.New("invitation access denied")
)

type InviteQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*InviteView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, pendingOnly bool) ([]*InviteView, error)
}

type InviteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InviteView, error)
	FindByInvitee(ctx context.Context, inviteeID uuid.UUID, pendingOnly bool) ([]*InviteView, error)
	// MarkViewed records the first time the invitee opened the invite;
	// later calls are no-ops.
	MarkViewed(ctx context.Context, id uuid.UUID) error
}

type inviteQueriesImpl struct {
	readStore InviteReadStore
	clock     clock.Clock
}

func NewInviteQueries(readStore InviteReadStore, clock clock.Clock) InviteQueries {
	return &inviteQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *inviteQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*InviteView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}

	if view.InviteeID != actorID && view.InviterID != actorID {
		return nil, ErrInviteAccess
	}

	if view.InviteeID == actorID && view.ViewedAt == nil {
		if err := q.readStore.MarkViewed(ctx, id); err != nil {
			slog.Warn("failed to mark invite viewed", "invite_id", id, "error", err.Error())
		} else {
			now := q.clock.Now()
			view.ViewedAt = &now
		}
	}

	q.applyExpiry(view)
	return view, nil
}

func (q *inviteQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, pendingOnly bool) ([]*InviteView, error) {
	views, err := q.readStore.FindByInvitee(ctx, userID, pendingOnly)
	if err != nil {
		return nil, err
	}

	result := make([]*InviteView, 0, len(views))
	for _, v := range views {
		q.applyExpiry(v)
		if pendingOnly && v.Status != "pending" {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

// Expiry is evaluated on read; stored rows keep their last written status.
func (q *inviteQueriesImpl) applyExpiry(v *InviteView) {
	if v.Status == "pending" && !v.ExpiresAt.After(q.clock.Now()) {
		v.Status = "expired"
	}
}
