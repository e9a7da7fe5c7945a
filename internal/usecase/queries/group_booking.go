package queries

import (
	"context"
	"log/slog"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("group booking not found")
	ErrBookingAccess   = errs.New("group booking access denied")
)

// InviteCounts is the per-status tally of GroupInvite records for a booking.
type InviteCounts struct {
	Total    int
	Pending  int
	Accepted int
	Declined int
}

type GroupBookingQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*GroupBookingView, error)
	// GetByIDSystem bypasses the visibility gate for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*GroupBookingView, error)
	Participants(ctx context.Context, actorID, id uuid.UUID) ([]ParticipantView, error)
	Stats(ctx context.Context, actorID, id uuid.UUID) (*GroupStatsView, error)
}

type GroupBookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GroupBookingView, error)
	CountInvitesByStatus(ctx context.Context, bookingID uuid.UUID) (*InviteCounts, error)
}

// StatsCache is a read-through cache for capacity accounting. A miss is
// (nil, nil); failures must never surface to the caller.
type StatsCache interface {
	Get(ctx context.Context, bookingID uuid.UUID) (*GroupStatsView, error)
	Set(ctx context.Context, bookingID uuid.UUID, stats *GroupStatsView) error
	Invalidate(ctx context.Context, bookingID uuid.UUID) error
}

type groupBookingQueriesImpl struct {
	readStore  GroupBookingReadStore
	statsCache StatsCache
}

func NewGroupBookingQueries(readStore GroupBookingReadStore, statsCache StatsCache) GroupBookingQueries {
	return &groupBookingQueriesImpl{
		readStore:  readStore,
		statsCache: statsCache,
	}
}

func (q *groupBookingQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*GroupBookingView, error) {
	view, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(view, actorID) {
		return nil, ErrBookingAccess
	}

	view.Stats = q.computeStats(ctx, view)

	if view.OrganizerID != actorID {
		// The code is a join credential; only the organizer sees it.
		view.InviteCode = nil
	}

	return view, nil
}

func (q *groupBookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*GroupBookingView, error) {
	view, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Stats = q.computeStats(ctx, view)
	return view, nil
}

func (q *groupBookingQueriesImpl) Participants(ctx context.Context, actorID, id uuid.UUID) ([]ParticipantView, error) {
	view, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(view, actorID) {
		return nil, ErrBookingAccess
	}

	return view.Participants, nil
}

func (q *groupBookingQueriesImpl) Stats(ctx context.Context, actorID, id uuid.UUID) (*GroupStatsView, error) {
	if cached, err := q.statsCache.Get(ctx, id); err != nil {
		slog.Warn("stats cache read failed", "booking_id", id, "error", err.Error())
	} else if cached != nil {
		view, err := q.findBooking(ctx, id)
		if err != nil {
			return nil, err
		}
		if !canView(view, actorID) {
			return nil, ErrBookingAccess
		}
		return cached, nil
	}

	view, err := q.findBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(view, actorID) {
		return nil, ErrBookingAccess
	}

	return q.computeStats(ctx, view), nil
}

func (q *groupBookingQueriesImpl) findBooking(ctx context.Context, id uuid.UUID) (*GroupBookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *groupBookingQueriesImpl) computeStats(ctx context.Context, view *GroupBookingView) *GroupStatsView {
	stats := &GroupStatsView{
		MaxParticipants: view.MaxParticipants,
		MinParticipants: view.MinParticipants,
	}

	for _, p := range view.Participants {
		switch booking.ParticipantStatus(p.Status) {
		case booking.ParticipantInvited:
			stats.Invited++
		case booking.ParticipantPending:
			stats.Pending++
		case booking.ParticipantAccepted:
			stats.Accepted++
		}
	}

	stats.CurrentParticipants = stats.Invited + stats.Pending + stats.Accepted
	stats.AvailableSpots = view.MaxParticipants - stats.CurrentParticipants
	if stats.AvailableSpots < 0 {
		stats.AvailableSpots = 0
	}
	// Organizer occupies a slot for the minimum-size check only.
	stats.MinimumReached = stats.Accepted+1 >= view.MinParticipants

	counts, err := q.readStore.CountInvitesByStatus(ctx, view.ID)
	if err != nil {
		slog.Warn("invite counting failed", "booking_id", view.ID, "error", err.Error())
	} else {
		stats.InvitesSent = counts.Total
		stats.InvitesPending = counts.Pending
		stats.InvitesAccepted = counts.Accepted
		stats.InvitesDeclined = counts.Declined
	}

	if err := q.statsCache.Set(ctx, view.ID, stats); err != nil {
		slog.Warn("stats cache write failed", "booking_id", view.ID, "error", err.Error())
	}

	return stats
}

func canView(view *GroupBookingView, actorID uuid.UUID) bool {
	if view.IsPublic || view.OrganizerID == actorID {
		return true
	}
	for _, p := range view.Participants {
		if p.UserID == actorID {
			return true
		}
	}
	return false
}
