package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/internal/domain/notification"
	reqdto "nomaddesk/internal/handler/dto/request"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/pkg/clock"
	"nomaddesk/internal/pkg/errs"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound         = errs.New("group booking not found")
	ErrNotOrganizer            = errs.New("only the organizer can perform this operation")
	ErrTimeSlotConflict        = errs.New("time slot is already booked, please choose a different time")
	ErrGroupFull               = errs.New("this group is at maximum capacity")
	ErrInvalidOperation        = errs.New("operation not allowed for this booking")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type GroupBookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateGroupBookingRequest, organizerID uuid.UUID) (*queries.GroupBookingView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGroupBookingRequest, updaterID uuid.UUID) (*queries.GroupBookingView, error)
	Cancel(ctx context.Context, id uuid.UUID, req reqdto.CancelGroupBookingRequest, organizerID uuid.UUID) error
}

type groupBookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.GroupBookingQueries
	notifier       Notifier
	statsCache     queries.StatsCache
	clock          clock.Clock
}

func NewGroupBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.GroupBookingQueries,
	notifier Notifier,
	statsCache queries.StatsCache,
	clock clock.Clock,
) GroupBookingCommands {
	return &groupBookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		statsCache:     statsCache,
		clock:          clock,
	}
}

func (c *groupBookingCommandsImpl) Create(
	ctx context.Context,
	req reqdto.CreateGroupBookingRequest,
	organizerID uuid.UUID,
) (*queries.GroupBookingView, error) {
	reads := c.uow.CommandReads()

	var (
		entity    *booking.GroupBooking
		bookingID uuid.UUID
	)
	// The existence check in issueInviteCode can lose the uniqueness
	// race to a concurrent insert; redraw on a duplicate key.
	for attempt := 0; ; attempt++ {
		code, err := issueInviteCode(ctx, reads, c.clock)
		if err != nil {
			return nil, err
		}

		entity, err = req.ToDomain(organizerID, code, c.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			slot := entity.Slot()
			taken, err := tx.Reads().OverlappingBookingExists(ctx, entity.Workspace().ID, slot.Date(), slot.StartMinutes(), slot.EndMinutes())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if taken {
				return ErrTimeSlotConflict
			}

			bookingID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
			return err
		})
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxCodeAttempts {
			continue
		}
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindDBFailure) {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil, err
	}

	notify(ctx, c.notifier, NotificationEvent{
		RecipientID:   organizerID,
		Action:        notification.ActionBookingConfirmed,
		GroupName:     entity.GroupName().String(),
		WorkspaceName: entity.Workspace().Name,
		BookingID:     bookingID,
	})

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *groupBookingCommandsImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateGroupBookingRequest,
	updaterID uuid.UUID,
) (*queries.GroupBookingView, error) {
	var (
		changed   []string
		recipient []booking.Participant
		groupName string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockGroupBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if !entity.IsOrganizer(updaterID) {
			return ErrNotOrganizer
		}

		update, err := req.ToDomain(entity.Capacity(), entity.Settings())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		changed, err = entity.ApplyUpdate(update, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidOperation)
		}
		if len(changed) == 0 {
			return nil
		}

		if err := tx.Bookings().UpdateGroup(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		recipient = entity.AcceptedParticipants()
		groupName = entity.GroupName().String()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		c.invalidateStats(ctx, id)
		for _, p := range recipient {
			notify(ctx, c.notifier, NotificationEvent{
				RecipientID: p.UserID,
				Action:      notification.ActionUpdated,
				GroupName:   groupName,
				Detail:      strings.Join(changed, ", "),
				BookingID:   id,
			})
		}
	}

	return c.bookingQueries.GetByIDSystem(ctx, id)
}

func (c *groupBookingCommandsImpl) Cancel(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.CancelGroupBookingRequest,
	organizerID uuid.UUID,
) error {
	var (
		recipients    []booking.Participant
		groupName     string
		workspaceName string
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockGroupBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if !entity.IsOrganizer(organizerID) {
			return ErrNotOrganizer
		}

		if err := entity.Cancel(req.ReasonOrEmpty(), c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidOperation)
		}

		if err := tx.Bookings().UpdateGroup(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		cancelled, err := tx.Invites().CancelPendingByBooking(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if cancelled > 0 {
			slog.Info("cascaded invite cancellation", "booking_id", id, "count", cancelled)
		}

		recipients = entity.AcceptedParticipants()
		groupName = entity.GroupName().String()
		workspaceName = entity.Workspace().Name
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateStats(ctx, id)
	for _, p := range recipients {
		notify(ctx, c.notifier, NotificationEvent{
			RecipientID:   p.UserID,
			Action:        notification.ActionCancelled,
			GroupName:     groupName,
			WorkspaceName: workspaceName,
			Detail:        req.ReasonOrEmpty(),
			BookingID:     id,
		})
	}

	return nil
}

func (c *groupBookingCommandsImpl) lockGroupBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.GroupBooking, error) {
	entity, err := tx.Bookings().LockByID(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *groupBookingCommandsImpl) invalidateStats(ctx context.Context, bookingID uuid.UUID) {
	if err := c.statsCache.Invalidate(ctx, bookingID); err != nil {
		slog.Warn("stats cache invalidation failed", "booking_id", bookingID, "error", err.Error())
	}
}

// markDomainError keeps the aggregate's message while attaching the
// command-level sentinel the HTTP layer maps to a status code.
func markDomainError(err error) error {
	switch {
	case errors.Is(err, booking.ErrGroupFull):
		return errs.Mark(err, ErrGroupFull)
	case errors.Is(err, booking.ErrNotOrganizer):
		return errs.Mark(err, ErrNotOrganizer)
	default:
		return errs.Mark(err, ErrInvalidOperation)
	}
}
