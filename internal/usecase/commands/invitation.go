package commands

import (
	"context"
	"log/slog"
	"time"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/internal/domain/invite"
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
	ErrInviteNotAllowed   = errs.New("only the organizer or permitted participants can send invitations")
	ErrInviteeNotFound    = errs.New("user not found")
	ErrPendingInvite      = errs.New("user already has a pending invitation to this group")
	ErrInvalidInviteCode  = errs.New("invalid or expired invite code")
	ErrParticipantMissing = errs.New("participant not found in this group")
)

type InvitationCommands interface {
	SendInvitations(ctx context.Context, bookingID uuid.UUID, req reqdto.SendInvitationsRequest, inviterID uuid.UUID) ([]InvitationResult, error)
	Respond(ctx context.Context, bookingID uuid.UUID, req reqdto.RespondInvitationRequest, userID uuid.UUID) error
	JoinByCode(ctx context.Context, code string, userID uuid.UUID) (*queries.GroupBookingView, error)
	RemoveParticipant(ctx context.Context, bookingID, participantID, removerID uuid.UUID) error
	Leave(ctx context.Context, bookingID, userID uuid.UUID) error
}

type invitationCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.GroupBookingQueries
	notifier       Notifier
	statsCache     queries.StatsCache
	inviteTTL      time.Duration
	clock          clock.Clock
}

func NewInvitationCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.GroupBookingQueries,
	notifier Notifier,
	statsCache queries.StatsCache,
	inviteTTL time.Duration,
	clock clock.Clock,
) InvitationCommands {
	if inviteTTL <= 0 {
		inviteTTL = invite.DefaultTTL
	}
	return &invitationCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		statsCache:     statsCache,
		inviteTTL:      inviteTTL,
		clock:          clock,
	}
}

// SendInvitations processes entries independently; one failure never
// aborts the batch.
func (c *invitationCommandsImpl) SendInvitations(
	ctx context.Context,
	bookingID uuid.UUID,
	req reqdto.SendInvitationsRequest,
	inviterID uuid.UUID,
) ([]InvitationResult, error) {
	reads := c.uow.CommandReads()

	snapshot, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snapshot.IsGroup {
		return nil, errs.Mark(booking.ErrNotGroupBooking, ErrInvalidOperation)
	}

	inviterName := c.userName(ctx, reads, inviterID)

	results := make([]InvitationResult, 0, len(req.Invitations))
	sent := false
	for _, entry := range req.Invitations {
		result := c.sendSingle(ctx, bookingID, entry, inviterID, inviterName)
		if result.Success {
			sent = true
		}
		results = append(results, result)
	}

	if sent {
		c.invalidateStats(ctx, bookingID)
	}
	return results, nil
}

func (c *invitationCommandsImpl) sendSingle(
	ctx context.Context,
	bookingID uuid.UUID,
	entry reqdto.InvitationEntry,
	inviterID uuid.UUID,
	inviterName string,
) InvitationResult {
	reads := c.uow.CommandReads()

	invitee, err := c.resolveInvitee(ctx, reads, entry)
	if err != nil {
		return InvitationResult{Email: entry.NormalizedEmail(), UserID: entry.UserID, Success: false, Error: err.Error()}
	}

	result := InvitationResult{Email: invitee.Email, UserID: &invitee.ID}

	var (
		inviteID      uuid.UUID
		groupName     string
		workspaceName string
		organizerID   uuid.UUID
		before, after booking.Stats
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !entity.CanInvite(inviterID) {
			return ErrInviteNotAllowed
		}
		before = entity.ComputeStats()

		rec, err := c.lockPendingInvite(ctx, tx, bookingID, invitee.ID)
		if err != nil {
			return err
		}
		if rec != nil {
			if !rec.IsExpired(c.clock.Now()) {
				return ErrPendingInvite
			}
			// A lapsed invite no longer blocks: retire it and release
			// the stale reservation before issuing a fresh one.
			if err := rec.Expire(c.clock.Now()); err != nil {
				return errs.Mark(err, ErrInvalidOperation)
			}
			if err := tx.Invites().UpdateStatus(ctx, tx.DB(), rec.ID(), rec.Status(), rec.RespondedAt()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if _, err := entity.Remove(invitee.ID, c.clock.Now()); err == nil {
				if err := tx.Bookings().RemoveParticipant(ctx, tx.DB(), bookingID, invitee.ID); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
		}

		p, err := entity.Invite(invitee.ID, inviterID, c.clock.Now())
		if err != nil {
			return markDomainError(err)
		}

		if err := tx.Bookings().AddParticipant(ctx, tx.DB(), bookingID, p, entity.Capacity().Max()); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(booking.ErrGroupFull, ErrGroupFull)
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(booking.ErrAlreadyMember, ErrInvalidOperation)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		record, err := invite.NewGroupInvite(bookingID, inviterID, invitee.ID, invitee.Email, entry.Message(), c.inviteTTL, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		inviteID, err = tx.Invites().Create(ctx, tx.DB(), record)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		groupName = entity.GroupName().String()
		workspaceName = entity.Workspace().Name
		organizerID = entity.OrganizerID()
		after = entity.ComputeStats()
		return nil
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.InviteID = &inviteID

	notify(ctx, c.notifier, NotificationEvent{
		RecipientID:   invitee.ID,
		Action:        notification.ActionInvited,
		ActorName:     inviterName,
		GroupName:     groupName,
		WorkspaceName: workspaceName,
		Detail:        entry.Message(),
		BookingID:     bookingID,
	})
	c.notifyThresholds(ctx, before, after, organizerID, groupName, bookingID)
	return result
}

func (c *invitationCommandsImpl) resolveInvitee(
	ctx context.Context,
	reads shared.CommandReads,
	entry reqdto.InvitationEntry,
) (*shared.UserSnapshot, error) {
	var (
		snapshot *shared.UserSnapshot
		err      error
	)
	switch {
	case entry.UserID != nil:
		snapshot, err = reads.UserByID(ctx, *entry.UserID)
	case entry.NormalizedEmail() != "":
		snapshot, err = reads.UserByEmail(ctx, entry.NormalizedEmail())
	default:
		return nil, errs.Mark(errs.New("invitation needs a user id or an email"), ErrDomainValidation)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInviteeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (c *invitationCommandsImpl) Respond(
	ctx context.Context,
	bookingID uuid.UUID,
	req reqdto.RespondInvitationRequest,
	userID uuid.UUID,
) error {
	var (
		organizerID   uuid.UUID
		groupName     string
		before, after booking.Stats
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		before = entity.ComputeStats()

		now := c.clock.Now()
		p, removed, err := entity.Respond(userID, req.Accepted(), now)
		if err != nil {
			return markDomainError(err)
		}

		if removed {
			if err := tx.Bookings().RemoveParticipant(ctx, tx.DB(), bookingID, userID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		} else {
			if err := tx.Bookings().UpdateParticipant(ctx, tx.DB(), bookingID, p); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := c.resolveSiblingInvite(ctx, tx, bookingID, userID, req.Accepted(), now); err != nil {
			return err
		}

		organizerID = entity.OrganizerID()
		groupName = entity.GroupName().String()
		after = entity.ComputeStats()
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateStats(ctx, bookingID)

	action := notification.ActionAccepted
	if !req.Accepted() {
		action = notification.ActionDeclined
	}
	notify(ctx, c.notifier, NotificationEvent{
		RecipientID: organizerID,
		Action:      action,
		ActorName:   c.userName(ctx, c.uow.CommandReads(), userID),
		GroupName:   groupName,
		Detail:      req.TrimmedMessage(),
		BookingID:   bookingID,
	})
	c.notifyThresholds(ctx, before, after, organizerID, groupName, bookingID)
	return nil
}

// resolveSiblingInvite transitions the GroupInvite record paired with a
// participant response, through the entity so a lapsed invite refuses
// the response. A missing record is fine: the entry may come from
// join-by-code.
func (c *invitationCommandsImpl) resolveSiblingInvite(
	ctx context.Context,
	tx shared.Tx,
	bookingID, inviteeID uuid.UUID,
	accepted bool,
	now time.Time,
) error {
	rec, err := c.lockPendingInvite(ctx, tx, bookingID, inviteeID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	if accepted {
		err = rec.Accept(now)
	} else {
		err = rec.Decline(now)
	}
	if err != nil {
		return errs.Mark(err, ErrInvalidOperation)
	}
	if err := tx.Invites().UpdateStatus(ctx, tx.DB(), rec.ID(), rec.Status(), rec.RespondedAt()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *invitationCommandsImpl) JoinByCode(ctx context.Context, code string, userID uuid.UUID) (*queries.GroupBookingView, error) {
	var (
		bookingID     uuid.UUID
		organizerID   uuid.UUID
		groupName     string
		pending       bool
		before, after booking.Stats
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().LockByInviteCode(ctx, tx.DB(), code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidInviteCode
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		before = entity.ComputeStats()

		p, err := entity.JoinByCode(userID, c.clock.Now())
		if err != nil {
			return markDomainError(err)
		}

		if err := tx.Bookings().AddParticipant(ctx, tx.DB(), entity.ID(), p, entity.Capacity().Max()); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return errs.Mark(booking.ErrGroupFull, ErrGroupFull)
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(booking.ErrAlreadyMember, ErrInvalidOperation)
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		bookingID = entity.ID()
		organizerID = entity.OrganizerID()
		groupName = entity.GroupName().String()
		pending = p.Status == booking.ParticipantPending
		after = entity.ComputeStats()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidateStats(ctx, bookingID)

	action := notification.ActionJoined
	if pending {
		action = notification.ActionRequestedToJoin
	}
	notify(ctx, c.notifier, NotificationEvent{
		RecipientID: organizerID,
		Action:      action,
		ActorName:   c.userName(ctx, c.uow.CommandReads(), userID),
		GroupName:   groupName,
		BookingID:   bookingID,
	})
	c.notifyThresholds(ctx, before, after, organizerID, groupName, bookingID)

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

func (c *invitationCommandsImpl) RemoveParticipant(ctx context.Context, bookingID, participantID, removerID uuid.UUID) error {
	var (
		groupName     string
		workspaceName string
		organizerID   uuid.UUID
		before, after booking.Stats
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !entity.IsOrganizer(removerID) {
			return ErrNotOrganizer
		}
		before = entity.ComputeStats()

		now := c.clock.Now()
		if _, err := entity.Remove(participantID, now); err != nil {
			return errs.Mark(err, ErrParticipantMissing)
		}

		if err := tx.Bookings().RemoveParticipant(ctx, tx.DB(), bookingID, participantID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.cancelSiblingInvite(ctx, tx, bookingID, participantID, now); err != nil {
			return err
		}

		groupName = entity.GroupName().String()
		workspaceName = entity.Workspace().Name
		organizerID = entity.OrganizerID()
		after = entity.ComputeStats()
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateStats(ctx, bookingID)
	notify(ctx, c.notifier, NotificationEvent{
		RecipientID:   participantID,
		Action:        notification.ActionRemoved,
		GroupName:     groupName,
		WorkspaceName: workspaceName,
		BookingID:     bookingID,
	})
	c.notifyThresholds(ctx, before, after, organizerID, groupName, bookingID)
	return nil
}

func (c *invitationCommandsImpl) Leave(ctx context.Context, bookingID, userID uuid.UUID) error {
	var (
		organizerID   uuid.UUID
		groupName     string
		before, after booking.Stats
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		before = entity.ComputeStats()

		now := c.clock.Now()
		if _, err := entity.Leave(userID, now); err != nil {
			return markDomainError(err)
		}

		if err := tx.Bookings().RemoveParticipant(ctx, tx.DB(), bookingID, userID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := c.cancelSiblingInvite(ctx, tx, bookingID, userID, now); err != nil {
			return err
		}

		organizerID = entity.OrganizerID()
		groupName = entity.GroupName().String()
		after = entity.ComputeStats()
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateStats(ctx, bookingID)
	notify(ctx, c.notifier, NotificationEvent{
		RecipientID: organizerID,
		Action:      notification.ActionLeft,
		ActorName:   c.userName(ctx, c.uow.CommandReads(), userID),
		GroupName:   groupName,
		BookingID:   bookingID,
	})
	c.notifyThresholds(ctx, before, after, organizerID, groupName, bookingID)
	return nil
}

// cancelSiblingInvite retires the pending invite left behind when a
// participant is removed. Expired invites are still cancelled for
// bookkeeping.
func (c *invitationCommandsImpl) cancelSiblingInvite(ctx context.Context, tx shared.Tx, bookingID, inviteeID uuid.UUID, now time.Time) error {
	rec, err := c.lockPendingInvite(ctx, tx, bookingID, inviteeID)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}
	if err := rec.Cancel(now); err != nil {
		return errs.Mark(err, ErrInvalidOperation)
	}
	if err := tx.Invites().UpdateStatus(ctx, tx.DB(), rec.ID(), rec.Status(), rec.RespondedAt()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// lockPendingInvite loads the pending invite for the pair FOR UPDATE.
// nil without error means no pending invite links the pair.
func (c *invitationCommandsImpl) lockPendingInvite(ctx context.Context, tx shared.Tx, bookingID, inviteeID uuid.UUID) (*invite.GroupInvite, error) {
	snapshot, err := tx.Reads().PendingInviteByBookingAndInvitee(ctx, bookingID, inviteeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	rec, err := tx.Invites().LockByID(ctx, tx.DB(), snapshot.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rec, nil
}

// notifyThresholds tells the organizer when a membership change crosses
// a capacity bound. Crossings are computed from the stats before and
// after the mutation so repeats at the same level stay silent.
func (c *invitationCommandsImpl) notifyThresholds(ctx context.Context, before, after booking.Stats, organizerID uuid.UUID, groupName string, bookingID uuid.UUID) {
	if !before.MinimumReached && after.MinimumReached {
		notify(ctx, c.notifier, NotificationEvent{
			RecipientID: organizerID,
			Action:      notification.ActionMinimumReached,
			GroupName:   groupName,
			BookingID:   bookingID,
		})
	}
	if before.MinimumReached && !after.MinimumReached {
		notify(ctx, c.notifier, NotificationEvent{
			RecipientID: organizerID,
			Action:      notification.ActionBelowMinimum,
			GroupName:   groupName,
			BookingID:   bookingID,
		})
	}
	if before.AvailableSpots > 0 && after.AvailableSpots == 0 {
		notify(ctx, c.notifier, NotificationEvent{
			RecipientID: organizerID,
			Action:      notification.ActionMaximumReached,
			GroupName:   groupName,
			BookingID:   bookingID,
		})
	}
}

func (c *invitationCommandsImpl) lockBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.GroupBooking, error) {
	entity, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *invitationCommandsImpl) userName(ctx context.Context, reads shared.CommandReads, id uuid.UUID) string {
	snapshot, err := reads.UserByID(ctx, id)
	if err != nil {
		slog.Warn("user lookup for notification failed", "user_id", id, "error", err.Error())
		return "A member"
	}
	return snapshot.Name
}

func (c *invitationCommandsImpl) invalidateStats(ctx context.Context, bookingID uuid.UUID) {
	if err := c.statsCache.Invalidate(ctx, bookingID); err != nil {
		slog.Warn("stats cache invalidation failed", "booking_id", bookingID, "error", err.Error())
	}
}
