package invite

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyResolved = errors.New("invitation has already been resolved")
	ErrExpired         = errors.New("invitation has expired")
	ErrMessageTooLong  = errors.New("personal message exceeds maximum length")
)

const (
	MaxMessageLength = 500
	DefaultTTL       = 7 * 24 * time.Hour
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal: a resolved invite is never resurrected; a fresh invite
// must be issued for a repeat attempt.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// GroupInvite records one targeted invitation, separate from the
// participant's in-booking state, with its own lifecycle and expiry.
type GroupInvite struct {
	id              uuid.UUID
	bookingID       uuid.UUID
	inviterID       uuid.UUID
	inviteeID       uuid.UUID
	inviteeEmail    string
	status          Status
	personalMessage string
	expiresAt       time.Time
	viewedAt        *time.Time
	respondedAt     *time.Time
	reminderCount   int
	createdAt       time.Time
	updatedAt       time.Time
}

func NewGroupInvite(bookingID, inviterID, inviteeID uuid.UUID, inviteeEmail, personalMessage string, ttl time.Duration, now time.Time) (*GroupInvite, error) {
	personalMessage = strings.TrimSpace(personalMessage)
	if len(personalMessage) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &GroupInvite{
		id:              uuid.New(),
		bookingID:       bookingID,
		inviterID:       inviterID,
		inviteeID:       inviteeID,
		inviteeEmail:    strings.ToLower(strings.TrimSpace(inviteeEmail)),
		status:          StatusPending,
		personalMessage: personalMessage,
		expiresAt:       now.Add(ttl),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructGroupInvite(
	id, bookingID, inviterID, inviteeID uuid.UUID,
	inviteeEmail string,
	status Status,
	personalMessage string,
	expiresAt time.Time,
	viewedAt, respondedAt *time.Time,
	reminderCount int,
	createdAt, updatedAt time.Time,
) *GroupInvite {
	return &GroupInvite{
		id:              id,
		bookingID:       bookingID,
		inviterID:       inviterID,
		inviteeID:       inviteeID,
		inviteeEmail:    inviteeEmail,
		status:          status,
		personalMessage: personalMessage,
		expiresAt:       expiresAt,
		viewedAt:        viewedAt,
		respondedAt:     respondedAt,
		reminderCount:   reminderCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *GroupInvite) ID() uuid.UUID           { return i.id }
func (i *GroupInvite) BookingID() uuid.UUID    { return i.bookingID }
func (i *GroupInvite) InviterID() uuid.UUID    { return i.inviterID }
func (i *GroupInvite) InviteeID() uuid.UUID    { return i.inviteeID }
func (i *GroupInvite) InviteeEmail() string    { return i.inviteeEmail }
func (i *GroupInvite) Status() Status          { return i.status }
func (i *GroupInvite) PersonalMessage() string { return i.personalMessage }
func (i *GroupInvite) ExpiresAt() time.Time    { return i.expiresAt }
func (i *GroupInvite) ViewedAt() *time.Time    { return i.viewedAt }
func (i *GroupInvite) RespondedAt() *time.Time { return i.respondedAt }
func (i *GroupInvite) ReminderCount() int      { return i.reminderCount }
func (i *GroupInvite) CreatedAt() time.Time    { return i.createdAt }
func (i *GroupInvite) UpdatedAt() time.Time    { return i.updatedAt }

// IsExpired: expiry is evaluated on read; an expired pending invite is
// invalid even if never explicitly responded to.
func (i *GroupInvite) IsExpired(now time.Time) bool {
	return i.status == StatusPending && !now.Before(i.expiresAt)
}

func (i *GroupInvite) IsPending(now time.Time) bool {
	return i.status == StatusPending && now.Before(i.expiresAt)
}

func (i *GroupInvite) resolve(status Status, now time.Time) error {
	if i.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	if i.IsExpired(now) {
		return ErrExpired
	}
	i.status = status
	t := now
	i.respondedAt = &t
	i.updatedAt = now
	return nil
}

func (i *GroupInvite) Accept(now time.Time) error {
	return i.resolve(StatusAccepted, now)
}

func (i *GroupInvite) Decline(now time.Time) error {
	return i.resolve(StatusDeclined, now)
}

// Cancel resolves a pending invite without the invitee's involvement
// (organizer removal, booking cancellation). Expired invites may still
// be cancelled for bookkeeping.
func (i *GroupInvite) Cancel(now time.Time) error {
	if i.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	i.status = StatusCancelled
	i.updatedAt = now
	return nil
}

// Expire marks a lapsed pending invite so it stops blocking fresh
// invitations for the same pair.
func (i *GroupInvite) Expire(now time.Time) error {
	if i.status.IsTerminal() {
		return ErrAlreadyResolved
	}
	i.status = StatusExpired
	i.updatedAt = now
	return nil
}
