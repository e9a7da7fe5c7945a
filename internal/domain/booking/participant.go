package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyResponded = errors.New("invitation has already been responded to")
	ErrInvalidResponse  = errors.New("response must be accepted or declined")
)

// Participant is one entry in a group booking's participant list.
// Lifecycle: invited|pending -> accepted, or removal (decline, organizer
// removal, self-leave). Declined is terminal and never persisted.
type Participant struct {
	UserID      uuid.UUID
	Status      ParticipantStatus
	InvitedAt   time.Time
	RespondedAt *time.Time
	InvitedBy   uuid.UUID
}

func NewInvitedParticipant(userID, invitedBy uuid.UUID, now time.Time) Participant {
	return Participant{
		UserID:    userID,
		Status:    ParticipantInvited,
		InvitedAt: now,
		InvitedBy: invitedBy,
	}
}

func NewJoinedParticipant(userID uuid.UUID, requireApproval bool, now time.Time) Participant {
	status := ParticipantAccepted
	var respondedAt *time.Time
	if requireApproval {
		status = ParticipantPending
	} else {
		t := now
		respondedAt = &t
	}
	return Participant{
		UserID:      userID,
		Status:      status,
		InvitedAt:   now,
		RespondedAt: respondedAt,
		InvitedBy:   userID,
	}
}

// CanRespond reports whether this entry still awaits a response.
func (p Participant) CanRespond() bool {
	return p.Status == ParticipantInvited || p.Status == ParticipantPending
}

// Accept transitions an awaiting entry to accepted.
func (p Participant) Accept(now time.Time) (Participant, error) {
	if !p.CanRespond() {
		return p, ErrAlreadyResponded
	}
	p.Status = ParticipantAccepted
	p.RespondedAt = &now
	return p, nil
}

// Decline marks the terminal declined state. The aggregate prunes the
// entry immediately afterwards, so the result never reaches storage.
func (p Participant) Decline(now time.Time) (Participant, error) {
	if !p.CanRespond() {
		return p, ErrAlreadyResponded
	}
	p.Status = ParticipantDeclined
	p.RespondedAt = &now
	return p, nil
}
