package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotGroupBooking      = errors.New("booking is not a group booking")
	ErrNotOrganizer         = errors.New("only the organizer may perform this operation")
	ErrOrganizerInvite      = errors.New("the organizer cannot be invited to their own group")
	ErrOrganizerCannotJoin  = errors.New("the organizer cannot join their own group")
	ErrOrganizerCannotLeave = errors.New("the organizer cannot leave their own group; cancel it instead")
	ErrAlreadyMember        = errors.New("user is already a member of this group")
	ErrAlreadyInvited       = errors.New("user already has a pending invitation to this group")
	ErrParticipantNotFound  = errors.New("participant not found in this group")
	ErrGroupFull            = errors.New("this group is at maximum capacity")
	ErrNotJoinable          = errors.New("this group is not open for joining")
	ErrAlreadyCancelled     = errors.New("booking is already cancelled")
	ErrCapacityBelowCurrent = errors.New("max participants cannot be set below the current participant count")
	ErrMissingRoomType      = errors.New("room type is required")
)

// GroupBooking is the aggregate root for a shared reservation: an
// organizer, a participant list with its invitation lifecycle and the
// capacity bounds enforced on every mutation.
type GroupBooking struct {
	id              uuid.UUID
	workspace       WorkspaceSnapshot
	slot            TimeSlot
	roomType        string
	numPeople       int
	status          Status
	organizerID     uuid.UUID
	groupName       GroupName
	description     GroupDescription
	capacity        Capacity
	inviteCode      string
	isPublic        bool
	tags            Tags
	settings        GroupSettings
	specialRequests string
	participants    []Participant
	cancelReason    string
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewGroupBooking(
	organizerID uuid.UUID,
	workspace WorkspaceSnapshot,
	slot TimeSlot,
	roomType string,
	numPeople int,
	groupName GroupName,
	description GroupDescription,
	capacity Capacity,
	isPublic bool,
	tags Tags,
	settings GroupSettings,
	specialRequests string,
	inviteCode string,
	now time.Time,
) (*GroupBooking, error) {
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrMissingRoomType
	}
	if numPeople < 1 {
		numPeople = 1
	}

	return &GroupBooking{
		id:              uuid.New(),
		workspace:       workspace,
		slot:            slot,
		roomType:        roomType,
		numPeople:       numPeople,
		status:          StatusConfirmed, // group bookings are auto-confirmed
		organizerID:     organizerID,
		groupName:       groupName,
		description:     description,
		capacity:        capacity,
		inviteCode:      inviteCode,
		isPublic:        isPublic,
		tags:            tags,
		settings:        settings,
		specialRequests: strings.TrimSpace(specialRequests),
		participants:    nil,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructGroupBooking(
	id uuid.UUID,
	workspace WorkspaceSnapshot,
	slot TimeSlot,
	roomType string,
	numPeople int,
	status Status,
	organizerID uuid.UUID,
	groupName GroupName,
	description GroupDescription,
	capacity Capacity,
	inviteCode string,
	isPublic bool,
	tags Tags,
	settings GroupSettings,
	specialRequests string,
	participants []Participant,
	cancelReason string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *GroupBooking {
	return &GroupBooking{
		id:              id,
		workspace:       workspace,
		slot:            slot,
		roomType:        roomType,
		numPeople:       numPeople,
		status:          status,
		organizerID:     organizerID,
		groupName:       groupName,
		description:     description,
		capacity:        capacity,
		inviteCode:      inviteCode,
		isPublic:        isPublic,
		tags:            tags,
		settings:        settings,
		specialRequests: specialRequests,
		participants:    participants,
		cancelReason:    cancelReason,
		cancelledAt:     cancelledAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *GroupBooking) ID() uuid.UUID                 { return b.id }
func (b *GroupBooking) Workspace() WorkspaceSnapshot  { return b.workspace }
func (b *GroupBooking) Slot() TimeSlot                { return b.slot }
func (b *GroupBooking) RoomType() string              { return b.roomType }
func (b *GroupBooking) NumPeople() int                { return b.numPeople }
func (b *GroupBooking) Status() Status                { return b.status }
func (b *GroupBooking) OrganizerID() uuid.UUID        { return b.organizerID }
func (b *GroupBooking) GroupName() GroupName          { return b.groupName }
func (b *GroupBooking) Description() GroupDescription { return b.description }
func (b *GroupBooking) Capacity() Capacity            { return b.capacity }
func (b *GroupBooking) InviteCode() string            { return b.inviteCode }
func (b *GroupBooking) IsPublic() bool                { return b.isPublic }
func (b *GroupBooking) Tags() Tags                    { return b.tags }
func (b *GroupBooking) Settings() GroupSettings       { return b.settings }
func (b *GroupBooking) SpecialRequests() string       { return b.specialRequests }
func (b *GroupBooking) CancelReason() string          { return b.cancelReason }
func (b *GroupBooking) CancelledAt() *time.Time       { return b.cancelledAt }
func (b *GroupBooking) CreatedAt() time.Time          { return b.createdAt }
func (b *GroupBooking) UpdatedAt() time.Time          { return b.updatedAt }

func (b *GroupBooking) Participants() []Participant {
	out := make([]Participant, len(b.participants))
	copy(out, b.participants)
	return out
}

func (b *GroupBooking) IsOrganizer(userID uuid.UUID) bool {
	return b.organizerID == userID
}

func (b *GroupBooking) FindParticipant(userID uuid.UUID) (Participant, bool) {
	for _, p := range b.participants {
		if p.UserID == userID {
			return p, true
		}
	}
	return Participant{}, false
}

// ReservedCount counts invited + pending + accepted entries, the
// conservative reading of "current participants".
func (b *GroupBooking) ReservedCount() int {
	n := 0
	for _, p := range b.participants {
		if p.Status.ReservesSlot() {
			n++
		}
	}
	return n
}

func (b *GroupBooking) AvailableSpots() int {
	spots := b.capacity.Max() - b.ReservedCount()
	if spots < 0 {
		return 0
	}
	return spots
}

func (b *GroupBooking) HasCapacity() bool {
	return b.ReservedCount() < b.capacity.Max()
}

// CanInvite: the organizer always may; participants only when the group
// settings allow it and the inviter actually belongs to the group.
func (b *GroupBooking) CanInvite(inviterID uuid.UUID) bool {
	if b.IsOrganizer(inviterID) {
		return true
	}
	if !b.settings.AllowParticipantInvites {
		return false
	}
	_, ok := b.FindParticipant(inviterID)
	return ok
}

// Invite appends an invited entry after the eligibility checks that
// belong to the participant list itself.
func (b *GroupBooking) Invite(targetID, inviterID uuid.UUID, now time.Time) (Participant, error) {
	if targetID == b.organizerID {
		return Participant{}, ErrOrganizerInvite
	}
	if _, ok := b.FindParticipant(targetID); ok {
		return Participant{}, ErrAlreadyMember
	}
	if !b.HasCapacity() {
		return Participant{}, ErrGroupFull
	}

	p := NewInvitedParticipant(targetID, inviterID, now)
	b.participants = append(b.participants, p)
	b.touch(now)
	return p, nil
}

// JoinByCode adds a joining user; the resulting status depends on
// whether the group requires organizer approval.
func (b *GroupBooking) JoinByCode(userID uuid.UUID, now time.Time) (Participant, error) {
	if b.status != StatusConfirmed {
		return Participant{}, ErrNotJoinable
	}
	if userID == b.organizerID {
		return Participant{}, ErrOrganizerCannotJoin
	}
	if existing, ok := b.FindParticipant(userID); ok {
		if existing.Status == ParticipantAccepted {
			return Participant{}, ErrAlreadyMember
		}
		return Participant{}, ErrAlreadyInvited
	}
	if !b.HasCapacity() {
		return Participant{}, ErrGroupFull
	}

	p := NewJoinedParticipant(userID, b.settings.RequireApproval, now)
	b.participants = append(b.participants, p)
	b.touch(now)
	return p, nil
}

// Respond resolves an awaiting entry. Declining removes the entry from
// the list entirely; a fresh invite is needed for a repeat attempt.
func (b *GroupBooking) Respond(userID uuid.UUID, accept bool, now time.Time) (Participant, bool, error) {
	idx := -1
	for i, p := range b.participants {
		if p.UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Participant{}, false, ErrParticipantNotFound
	}

	if accept {
		updated, err := b.participants[idx].Accept(now)
		if err != nil {
			return Participant{}, false, err
		}
		b.participants[idx] = updated
		b.touch(now)
		return updated, false, nil
	}

	declined, err := b.participants[idx].Decline(now)
	if err != nil {
		return Participant{}, false, err
	}
	b.participants = append(b.participants[:idx], b.participants[idx+1:]...)
	b.touch(now)
	return declined, true, nil
}

// Remove drops a participant regardless of status. Authorization is the
// caller's concern; the aggregate only guards list membership.
func (b *GroupBooking) Remove(userID uuid.UUID, now time.Time) (Participant, error) {
	for i, p := range b.participants {
		if p.UserID == userID {
			b.participants = append(b.participants[:i], b.participants[i+1:]...)
			b.touch(now)
			return p, nil
		}
	}
	return Participant{}, ErrParticipantNotFound
}

func (b *GroupBooking) Leave(userID uuid.UUID, now time.Time) (Participant, error) {
	if b.IsOrganizer(userID) {
		return Participant{}, ErrOrganizerCannotLeave
	}
	return b.Remove(userID, now)
}

// GroupUpdate carries the organizer-mutable fields; nil means unchanged.
type GroupUpdate struct {
	GroupName       *GroupName
	Description     *GroupDescription
	Capacity        *Capacity
	Tags            *Tags
	Settings        *GroupSettings
	SpecialRequests *string
}

// ApplyUpdate mutates the allow-listed fields and reports which ones
// changed, for the participant notification.
func (b *GroupBooking) ApplyUpdate(u GroupUpdate, now time.Time) ([]string, error) {
	if u.Capacity != nil && u.Capacity.Max() < b.ReservedCount() {
		return nil, ErrCapacityBelowCurrent
	}

	var changed []string
	if u.GroupName != nil && u.GroupName.String() != b.groupName.String() {
		b.groupName = *u.GroupName
		changed = append(changed, "group name")
	}
	if u.Description != nil && u.Description.String() != b.description.String() {
		b.description = *u.Description
		changed = append(changed, "description")
	}
	if u.Capacity != nil && *u.Capacity != b.capacity {
		b.capacity = *u.Capacity
		changed = append(changed, "capacity")
	}
	if u.Tags != nil {
		b.tags = *u.Tags
		changed = append(changed, "tags")
	}
	if u.Settings != nil && *u.Settings != b.settings {
		b.settings = *u.Settings
		changed = append(changed, "group settings")
	}
	if u.SpecialRequests != nil && strings.TrimSpace(*u.SpecialRequests) != b.specialRequests {
		b.specialRequests = strings.TrimSpace(*u.SpecialRequests)
		changed = append(changed, "special requests")
	}

	if len(changed) > 0 {
		b.touch(now)
	}
	return changed, nil
}

func (b *GroupBooking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelReason = strings.TrimSpace(reason)
	t := now
	b.cancelledAt = &t
	b.touch(now)
	return nil
}

// AcceptedParticipants lists the entries that receive group-changed and
// cancellation notifications.
func (b *GroupBooking) AcceptedParticipants() []Participant {
	var out []Participant
	for _, p := range b.participants {
		if p.Status == ParticipantAccepted {
			out = append(out, p)
		}
	}
	return out
}

// Stats is the capacity accounting snapshot for a group booking.
type Stats struct {
	CurrentParticipants int
	AvailableSpots      int
	MaxParticipants     int
	MinParticipants     int
	Invited             int
	Pending             int
	Accepted            int
	MinimumReached      bool
}

func (b *GroupBooking) ComputeStats() Stats {
	s := Stats{
		MaxParticipants: b.capacity.Max(),
		MinParticipants: b.capacity.Min(),
	}
	for _, p := range b.participants {
		switch p.Status {
		case ParticipantInvited:
			s.Invited++
		case ParticipantPending:
			s.Pending++
		case ParticipantAccepted:
			s.Accepted++
		}
	}
	s.CurrentParticipants = s.Invited + s.Pending + s.Accepted
	s.AvailableSpots = b.capacity.Max() - s.CurrentParticipants
	if s.AvailableSpots < 0 {
		s.AvailableSpots = 0
	}
	// The organizer always attends, hence +1.
	s.MinimumReached = s.Accepted+1 >= b.capacity.Min()
	return s
}

func (b *GroupBooking) touch(now time.Time) {
	b.updatedAt = now
}
