package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// ParticipantStatus tracks a participant through the invitation lifecycle.
// Declined entries are pruned from the list, so persisted rows only ever
// hold invited, pending or accepted.
type ParticipantStatus string

const (
	ParticipantInvited  ParticipantStatus = "invited"
	ParticipantPending  ParticipantStatus = "pending"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

func (s ParticipantStatus) String() string {
	return string(s)
}

// ReservesSlot reports whether this status counts against maxParticipants.
func (s ParticipantStatus) ReservesSlot() bool {
	switch s {
	case ParticipantInvited, ParticipantPending, ParticipantAccepted:
		return true
	default:
		return false
	}
}

const (
	DefaultMaxParticipants = 10
	DefaultMinParticipants = 2
	GroupMinParticipants   = 2
)
