//go:build unit || e2e

package builder

import (
	"time"

	dominvite "nomaddesk/internal/domain/invite"
	reqdto "nomaddesk/internal/handler/dto/request"
	"nomaddesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type InviteBuilder struct {
	BookingID       uuid.UUID
	GroupName       string
	WorkspaceName   string
	InviterID       uuid.UUID
	InviterName     string
	InviteeID       uuid.UUID
	InviteeEmail    string
	PersonalMessage string
	TTL             time.Duration
	Now             time.Time
}

func NewInviteBuilder() *InviteBuilder {
	return &InviteBuilder{
		BookingID:       uuid.New(),
		GroupName:       "Design Sync",
		WorkspaceName:   "Harbor Loft",
		InviterID:       uuid.New(),
		InviterName:     "Alice Organizer",
		InviteeID:       uuid.New(),
		InviteeEmail:    "invitee@example.com",
		PersonalMessage: "Join us on Friday!",
		TTL:             dominvite.DefaultTTL,
		Now:             time.Now(),
	}
}

func (b *InviteBuilder) With(mutate func(*InviteBuilder)) *InviteBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *InviteBuilder) BuildDomain() (*dominvite.GroupInvite, error) {
	return dominvite.NewGroupInvite(b.BookingID, b.InviterID, b.InviteeID, b.InviteeEmail, b.PersonalMessage, b.TTL, b.Now)
}

func (b *InviteBuilder) BuildSendRequestDTO() reqdto.SendInvitationsRequest {
	inviteeID := b.InviteeID
	message := b.PersonalMessage
	return reqdto.SendInvitationsRequest{
		Invitations: []reqdto.InvitationEntry{
			{UserID: &inviteeID, PersonalMessage: &message},
		},
	}
}

func (b *InviteBuilder) BuildViewQuery() *queries.InviteView {
	id := uuid.New()
	message := b.PersonalMessage
	return &queries.InviteView{
		ID:              id,
		BookingID:       b.BookingID,
		GroupName:       b.GroupName,
		WorkspaceName:   b.WorkspaceName,
		InviterID:       b.InviterID,
		InviterName:     b.InviterName,
		InviteeID:       b.InviteeID,
		InviteeEmail:    b.InviteeEmail,
		Status:          "pending",
		PersonalMessage: &message,
		ExpiresAt:       b.Now.Add(b.TTL),
		CreatedAt:       b.Now,
	}
}

// Fluent builder methods
func (b *InviteBuilder) WithBookingID(id uuid.UUID) *InviteBuilder {
	b.BookingID = id
	return b
}

func (b *InviteBuilder) WithInviterID(id uuid.UUID) *InviteBuilder {
	b.InviterID = id
	return b
}

func (b *InviteBuilder) WithInviteeID(id uuid.UUID) *InviteBuilder {
	b.InviteeID = id
	return b
}

func (b *InviteBuilder) WithInviteeEmail(email string) *InviteBuilder {
	b.InviteeEmail = email
	return b
}

func (b *InviteBuilder) WithPersonalMessage(message string) *InviteBuilder {
	b.PersonalMessage = message
	return b
}

func (b *InviteBuilder) WithTTL(ttl time.Duration) *InviteBuilder {
	b.TTL = ttl
	return b
}

func (b *InviteBuilder) WithNow(now time.Time) *InviteBuilder {
	b.Now = now
	return b
}
