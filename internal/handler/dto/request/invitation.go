package request

import (
	"strings"

	"github.com/google/uuid"
)

type InvitationEntry struct {
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Email           *string    `json:"email,omitempty" binding:"omitempty,email"`
	PersonalMessage *string    `json:"personal_message,omitempty"`
}

func (e InvitationEntry) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(deref(e.Email)))
}

func (e InvitationEntry) Message() string {
	return strings.TrimSpace(deref(e.PersonalMessage))
}

type SendInvitationsRequest struct {
	Invitations []InvitationEntry `json:"invitations" binding:"required,min=1,max=20,dive"`
}

type RespondInvitationRequest struct {
	Response string  `json:"response" binding:"required,oneof=accepted declined"`
	Message  *string `json:"message,omitempty"`
}

func (r RespondInvitationRequest) Accepted() bool {
	return r.Response == "accepted"
}

func (r RespondInvitationRequest) TrimmedMessage() string {
	return strings.TrimSpace(deref(r.Message))
}
