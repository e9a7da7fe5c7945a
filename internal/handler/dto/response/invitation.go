package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"nomaddesk/internal/usecase/commands"
	"nomaddesk/internal/usecase/queries"
)

type InvitationResponse struct {
	ID              uuid.UUID  `json:"id"`
	BookingID       uuid.UUID  `json:"booking_id"`
	GroupName       string     `json:"group_name"`
	WorkspaceName   string     `json:"workspace_name"`
	InviterID       uuid.UUID  `json:"inviter_id"`
	InviterName     string     `json:"inviter_name"`
	InviteeID       uuid.UUID  `json:"invitee_id"`
	InviteeEmail    string     `json:"invitee_email"`
	Status          string     `json:"status"`
	PersonalMessage *string    `json:"personal_message,omitempty"`
	ExpiresAt       time.Time  `json:"expires_at"`
	ViewedAt        *time.Time `json:"viewed_at,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SendInvitationsResponse struct {
	Results []commands.InvitationResult `json:"results"`
	Sent    int                         `json:"sent"`
	Failed  int                         `json:"failed"`
}

func FromInviteView(v *queries.InviteView) *InvitationResponse {
	var resp InvitationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromInviteViews(views []*queries.InviteView) []InvitationResponse {
	resp := make([]InvitationResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromInvitationResults(results []commands.InvitationResult) *SendInvitationsResponse {
	resp := &SendInvitationsResponse{Results: results}
	for _, r := range results {
		if r.Success {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	if resp.Results == nil {
		resp.Results = []commands.InvitationResult{}
	}
	return resp
}
