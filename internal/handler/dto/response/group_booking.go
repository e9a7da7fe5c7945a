package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"nomaddesk/internal/usecase/queries"
)

type WorkspaceResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Photo   *string   `json:"photo,omitempty"`
	Type    *string   `json:"type,omitempty"`
}

type GroupSettingsResponse struct {
	AllowParticipantInvites bool `json:"allow_participant_invites"`
	RequireApproval         bool `json:"require_approval"`
	SendReminders           bool `json:"send_reminders"`
}

type GroupBookingResponse struct {
	ID               uuid.UUID             `json:"id"`
	Workspace        WorkspaceResponse     `json:"workspace"`
	Date             time.Time             `json:"date"`
	StartTime        string                `json:"start_time"`
	EndTime          string                `json:"end_time"`
	RoomType         string                `json:"room_type"`
	Status           string                `json:"status"`
	OrganizerID      uuid.UUID             `json:"organizer_id"`
	OrganizerName    string                `json:"organizer_name"`
	GroupName        string                `json:"group_name"`
	GroupDescription *string               `json:"group_description,omitempty"`
	MaxParticipants  int                   `json:"max_participants"`
	MinParticipants  int                   `json:"min_participants"`
	InviteCode       *string               `json:"invite_code,omitempty"`
	IsPublic         bool                  `json:"is_public"`
	Tags             []string              `json:"tags,omitempty"`
	Settings         GroupSettingsResponse `json:"group_settings"`
	SpecialRequests  *string               `json:"special_requests,omitempty"`
	CancelReason     *string               `json:"cancel_reason,omitempty"`
	CancelledAt      *time.Time            `json:"cancelled_at,omitempty"`
	Participants     []ParticipantResponse `json:"participants"`
	Stats            *GroupStatsResponse   `json:"stats,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type ParticipantResponse struct {
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Avatar      *string    `json:"avatar,omitempty"`
	Status      string     `json:"status"`
	InvitedAt   time.Time  `json:"invited_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	InvitedBy   *uuid.UUID `json:"invited_by,omitempty"`
}

type GroupStatsResponse struct {
	CurrentParticipants int  `json:"current_participants"`
	AvailableSpots      int  `json:"available_spots"`
	MaxParticipants     int  `json:"max_participants"`
	MinParticipants     int  `json:"min_participants"`
	Invited             int  `json:"invited"`
	Pending             int  `json:"pending"`
	Accepted            int  `json:"accepted"`
	MinimumReached      bool `json:"minimum_reached"`
	InvitesSent         int  `json:"invites_sent"`
	InvitesPending      int  `json:"invites_pending"`
	InvitesAccepted     int  `json:"invites_accepted"`
	InvitesDeclined     int  `json:"invites_declined"`
}

func FromGroupBookingView(v *queries.GroupBookingView) *GroupBookingResponse {
	var resp GroupBookingResponse
	_ = copier.Copy(&resp, v)
	if resp.Participants == nil {
		resp.Participants = []ParticipantResponse{}
	}
	return &resp
}

func FromParticipantViews(views []queries.ParticipantView) []ParticipantResponse {
	resp := make([]ParticipantResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromGroupStatsView(v *queries.GroupStatsView) *GroupStatsResponse {
	var resp GroupStatsResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
