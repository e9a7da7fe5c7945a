package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type WorkspaceView struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Photo   *string   `json:"photo,omitempty"`
	Type    *string   `json:"type,omitempty"`
}

type GroupSettingsView struct {
	AllowParticipantInvites bool `json:"allow_participant_invites"`
	RequireApproval         bool `json:"require_approval"`
	SendReminders           bool `json:"send_reminders"`
}

type GroupBookingView struct {
	ID               uuid.UUID         `json:"id"`
	Workspace        WorkspaceView     `json:"workspace"`
	Date             time.Time         `json:"date"`
	StartTime        string            `json:"start_time"`
	EndTime          string            `json:"end_time"`
	RoomType         string            `json:"room_type"`
	Status           string            `json:"status"`
	OrganizerID      uuid.UUID         `json:"organizer_id"`
	OrganizerName    string            `json:"organizer_name"`
	GroupName        string            `json:"group_name"`
	GroupDescription *string           `json:"group_description,omitempty"`
	MaxParticipants  int               `json:"max_participants"`
	MinParticipants  int               `json:"min_participants"`
	InviteCode       *string           `json:"invite_code,omitempty"`
	IsPublic         bool              `json:"is_public"`
	Tags             []string          `json:"tags,omitempty"`
	Settings         GroupSettingsView `json:"group_settings"`
	SpecialRequests  *string           `json:"special_requests,omitempty"`
	CancelReason     *string           `json:"cancel_reason,omitempty"`
	CancelledAt      *time.Time        `json:"cancelled_at,omitempty"`
	Participants     []ParticipantView `json:"participants"`
	Stats            *GroupStatsView   `json:"stats,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type ParticipantView struct {
	UserID      uuid.UUID  `json:"user_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Avatar      *string    `json:"avatar,omitempty"`
	Status      string     `json:"status"`
	InvitedAt   time.Time  `json:"invited_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	InvitedBy   *uuid.UUID `json:"invited_by,omitempty"`
}

type GroupStatsView struct {
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

type InviteView struct {
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

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Avatar   *string   `json:"avatar,omitempty"`
	IsActive bool      `json:"is_active"`
}

type NotificationView struct {
	ID               uuid.UUID  `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	Read             bool       `json:"read"`
	ActionURL        *string    `json:"action_url,omitempty"`
	ActionText       *string    `json:"action_text,omitempty"`
	RelatedBookingID *uuid.UUID `json:"related_booking_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}
