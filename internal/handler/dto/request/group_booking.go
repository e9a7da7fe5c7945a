package request

import (
	"strings"
	"time"

	"nomaddesk/internal/domain/booking"

	"github.com/google/uuid"
)

type GroupSettingsPayload struct {
	AllowParticipantInvites *bool `json:"allow_participant_invites,omitempty"`
	RequireApproval         *bool `json:"require_approval,omitempty"`
	SendReminders           *bool `json:"send_reminders,omitempty"`
}

func (p *GroupSettingsPayload) toDomain(base booking.GroupSettings) booking.GroupSettings {
	if p == nil {
		return base
	}
	if p.AllowParticipantInvites != nil {
		base.AllowParticipantInvites = *p.AllowParticipantInvites
	}
	if p.RequireApproval != nil {
		base.RequireApproval = *p.RequireApproval
	}
	if p.SendReminders != nil {
		base.SendReminders = *p.SendReminders
	}
	return base
}

type CreateGroupBookingRequest struct {
	WorkspaceID      uuid.UUID             `json:"workspace_id" binding:"required"`
	WorkspaceName    string                `json:"workspace_name" binding:"required"`
	WorkspaceAddress string                `json:"workspace_address" binding:"required"`
	WorkspaceType    *string               `json:"workspace_type,omitempty"`
	WorkspacePhoto   *string               `json:"workspace_photo,omitempty"`
	Date             time.Time             `json:"date" binding:"required"`
	StartTime        string                `json:"start_time" binding:"required"`
	EndTime          string                `json:"end_time" binding:"required"`
	RoomType         string                `json:"room_type" binding:"required"`
	NumberOfPeople   *int                  `json:"number_of_people,omitempty"`
	GroupName        string                `json:"group_name" binding:"required"`
	GroupDescription *string               `json:"group_description,omitempty"`
	MaxParticipants  *int                  `json:"max_participants,omitempty"`
	MinParticipants  *int                  `json:"min_participants,omitempty"`
	IsPublic         *bool                 `json:"is_public,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	SpecialRequests  *string               `json:"special_requests,omitempty"`
	GroupSettings    *GroupSettingsPayload `json:"group_settings,omitempty"`
}

func (r CreateGroupBookingRequest) ToDomain(organizerID uuid.UUID, inviteCode string, now time.Time) (*booking.GroupBooking, error) {
	workspace, err := booking.NewWorkspaceSnapshot(
		r.WorkspaceID,
		r.WorkspaceName,
		r.WorkspaceAddress,
		deref(r.WorkspaceType),
		deref(r.WorkspacePhoto),
	)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewTimeSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}

	name, err := booking.NewGroupName(r.GroupName)
	if err != nil {
		return nil, err
	}

	description, err := booking.NewGroupDescription(deref(r.GroupDescription))
	if err != nil {
		return nil, err
	}

	capacity := booking.DefaultCapacity()
	if r.MaxParticipants != nil || r.MinParticipants != nil {
		minP := capacity.Min()
		maxP := capacity.Max()
		if r.MinParticipants != nil {
			minP = *r.MinParticipants
		}
		if r.MaxParticipants != nil {
			maxP = *r.MaxParticipants
		}
		capacity, err = booking.NewCapacity(minP, maxP)
		if err != nil {
			return nil, err
		}
	}

	tags, err := booking.NewTags(r.Tags)
	if err != nil {
		return nil, err
	}

	numPeople := 1
	if r.NumberOfPeople != nil {
		numPeople = *r.NumberOfPeople
	}

	isPublic := false
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}

	return booking.NewGroupBooking(
		organizerID,
		workspace,
		slot,
		r.RoomType,
		numPeople,
		name,
		description,
		capacity,
		isPublic,
		tags,
		r.GroupSettings.toDomain(booking.DefaultGroupSettings()),
		deref(r.SpecialRequests),
		inviteCode,
		now,
	)
}

type UpdateGroupBookingRequest struct {
	GroupName        *string               `json:"group_name,omitempty"`
	GroupDescription *string               `json:"group_description,omitempty"`
	MaxParticipants  *int                  `json:"max_participants,omitempty"`
	MinParticipants  *int                  `json:"min_participants,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	GroupSettings    *GroupSettingsPayload `json:"group_settings,omitempty"`
	SpecialRequests  *string               `json:"special_requests,omitempty"`
}

// ToDomain builds the allow-listed field set. Capacity bounds merge
// with the current ones so either bound may be changed alone.
func (r UpdateGroupBookingRequest) ToDomain(current booking.Capacity, currentSettings booking.GroupSettings) (booking.GroupUpdate, error) {
	var u booking.GroupUpdate

	if r.GroupName != nil {
		name, err := booking.NewGroupName(*r.GroupName)
		if err != nil {
			return booking.GroupUpdate{}, err
		}
		u.GroupName = &name
	}

	if r.GroupDescription != nil {
		description, err := booking.NewGroupDescription(*r.GroupDescription)
		if err != nil {
			return booking.GroupUpdate{}, err
		}
		u.Description = &description
	}

	if r.MaxParticipants != nil || r.MinParticipants != nil {
		minP := current.Min()
		maxP := current.Max()
		if r.MinParticipants != nil {
			minP = *r.MinParticipants
		}
		if r.MaxParticipants != nil {
			maxP = *r.MaxParticipants
		}
		capacity, err := booking.NewCapacity(minP, maxP)
		if err != nil {
			return booking.GroupUpdate{}, err
		}
		u.Capacity = &capacity
	}

	if r.Tags != nil {
		tags, err := booking.NewTags(r.Tags)
		if err != nil {
			return booking.GroupUpdate{}, err
		}
		u.Tags = &tags
	}

	if r.GroupSettings != nil {
		settings := r.GroupSettings.toDomain(currentSettings)
		u.Settings = &settings
	}

	if r.SpecialRequests != nil {
		u.SpecialRequests = r.SpecialRequests
	}

	return u, nil
}

type CancelGroupBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelGroupBookingRequest) ReasonOrEmpty() string {
	return strings.TrimSpace(deref(r.Reason))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
