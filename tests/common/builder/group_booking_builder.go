//go:build unit || e2e

package builder

import (
	"time"

	dombooking "nomaddesk/internal/domain/booking"
	reqdto "nomaddesk/internal/handler/dto/request"
	"nomaddesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type GroupBookingBuilder struct {
	OrganizerID      uuid.UUID
	OrganizerName    string
	WorkspaceID      uuid.UUID
	WorkspaceName    string
	WorkspaceAddress string
	WorkspaceType    string
	WorkspacePhoto   string
	Date             time.Time
	StartTime        string
	EndTime          string
	RoomType         string
	NumPeople        int
	GroupName        string
	GroupDescription string
	MinParticipants  int
	MaxParticipants  int
	IsPublic         bool
	Tags             []string
	Settings         dombooking.GroupSettings
	SpecialRequests  string
	InviteCode       string
	Now              time.Time
}

func NewGroupBookingBuilder() *GroupBookingBuilder {
	now := time.Now()
	return &GroupBookingBuilder{
		OrganizerID:      uuid.New(),
		OrganizerName:    "Alice Organizer",
		WorkspaceID:      uuid.New(),
		WorkspaceName:    "Harbor Loft",
		WorkspaceAddress: "12 Pier Road, Lisbon",
		WorkspaceType:    "coworking",
		WorkspacePhoto:   "https://example.com/loft.jpg",
		Date:             now.AddDate(0, 0, 1),
		StartTime:        "10:00",
		EndTime:          "12:00",
		RoomType:         "meeting-room",
		NumPeople:        4,
		GroupName:        "Design Sync",
		GroupDescription: "Weekly design review session",
		MinParticipants:  2,
		MaxParticipants:  10,
		IsPublic:         true,
		Tags:             []string{"design", "weekly"},
		Settings:         dombooking.DefaultGroupSettings(),
		SpecialRequests:  "",
		InviteCode:       "ABCD1234",
		Now:              now,
	}
}

func (b *GroupBookingBuilder) With(mutate func(*GroupBookingBuilder)) *GroupBookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *GroupBookingBuilder) BuildDomain() (*dombooking.GroupBooking, error) {
	workspace, err := dombooking.NewWorkspaceSnapshot(b.WorkspaceID, b.WorkspaceName, b.WorkspaceAddress, b.WorkspaceType, b.WorkspacePhoto)
	if err != nil {
		return nil, err
	}
	slot, err := dombooking.NewTimeSlot(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	name, err := dombooking.NewGroupName(b.GroupName)
	if err != nil {
		return nil, err
	}
	description, err := dombooking.NewGroupDescription(b.GroupDescription)
	if err != nil {
		return nil, err
	}
	capacity, err := dombooking.NewCapacity(b.MinParticipants, b.MaxParticipants)
	if err != nil {
		return nil, err
	}
	tags, err := dombooking.NewTags(b.Tags)
	if err != nil {
		return nil, err
	}
	return dombooking.NewGroupBooking(
		b.OrganizerID,
		workspace,
		slot,
		b.RoomType,
		b.NumPeople,
		name,
		description,
		capacity,
		b.IsPublic,
		tags,
		b.Settings,
		b.SpecialRequests,
		b.InviteCode,
		b.Now,
	)
}

func (b *GroupBookingBuilder) BuildCreateRequestDTO() reqdto.CreateGroupBookingRequest {
	numPeople := b.NumPeople
	description := b.GroupDescription
	maxP := b.MaxParticipants
	minP := b.MinParticipants
	isPublic := b.IsPublic
	wsType := b.WorkspaceType
	wsPhoto := b.WorkspacePhoto
	return reqdto.CreateGroupBookingRequest{
		WorkspaceID:      b.WorkspaceID,
		WorkspaceName:    b.WorkspaceName,
		WorkspaceAddress: b.WorkspaceAddress,
		WorkspaceType:    &wsType,
		WorkspacePhoto:   &wsPhoto,
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		RoomType:         b.RoomType,
		NumberOfPeople:   &numPeople,
		GroupName:        b.GroupName,
		GroupDescription: &description,
		MaxParticipants:  &maxP,
		MinParticipants:  &minP,
		IsPublic:         &isPublic,
		Tags:             b.Tags,
	}
}

func (b *GroupBookingBuilder) BuildUpdateRequestDTO() reqdto.UpdateGroupBookingRequest {
	name := b.GroupName
	description := b.GroupDescription
	maxP := b.MaxParticipants
	return reqdto.UpdateGroupBookingRequest{
		GroupName:        &name,
		GroupDescription: &description,
		MaxParticipants:  &maxP,
		Tags:             b.Tags,
	}
}

func (b *GroupBookingBuilder) BuildViewQuery() *queries.GroupBookingView {
	id := uuid.New()
	description := b.GroupDescription
	inviteCode := b.InviteCode
	wsType := b.WorkspaceType
	wsPhoto := b.WorkspacePhoto
	return &queries.GroupBookingView{
		ID: id,
		Workspace: queries.WorkspaceView{
			ID:      b.WorkspaceID,
			Name:    b.WorkspaceName,
			Address: b.WorkspaceAddress,
			Type:    &wsType,
			Photo:   &wsPhoto,
		},
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		RoomType:         b.RoomType,
		Status:           "confirmed",
		OrganizerID:      b.OrganizerID,
		OrganizerName:    b.OrganizerName,
		GroupName:        b.GroupName,
		GroupDescription: &description,
		MaxParticipants:  b.MaxParticipants,
		MinParticipants:  b.MinParticipants,
		InviteCode:       &inviteCode,
		IsPublic:         b.IsPublic,
		Tags:             b.Tags,
		Settings: queries.GroupSettingsView{
			AllowParticipantInvites: b.Settings.AllowParticipantInvites,
			RequireApproval:         b.Settings.RequireApproval,
			SendReminders:           b.Settings.SendReminders,
		},
		Participants: []queries.ParticipantView{},
		CreatedAt:    b.Now,
		UpdatedAt:    b.Now,
	}
}

func (b *GroupBookingBuilder) BuildStatsView() *queries.GroupStatsView {
	return &queries.GroupStatsView{
		CurrentParticipants: 3,
		AvailableSpots:      b.MaxParticipants - 3,
		MaxParticipants:     b.MaxParticipants,
		MinParticipants:     b.MinParticipants,
		Invited:             1,
		Pending:             0,
		Accepted:            2,
		MinimumReached:      true,
		InvitesSent:         3,
		InvitesPending:      1,
		InvitesAccepted:     2,
		InvitesDeclined:     0,
	}
}

// Fluent builder methods
func (b *GroupBookingBuilder) WithOrganizerID(id uuid.UUID) *GroupBookingBuilder {
	b.OrganizerID = id
	return b
}

func (b *GroupBookingBuilder) WithWorkspaceID(id uuid.UUID) *GroupBookingBuilder {
	b.WorkspaceID = id
	return b
}

func (b *GroupBookingBuilder) WithWorkspaceName(name string) *GroupBookingBuilder {
	b.WorkspaceName = name
	return b
}

func (b *GroupBookingBuilder) WithWorkspaceAddress(address string) *GroupBookingBuilder {
	b.WorkspaceAddress = address
	return b
}

func (b *GroupBookingBuilder) WithDate(date time.Time) *GroupBookingBuilder {
	b.Date = date
	return b
}

func (b *GroupBookingBuilder) WithTimes(start, end string) *GroupBookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *GroupBookingBuilder) WithRoomType(roomType string) *GroupBookingBuilder {
	b.RoomType = roomType
	return b
}

func (b *GroupBookingBuilder) WithGroupName(name string) *GroupBookingBuilder {
	b.GroupName = name
	return b
}

func (b *GroupBookingBuilder) WithDescription(description string) *GroupBookingBuilder {
	b.GroupDescription = description
	return b
}

func (b *GroupBookingBuilder) WithCapacity(minP, maxP int) *GroupBookingBuilder {
	b.MinParticipants = minP
	b.MaxParticipants = maxP
	return b
}

func (b *GroupBookingBuilder) WithTags(tags ...string) *GroupBookingBuilder {
	b.Tags = tags
	return b
}

func (b *GroupBookingBuilder) WithSettings(settings dombooking.GroupSettings) *GroupBookingBuilder {
	b.Settings = settings
	return b
}

func (b *GroupBookingBuilder) WithInviteCode(code string) *GroupBookingBuilder {
	b.InviteCode = code
	return b
}

func (b *GroupBookingBuilder) WithNow(now time.Time) *GroupBookingBuilder {
	b.Now = now
	return b
}

func (b *GroupBookingBuilder) AsPrivate() *GroupBookingBuilder {
	b.IsPublic = false
	return b
}

func (b *GroupBookingBuilder) AsApprovalRequired() *GroupBookingBuilder {
	b.Settings.RequireApproval = true
	return b
}

func (b *GroupBookingBuilder) AsParticipantInvitesAllowed() *GroupBookingBuilder {
	b.Settings.AllowParticipantInvites = true
	return b
}
