//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.GroupBookingBuilder)
	errIs  error
}

func TestNewGroupBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewGroupBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, "Design Sync", actual.GroupName().String())
		assert.Equal(t, 2, actual.Capacity().Min())
		assert.Equal(t, 10, actual.Capacity().Max())
		assert.Empty(t, actual.Participants())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("room type validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing room type",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithRoomType("") },
				errIs:  booking.ErrMissingRoomType,
			},
			{
				name:   "whitespace only room type",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithRoomType("   ") },
				errIs:  booking.ErrMissingRoomType,
			},
		})
	})

	t.Run("group name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty group name",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithGroupName("") },
				errIs:  booking.ErrEmptyGroupName,
			},
			{
				name:   "whitespace only group name",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithGroupName("   ") },
				errIs:  booking.ErrEmptyGroupName,
			},
			{
				name: "maximum length group name",
				mutate: func(b *builder.GroupBookingBuilder) {
					b.WithGroupName(strings.Repeat("a", booking.MaxGroupNameLength))
				},
			},
			{
				name: "group name exceeds maximum length",
				mutate: func(b *builder.GroupBookingBuilder) {
					b.WithGroupName(strings.Repeat("a", booking.MaxGroupNameLength+1))
				},
				errIs: booking.ErrGroupNameTooLong,
			},
		})
	})

	t.Run("description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty description is allowed",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithDescription("") },
			},
			{
				name: "maximum length description",
				mutate: func(b *builder.GroupBookingBuilder) {
					b.WithDescription(strings.Repeat("a", booking.MaxDescriptionLength))
				},
			},
			{
				name: "description exceeds maximum length",
				mutate: func(b *builder.GroupBookingBuilder) {
					b.WithDescription(strings.Repeat("a", booking.MaxDescriptionLength+1))
				},
				errIs: booking.ErrDescriptionTooLong,
			},
		})
	})

	t.Run("capacity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum viable group of two",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithCapacity(2, 2) },
			},
			{
				name:   "min below two",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithCapacity(1, 10) },
				errIs:  booking.ErrGroupTooSmall,
			},
			{
				name:   "max below min",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithCapacity(5, 4) },
				errIs:  booking.ErrInvalidCapacity,
			},
		})
	})

	t.Run("time slot validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start equal to end",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithTimes("10:00", "10:00") },
				errIs:  booking.ErrInvalidTimeSlot,
			},
			{
				name:   "start after end",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithTimes("12:00", "10:00") },
				errIs:  booking.ErrInvalidTimeSlot,
			},
			{
				name:   "malformed start time",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithTimes("25:00", "26:00") },
				errIs:  booking.ErrInvalidTimeFormat,
			},
			{
				name:   "missing date",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithDate(time.Time{}) },
				errIs:  booking.ErrMissingDate,
			},
		})
	})

	t.Run("tags validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "too many tags",
				mutate: func(b *builder.GroupBookingBuilder) {
					tags := make([]string, booking.MaxTags+1)
					for i := range tags {
						tags[i] = "tag"
					}
					b.WithTags(tags...)
				},
				errIs: booking.ErrTooManyTags,
			},
			{
				name: "tag exceeds maximum length",
				mutate: func(b *builder.GroupBookingBuilder) {
					b.WithTags(strings.Repeat("a", booking.MaxTagLength+1))
				},
				errIs: booking.ErrTagTooLong,
			},
			{
				name:   "blank tags are dropped",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithTags("design", "   ", "") },
			},
		})
	})

	t.Run("workspace validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "nil workspace id",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithWorkspaceID(uuid.Nil) },
				errIs:  booking.ErrMissingWorkspace,
			},
			{
				name:   "empty workspace name",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithWorkspaceName("") },
				errIs:  booking.ErrMissingWorkspace,
			},
			{
				name:   "empty workspace address",
				mutate: func(b *builder.GroupBookingBuilder) { b.WithWorkspaceAddress("") },
				errIs:  booking.ErrMissingWorkspace,
			},
		})
	})

	t.Run("number of people defaults to one", func(t *testing.T) {
		b, err := builder.NewGroupBookingBuilder().
			With(func(b *builder.GroupBookingBuilder) { b.NumPeople = 0 }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, 1, b.NumPeople())
	})
}

func TestInvite(t *testing.T) {
	now := time.Now()

	t.Run("appends an invited participant", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		target := uuid.New()

		p, err := b.Invite(target, b.OrganizerID(), now)
		require.NoError(t, err)
		assert.Equal(t, target, p.UserID)
		assert.Equal(t, booking.ParticipantInvited, p.Status)
		assert.Equal(t, b.OrganizerID(), p.InvitedBy)
		assert.Nil(t, p.RespondedAt)
		assert.Len(t, b.Participants(), 1)
	})

	t.Run("organizer cannot be invited", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		_, err := b.Invite(b.OrganizerID(), b.OrganizerID(), now)
		assert.ErrorIs(t, err, booking.ErrOrganizerInvite)
	})

	t.Run("existing member cannot be invited again", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		target := uuid.New()

		_, err := b.Invite(target, b.OrganizerID(), now)
		require.NoError(t, err)

		_, err = b.Invite(target, b.OrganizerID(), now)
		assert.ErrorIs(t, err, booking.ErrAlreadyMember)
	})

	t.Run("rejects invite when group is full", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 2))

		_, err := b.Invite(uuid.New(), b.OrganizerID(), now)
		require.NoError(t, err)
		_, err = b.Invite(uuid.New(), b.OrganizerID(), now)
		require.NoError(t, err)

		_, err = b.Invite(uuid.New(), b.OrganizerID(), now)
		assert.ErrorIs(t, err, booking.ErrGroupFull)
		assert.Equal(t, 0, b.AvailableSpots())
	})

	t.Run("pending entries reserve capacity", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 3))

		_, err := b.Invite(uuid.New(), b.OrganizerID(), now)
		require.NoError(t, err)
		assert.Equal(t, 1, b.ReservedCount())
		assert.Equal(t, 2, b.AvailableSpots())
		assert.True(t, b.HasCapacity())
	})
}

func TestCanInvite(t *testing.T) {
	now := time.Now()

	t.Run("organizer always may invite", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		assert.True(t, b.CanInvite(b.OrganizerID()))
	})

	t.Run("stranger may not invite", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		assert.False(t, b.CanInvite(uuid.New()))
	})

	t.Run("participant may invite only when settings allow", func(t *testing.T) {
		member := uuid.New()

		closed := mustBuild(t, builder.NewGroupBookingBuilder())
		_, err := closed.Invite(member, closed.OrganizerID(), now)
		require.NoError(t, err)
		assert.False(t, closed.CanInvite(member))

		open := mustBuild(t, builder.NewGroupBookingBuilder().AsParticipantInvitesAllowed())
		_, err = open.Invite(member, open.OrganizerID(), now)
		require.NoError(t, err)
		assert.True(t, open.CanInvite(member))
	})
}

func TestJoinByCode(t *testing.T) {
	now := time.Now()

	t.Run("joins as accepted when approval not required", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()

		p, err := b.JoinByCode(userID, now)
		require.NoError(t, err)
		assert.Equal(t, booking.ParticipantAccepted, p.Status)
		require.NotNil(t, p.RespondedAt)
		assert.Equal(t, userID, p.InvitedBy)
	})

	t.Run("joins as pending when approval required", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().AsApprovalRequired())

		p, err := b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, booking.ParticipantPending, p.Status)
		assert.Nil(t, p.RespondedAt)
	})

	t.Run("organizer cannot join own group", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		_, err := b.JoinByCode(b.OrganizerID(), now)
		assert.ErrorIs(t, err, booking.ErrOrganizerCannotJoin)
	})

	t.Run("cancelled booking is not joinable", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		require.NoError(t, b.Cancel("change of plans", now))

		_, err := b.JoinByCode(uuid.New(), now)
		assert.ErrorIs(t, err, booking.ErrNotJoinable)
	})

	t.Run("accepted member cannot join twice", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()

		_, err := b.JoinByCode(userID, now)
		require.NoError(t, err)

		_, err = b.JoinByCode(userID, now)
		assert.ErrorIs(t, err, booking.ErrAlreadyMember)
	})

	t.Run("invited user must respond instead of joining", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()

		_, err := b.Invite(userID, b.OrganizerID(), now)
		require.NoError(t, err)

		_, err = b.JoinByCode(userID, now)
		assert.ErrorIs(t, err, booking.ErrAlreadyInvited)
	})

	t.Run("rejects join when group is full", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 2))

		_, err := b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)
		_, err = b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)

		_, err = b.JoinByCode(uuid.New(), now)
		assert.ErrorIs(t, err, booking.ErrGroupFull)
	})
}

func TestRespond(t *testing.T) {
	now := time.Now()

	t.Run("accept transitions invited to accepted", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()
		_, err := b.Invite(userID, b.OrganizerID(), now)
		require.NoError(t, err)

		p, removed, err := b.Respond(userID, true, now)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, booking.ParticipantAccepted, p.Status)
		require.NotNil(t, p.RespondedAt)
	})

	t.Run("decline removes the entry", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()
		_, err := b.Invite(userID, b.OrganizerID(), now)
		require.NoError(t, err)

		p, removed, err := b.Respond(userID, false, now)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, booking.ParticipantDeclined, p.Status)
		assert.Empty(t, b.Participants())
	})

	t.Run("decline frees the reserved spot", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 2))
		first := uuid.New()
		_, err := b.Invite(first, b.OrganizerID(), now)
		require.NoError(t, err)
		_, err = b.Invite(uuid.New(), b.OrganizerID(), now)
		require.NoError(t, err)
		require.False(t, b.HasCapacity())

		_, _, err = b.Respond(first, false, now)
		require.NoError(t, err)
		assert.True(t, b.HasCapacity())

		_, err = b.Invite(uuid.New(), b.OrganizerID(), now)
		assert.NoError(t, err)
	})

	t.Run("unknown participant cannot respond", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		_, _, err := b.Respond(uuid.New(), true, now)
		assert.ErrorIs(t, err, booking.ErrParticipantNotFound)
	})

	t.Run("accepted participant cannot respond again", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()
		_, err := b.Invite(userID, b.OrganizerID(), now)
		require.NoError(t, err)
		_, _, err = b.Respond(userID, true, now)
		require.NoError(t, err)

		_, _, err = b.Respond(userID, true, now)
		assert.ErrorIs(t, err, booking.ErrAlreadyResponded)
	})

	t.Run("pending join can be approved", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().AsApprovalRequired())
		userID := uuid.New()
		_, err := b.JoinByCode(userID, now)
		require.NoError(t, err)

		p, removed, err := b.Respond(userID, true, now)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, booking.ParticipantAccepted, p.Status)
	})
}

func TestRemoveAndLeave(t *testing.T) {
	now := time.Now()

	t.Run("remove drops the participant", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()
		_, err := b.Invite(userID, b.OrganizerID(), now)
		require.NoError(t, err)

		removed, err := b.Remove(userID, now)
		require.NoError(t, err)
		assert.Equal(t, userID, removed.UserID)
		assert.Empty(t, b.Participants())
	})

	t.Run("remove unknown participant", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		_, err := b.Remove(uuid.New(), now)
		assert.ErrorIs(t, err, booking.ErrParticipantNotFound)
	})

	t.Run("member may leave", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		userID := uuid.New()
		_, err := b.JoinByCode(userID, now)
		require.NoError(t, err)

		_, err = b.Leave(userID, now)
		require.NoError(t, err)
		assert.Empty(t, b.Participants())
	})

	t.Run("organizer cannot leave", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		_, err := b.Leave(b.OrganizerID(), now)
		assert.ErrorIs(t, err, booking.ErrOrganizerCannotLeave)
	})
}

func TestApplyUpdate(t *testing.T) {
	now := time.Now()

	t.Run("reports changed fields", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		name, err := booking.NewGroupName("Renamed Sync")
		require.NoError(t, err)
		capacity, err := booking.NewCapacity(2, 6)
		require.NoError(t, err)

		changed, err := b.ApplyUpdate(booking.GroupUpdate{
			GroupName: &name,
			Capacity:  &capacity,
		}, now)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"group name", "capacity"}, changed)
		assert.Equal(t, "Renamed Sync", b.GroupName().String())
		assert.Equal(t, 6, b.Capacity().Max())
	})

	t.Run("identical values report no change", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		name, err := booking.NewGroupName(b.GroupName().String())
		require.NoError(t, err)

		changed, err := b.ApplyUpdate(booking.GroupUpdate{GroupName: &name}, now)
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("capacity cannot drop below reserved count", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 5))
		for range 3 {
			_, err := b.Invite(uuid.New(), b.OrganizerID(), now)
			require.NoError(t, err)
		}

		capacity, err := booking.NewCapacity(2, 2)
		require.NoError(t, err)

		_, err = b.ApplyUpdate(booking.GroupUpdate{Capacity: &capacity}, now)
		assert.ErrorIs(t, err, booking.ErrCapacityBelowCurrent)
	})

	t.Run("special requests are trimmed", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		requests := "  whiteboard please  "
		changed, err := b.ApplyUpdate(booking.GroupUpdate{SpecialRequests: &requests}, now)
		require.NoError(t, err)
		assert.Contains(t, changed, "special requests")
		assert.Equal(t, "whiteboard please", b.SpecialRequests())
	})
}

func TestCancel(t *testing.T) {
	now := time.Now()

	t.Run("cancel marks status and reason", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())

		err := b.Cancel("  venue closed  ", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, "venue closed", b.CancelReason())
		require.NotNil(t, b.CancelledAt())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder())
		require.NoError(t, b.Cancel("first", now))

		err := b.Cancel("second", now)
		assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
	})
}

func TestComputeStats(t *testing.T) {
	now := time.Now()

	t.Run("counts per status", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(3, 10).AsApprovalRequired())

		accepted := uuid.New()
		_, err := b.Invite(accepted, b.OrganizerID(), now)
		require.NoError(t, err)
		_, _, err = b.Respond(accepted, true, now)
		require.NoError(t, err)

		_, err = b.Invite(uuid.New(), b.OrganizerID(), now)
		require.NoError(t, err)

		_, err = b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)

		stats := b.ComputeStats()
		assert.Equal(t, 1, stats.Accepted)
		assert.Equal(t, 1, stats.Invited)
		assert.Equal(t, 1, stats.Pending)
		assert.Equal(t, 3, stats.CurrentParticipants)
		assert.Equal(t, 7, stats.AvailableSpots)
	})

	t.Run("organizer counts toward the minimum", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 10))

		assert.False(t, b.ComputeStats().MinimumReached)

		userID := uuid.New()
		_, err := b.JoinByCode(userID, now)
		require.NoError(t, err)

		assert.True(t, b.ComputeStats().MinimumReached)
	})

	t.Run("available spots never go negative", func(t *testing.T) {
		b := mustBuild(t, builder.NewGroupBookingBuilder().WithCapacity(2, 2))
		_, err := b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)
		_, err = b.JoinByCode(uuid.New(), now)
		require.NoError(t, err)

		stats := b.ComputeStats()
		assert.Equal(t, 0, stats.AvailableSpots)
	})
}

func mustBuild(t *testing.T, b *builder.GroupBookingBuilder) *booking.GroupBooking {
	t.Helper()
	actual, err := b.BuildDomain()
	require.NoError(t, err)
	return actual
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewGroupBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
