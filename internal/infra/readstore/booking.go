package readstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/pgconv"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/internal/usecase/shared"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const selectBookingViewSQL = `
SELECT b.id, b.workspace_id, b.workspace_name, b.workspace_address, b.workspace_type, b.workspace_photo,
       b.booking_date, b.start_minutes, b.end_minutes, b.room_type, b.status,
       b.organizer_id, u.name AS organizer_name,
       b.group_name, b.group_description,
       b.max_participants, b.min_participants, b.invite_code, b.is_public, b.tags,
       b.allow_participant_invites, b.require_approval, b.send_reminders,
       b.special_requests, b.cancel_reason, b.cancelled_at, b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.organizer_id
WHERE b.id = $1 AND b.is_group`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupBookingView, error) {
	var (
		view          queries.GroupBookingView
		startMinutes  int
		endMinutes    int
		groupName     *string
		description   *string
		organizerName string
	)

	err := r.db.QueryRow(ctx, selectBookingViewSQL, id).Scan(
		&view.ID, &view.Workspace.ID, &view.Workspace.Name, &view.Workspace.Address, &view.Workspace.Type, &view.Workspace.Photo,
		&view.Date, &startMinutes, &endMinutes, &view.RoomType, &view.Status,
		&view.OrganizerID, &organizerName,
		&groupName, &description,
		&view.MaxParticipants, &view.MinParticipants, &view.InviteCode, &view.IsPublic, &view.Tags,
		&view.Settings.AllowParticipantInvites, &view.Settings.RequireApproval, &view.Settings.SendReminders,
		&view.SpecialRequests, &view.CancelReason, &view.CancelledAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "group booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find group booking", err)
	}

	view.OrganizerName = organizerName
	if groupName != nil {
		view.GroupName = *groupName
	}
	view.GroupDescription = description
	view.StartTime = formatMinutes(startMinutes)
	view.EndTime = formatMinutes(endMinutes)

	participants, err := r.findParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Participants = participants

	return &view, nil
}

const selectParticipantViewsSQL = `
SELECT p.user_id, u.name, u.email, u.avatar, p.status, p.invited_at, p.responded_at, p.invited_by
FROM booking_participants p
JOIN users u ON u.id = p.user_id
WHERE p.booking_id = $1
ORDER BY p.invited_at, p.user_id`

func (r *BookingReadStore) findParticipants(ctx context.Context, bookingID uuid.UUID) ([]queries.ParticipantView, error) {
	rows, err := r.db.Query(ctx, selectParticipantViewsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list participants", err)
	}
	defer rows.Close()

	participants := make([]queries.ParticipantView, 0)
	for rows.Next() {
		var (
			p         queries.ParticipantView
			invitedBy uuid.UUID
		)
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.Avatar, &p.Status, &p.InvitedAt, &p.RespondedAt, &invitedBy); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan participant", err)
		}
		if invitedBy != uuid.Nil {
			p.InvitedBy = &invitedBy
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read participants", err)
	}
	return participants, nil
}

const countInvitesSQL = `
SELECT count(*),
       count(*) FILTER (WHERE status = 'pending'),
       count(*) FILTER (WHERE status = 'accepted'),
       count(*) FILTER (WHERE status = 'declined')
FROM group_invites
WHERE booking_id = $1`

func (r *BookingReadStore) CountInvitesByStatus(ctx context.Context, bookingID uuid.UUID) (*queries.InviteCounts, error) {
	var counts queries.InviteCounts
	err := r.db.QueryRow(ctx, countInvitesSQL, bookingID).Scan(
		&counts.Total, &counts.Pending, &counts.Accepted, &counts.Declined,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to count invites", err)
	}
	return &counts, nil
}

const selectBookingSnapshotSQL = `
SELECT id, COALESCE(organizer_id, '00000000-0000-0000-0000-000000000000'::uuid), status, is_group,
       booking_date, start_minutes, end_minutes, COALESCE(group_name, ''), invite_code
FROM bookings
WHERE id = $1`

// BookingSnapshot serves command-side validation without loading the
// whole aggregate.
func (r *BookingReadStore) BookingSnapshot(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snapshot shared.BookingSnapshot
	err := r.db.QueryRow(ctx, selectBookingSnapshotSQL, id).Scan(
		&snapshot.ID, &snapshot.UserID, &snapshot.Status, &snapshot.IsGroup,
		&snapshot.Date, &snapshot.StartMinutes, &snapshot.EndMinutes, &snapshot.GroupName, &snapshot.InviteCode,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return &snapshot, nil
}

const overlappingBookingSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE workspace_id = $1
      AND booking_date = $2
      AND status IN ('confirmed', 'pending')
      AND start_minutes < $4
      AND end_minutes > $3
)`

func (r *BookingReadStore) OverlappingBookingExists(ctx context.Context, workspaceID uuid.UUID, date time.Time, startMinutes, endMinutes int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, overlappingBookingSQL, workspaceID, date, startMinutes, endMinutes).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *BookingReadStore) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE invite_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check invite code", err)
	}
	return exists, nil
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
