package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nomaddesk/internal/domain/booking"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const insertBookingSQL = `
INSERT INTO bookings (
    id, workspace_id, workspace_name, workspace_address, workspace_type, workspace_photo,
    booking_date, start_minutes, end_minutes, room_type, num_people, status,
    is_group, organizer_id, group_name, group_description,
    max_participants, min_participants, invite_code, is_public, tags,
    allow_participant_invites, require_approval, send_reminders,
    special_requests, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10, $11, $12,
    TRUE, $13, $14, $15,
    $16, $17, $18, $19, $20,
    $21, $22, $23,
    $24, $25, $25
)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.GroupBooking) (uuid.UUID, error) {
	ws := b.Workspace()
	slot := b.Slot()
	settings := b.Settings()

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.ID(), ws.ID, ws.Name, ws.Address, nullableText(ws.Type), nullableText(ws.Photo),
		slot.Date(), slot.StartMinutes(), slot.EndMinutes(), b.RoomType(), b.NumPeople(), b.Status().String(),
		b.OrganizerID(), b.GroupName().String(), nullableText(b.Description().String()),
		b.Capacity().Max(), b.Capacity().Min(), nullableText(b.InviteCode()), b.IsPublic(), b.Tags().Values(),
		settings.AllowParticipantInvites, settings.RequireApproval, settings.SendReminders,
		nullableText(b.SpecialRequests()), b.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "booking insert hit a unique constraint", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return id, nil
}

const selectBookingForUpdateSQL = `
SELECT id, workspace_id, workspace_name, workspace_address, workspace_type, workspace_photo,
       booking_date, start_minutes, end_minutes, room_type, num_people, status,
       organizer_id, group_name, group_description,
       max_participants, min_participants, invite_code, is_public, tags,
       allow_participant_invites, require_approval, send_reminders,
       special_requests, cancel_reason, cancelled_at, created_at, updated_at
FROM bookings
WHERE %s AND is_group
FOR UPDATE`

// LockByID serializes membership mutations on the booking row. The
// participants load inside the same transaction, so the aggregate the
// caller mutates reflects committed state.
func (r *BookingRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.GroupBooking, error) {
	return r.lockWhere(ctx, tx, "id = $1", id)
}

func (r *BookingRepository) LockByInviteCode(ctx context.Context, tx db.DBTX, code string) (*booking.GroupBooking, error) {
	return r.lockWhere(ctx, tx, "invite_code = $1", code)
}

func (r *BookingRepository) lockWhere(ctx context.Context, tx db.DBTX, predicate string, arg any) (*booking.GroupBooking, error) {
	row := tx.QueryRow(ctx, fmt.Sprintf(selectBookingForUpdateSQL, predicate), arg)

	entity, err := scanBookingRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking", err)
	}

	participants, err := r.loadParticipants(ctx, tx, entity.ID())
	if err != nil {
		return nil, err
	}

	return withParticipants(entity, participants), nil
}

const selectParticipantsSQL = `
SELECT user_id, status, invited_at, responded_at, invited_by
FROM booking_participants
WHERE booking_id = $1
ORDER BY invited_at, user_id`

func (r *BookingRepository) loadParticipants(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) ([]booking.Participant, error) {
	rows, err := tx.Query(ctx, selectParticipantsSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load participants", err)
	}
	defer rows.Close()

	var participants []booking.Participant
	for rows.Next() {
		var p booking.Participant
		var status string
		if err := rows.Scan(&p.UserID, &status, &p.InvitedAt, &p.RespondedAt, &p.InvitedBy); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan participant", err)
		}
		p.Status = booking.ParticipantStatus(status)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read participants", err)
	}
	return participants, nil
}

const updateGroupSQL = `
UPDATE bookings
SET group_name = $2,
    group_description = $3,
    max_participants = $4,
    min_participants = $5,
    tags = $6,
    allow_participant_invites = $7,
    require_approval = $8,
    send_reminders = $9,
    special_requests = $10,
    status = $11,
    cancel_reason = $12,
    cancelled_at = $13,
    updated_at = $14
WHERE id = $1 AND is_group`

func (r *BookingRepository) UpdateGroup(ctx context.Context, tx db.DBTX, b *booking.GroupBooking) error {
	settings := b.Settings()
	tag, err := tx.Exec(ctx, updateGroupSQL,
		b.ID(),
		b.GroupName().String(),
		nullableText(b.Description().String()),
		b.Capacity().Max(),
		b.Capacity().Min(),
		b.Tags().Values(),
		settings.AllowParticipantInvites,
		settings.RequireApproval,
		settings.SendReminders,
		nullableText(b.SpecialRequests()),
		b.Status().String(),
		nullableText(b.CancelReason()),
		b.CancelledAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

// The insert predicate re-states the capacity ceiling server-side: even
// without the row lock an over-capacity append writes zero rows.
const addParticipantSQL = `
INSERT INTO booking_participants (booking_id, user_id, status, invited_at, responded_at, invited_by)
SELECT $1, $2, $3, $4, $5, $6
WHERE (
    SELECT count(*) FROM booking_participants
    WHERE booking_id = $1 AND status IN ('invited', 'pending', 'accepted')
) < $7`

func (r *BookingRepository) AddParticipant(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Participant, maxParticipants int) error {
	tag, err := tx.Exec(ctx, addParticipantSQL,
		bookingID, p.UserID, p.Status.String(), p.InvitedAt, p.RespondedAt, p.InvitedBy, maxParticipants,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "user already in participant list", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to add participant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "participant capacity exceeded", nil)
	}
	return nil
}

const updateParticipantSQL = `
UPDATE booking_participants
SET status = $3, responded_at = $4
WHERE booking_id = $1 AND user_id = $2`

func (r *BookingRepository) UpdateParticipant(ctx context.Context, tx db.DBTX, bookingID uuid.UUID, p booking.Participant) error {
	tag, err := tx.Exec(ctx, updateParticipantSQL, bookingID, p.UserID, p.Status.String(), p.RespondedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update participant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "participant not found", nil)
	}
	return nil
}

func (r *BookingRepository) RemoveParticipant(ctx context.Context, tx db.DBTX, bookingID, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM booking_participants WHERE booking_id = $1 AND user_id = $2`, bookingID, userID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to remove participant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "participant not found", nil)
	}
	return nil
}

func scanBookingRow(row pgx.Row) (*booking.GroupBooking, error) {
	var (
		id, workspaceID, organizerID        uuid.UUID
		workspaceName, workspaceAddress     string
		workspaceType, workspacePhoto       *string
		date                                time.Time
		startMinutes, endMinutes, numPeople int
		roomType, status, groupName         string
		groupDescription, inviteCode        *string
		maxParticipants, minParticipants    int
		isPublic                            bool
		tags                                []string
		allowInvites, approval, reminders   bool
		specialRequests, cancelReason       *string
		cancelledAt                         *time.Time
		createdAt, updatedAt                time.Time
	)

	err := row.Scan(
		&id, &workspaceID, &workspaceName, &workspaceAddress, &workspaceType, &workspacePhoto,
		&date, &startMinutes, &endMinutes, &roomType, &numPeople, &status,
		&organizerID, &groupName, &groupDescription,
		&maxParticipants, &minParticipants, &inviteCode, &isPublic, &tags,
		&allowInvites, &approval, &reminders,
		&specialRequests, &cancelReason, &cancelledAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructGroupBooking(
		id,
		booking.WorkspaceSnapshot{
			ID:      workspaceID,
			Name:    workspaceName,
			Address: workspaceAddress,
			Type:    derefOrEmpty(workspaceType),
			Photo:   derefOrEmpty(workspacePhoto),
		},
		booking.ReconstructTimeSlot(date, startMinutes, endMinutes),
		roomType,
		numPeople,
		booking.Status(status),
		organizerID,
		booking.ReconstructGroupName(groupName),
		booking.ReconstructGroupDescription(derefOrEmpty(groupDescription)),
		booking.ReconstructCapacity(minParticipants, maxParticipants),
		derefOrEmpty(inviteCode),
		isPublic,
		booking.ReconstructTags(tags),
		booking.GroupSettings{
			AllowParticipantInvites: allowInvites,
			RequireApproval:         approval,
			SendReminders:           reminders,
		},
		derefOrEmpty(specialRequests),
		nil,
		derefOrEmpty(cancelReason),
		cancelledAt,
		createdAt,
		updatedAt,
	), nil
}

func withParticipants(b *booking.GroupBooking, participants []booking.Participant) *booking.GroupBooking {
	return booking.ReconstructGroupBooking(
		b.ID(), b.Workspace(), b.Slot(), b.RoomType(), b.NumPeople(), b.Status(), b.OrganizerID(),
		b.GroupName(), b.Description(), b.Capacity(), b.InviteCode(), b.IsPublic(),
		b.Tags(), b.Settings(), b.SpecialRequests(), participants,
		b.CancelReason(), b.CancelledAt(), b.CreatedAt(), b.UpdatedAt(),
	)
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
