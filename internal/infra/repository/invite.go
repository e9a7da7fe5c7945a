package repository

import (
	"context"
	"time"

	"nomaddesk/internal/domain/invite"
	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InviteRepository struct{}

func NewInviteRepository() *InviteRepository {
	return &InviteRepository{}
}

const insertInviteSQL = `
INSERT INTO group_invites (
    id, booking_id, inviter_id, invitee_id, invitee_email,
    status, personal_message, expires_at, reminder_count, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING id`

func (r *InviteRepository) Create(ctx context.Context, tx db.DBTX, inv *invite.GroupInvite) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertInviteSQL,
		inv.ID(), inv.BookingID(), inv.InviterID(), inv.InviteeID(), inv.InviteeEmail(),
		inv.Status().String(), nullableText(inv.PersonalMessage()), inv.ExpiresAt(), inv.ReminderCount(), inv.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr(infra.KindDuplicateKey, "pending invite already exists for this pair", err)
		}
		return uuid.Nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to create invite", err)
	}
	return id, nil
}

const selectInviteForUpdateSQL = `
SELECT id, booking_id, inviter_id, invitee_id, invitee_email,
       status, personal_message, expires_at, viewed_at, responded_at,
       reminder_count, created_at, updated_at
FROM group_invites
WHERE id = $1
FOR UPDATE`

func (r *InviteRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*invite.GroupInvite, error) {
	var (
		inviteID, bookingID, inviterID, inviteeID uuid.UUID
		inviteeEmail, status                      string
		personalMessage                           *string
		expiresAt, createdAt, updatedAt           time.Time
		viewedAt, respondedAt                     *time.Time
		reminderCount                             int
	)
	err := tx.QueryRow(ctx, selectInviteForUpdateSQL, id).Scan(
		&inviteID, &bookingID, &inviterID, &inviteeID, &inviteeEmail,
		&status, &personalMessage, &expiresAt, &viewedAt, &respondedAt,
		&reminderCount, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "invite not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load invite", err)
	}

	return invite.ReconstructGroupInvite(
		inviteID, bookingID, inviterID, inviteeID,
		inviteeEmail,
		invite.Status(status),
		derefOrEmpty(personalMessage),
		expiresAt,
		viewedAt, respondedAt,
		reminderCount,
		createdAt, updatedAt,
	), nil
}

const updateInviteStatusSQL = `
UPDATE group_invites
SET status = $2, responded_at = $3, updated_at = now()
WHERE id = $1`

func (r *InviteRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status invite.Status, respondedAt *time.Time) error {
	tag, err := tx.Exec(ctx, updateInviteStatusSQL, id, status.String(), respondedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update invite status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "invite not found", nil)
	}
	return nil
}

const cancelPendingInvitesSQL = `
UPDATE group_invites
SET status = 'cancelled', updated_at = now()
WHERE booking_id = $1 AND status = 'pending'`

func (r *InviteRepository) CancelPendingByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, cancelPendingInvitesSQL, bookingID)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel pending invites", err)
	}
	return tag.RowsAffected(), nil
}
