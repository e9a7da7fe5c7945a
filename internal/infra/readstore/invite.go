package readstore

import (
	"context"

	"github.com/google/uuid"

	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/pgconv"
	"nomaddesk/internal/usecase/queries"
	"nomaddesk/internal/usecase/shared"
)

type InviteReadStore struct {
	db db.DBTX
}

func NewInviteReadStore(db db.DBTX) *InviteReadStore {
	return &InviteReadStore{db: db}
}

const selectInviteViewSQL = `
SELECT i.id, i.booking_id, COALESCE(b.group_name, ''), b.workspace_name,
       i.inviter_id, u.name AS inviter_name,
       i.invitee_id, i.invitee_email, i.status, i.personal_message,
       i.expires_at, i.viewed_at, i.responded_at, i.created_at
FROM group_invites i
JOIN bookings b ON b.id = i.booking_id
JOIN users u ON u.id = i.inviter_id`

func (r *InviteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InviteView, error) {
	var view queries.InviteView
	err := r.db.QueryRow(ctx, selectInviteViewSQL+` WHERE i.id = $1`, id).Scan(
		&view.ID, &view.BookingID, &view.GroupName, &view.WorkspaceName,
		&view.InviterID, &view.InviterName,
		&view.InviteeID, &view.InviteeEmail, &view.Status, &view.PersonalMessage,
		&view.ExpiresAt, &view.ViewedAt, &view.RespondedAt, &view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "invitation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find invitation", err)
	}
	return &view, nil
}

func (r *InviteReadStore) FindByInvitee(ctx context.Context, inviteeID uuid.UUID, pendingOnly bool) ([]*queries.InviteView, error) {
	query := selectInviteViewSQL + ` WHERE i.invitee_id = $1`
	if pendingOnly {
		query += ` AND i.status = 'pending'`
	}
	query += ` ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, query, inviteeID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list invitations", err)
	}
	defer rows.Close()

	views := make([]*queries.InviteView, 0)
	for rows.Next() {
		var view queries.InviteView
		if err := rows.Scan(
			&view.ID, &view.BookingID, &view.GroupName, &view.WorkspaceName,
			&view.InviterID, &view.InviterName,
			&view.InviteeID, &view.InviteeEmail, &view.Status, &view.PersonalMessage,
			&view.ExpiresAt, &view.ViewedAt, &view.RespondedAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan invitation", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read invitations", err)
	}
	return views, nil
}

func (r *InviteReadStore) MarkViewed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE group_invites SET viewed_at = now(), updated_at = now() WHERE id = $1 AND viewed_at IS NULL`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark invitation viewed", err)
	}
	return nil
}

const selectInviteSnapshotSQL = `
SELECT i.id, i.booking_id, i.inviter_id, i.invitee_id, i.status, i.expires_at, b.invite_code
FROM group_invites i
JOIN bookings b ON b.id = i.booking_id`

func (r *InviteReadStore) InviteSnapshot(ctx context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	var snapshot shared.InviteSnapshot
	err := r.db.QueryRow(ctx, selectInviteSnapshotSQL+` WHERE i.id = $1`, id).Scan(
		&snapshot.ID, &snapshot.BookingID, &snapshot.InviterID, &snapshot.InviteeID,
		&snapshot.Status, &snapshot.ExpiresAt, &snapshot.InviteCode,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "invitation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find invitation", err)
	}
	return &snapshot, nil
}

func (r *InviteReadStore) PendingInviteByBookingAndInvitee(ctx context.Context, bookingID, inviteeID uuid.UUID) (*shared.InviteSnapshot, error) {
	var snapshot shared.InviteSnapshot
	err := r.db.QueryRow(ctx,
		selectInviteSnapshotSQL+` WHERE i.booking_id = $1 AND i.invitee_id = $2 AND i.status = 'pending'`,
		bookingID, inviteeID,
	).Scan(
		&snapshot.ID, &snapshot.BookingID, &snapshot.InviterID, &snapshot.InviteeID,
		&snapshot.Status, &snapshot.ExpiresAt, &snapshot.InviteCode,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "pending invitation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find pending invitation", err)
	}
	return &snapshot, nil
}
