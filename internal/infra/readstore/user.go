package readstore

import (
	"context"

	"github.com/google/uuid"

	"nomaddesk/internal/infra"
	"nomaddesk/internal/infra/db"
	"nomaddesk/internal/pkg/pgconv"
	"nomaddesk/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const selectUserByIDSQL = `
SELECT id, email, name, avatar, role, is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, selectUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Avatar, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by ID", err)
	}
	return &view, nil
}

const selectUserByEmailSQL = `
SELECT id, email, name, avatar, role, is_active, password_hash
FROM users
WHERE lower(email) = lower($1)`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, selectUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.Name, &view.Avatar, &view.Role, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(infra.KindDBFailure, "failed to find user by email", err)
	}
	return &view, passwordHash, nil
}
