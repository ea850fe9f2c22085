package readstore

import (
	"context"
	"errors"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	pool db.DBTX
}

func NewUserReadStore(pool db.DBTX) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`, id,
	).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`, email,
	).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return view, passwordHash, nil
}
