package repository

import (
	"context"
	"errors"

	"gavel/internal/infra"
	"gavel/internal/infra/db"
	"gavel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, is_verified
		FROM users
		WHERE id = $1`, id)

	var snap commands.UserSnapshot
	if err := row.Scan(&snap.ID, &snap.Name, &snap.Email, &snap.IsVerified); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &snap, nil
}

// SetVerified flips the account verification flag; verification itself is
// driven by the auth collaborator, this is only its storage surface.
func (r *UserRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_verified = $2, updated_at = now() WHERE id = $1`,
		id, verified,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update verification flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
