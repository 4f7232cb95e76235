package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user.go -package=commandsmock

import (
	"context"

	"gavel/internal/infra"
	"gavel/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserCommands interface {
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

type userUseCaseImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userUseCaseImpl{users: users}
}

// SetVerified is the administrative surface for the verification flag the
// RequireVerified gate reads; revoking takes effect on the next request.
func (u *userUseCaseImpl) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	if err := u.users.SetVerified(ctx, id, verified); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUserNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
