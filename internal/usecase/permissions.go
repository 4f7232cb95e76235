package usecase

//go:generate mockgen -source=permissions.go -destination=../../tests/mock/usecase/permissions.go -package=usecasemock

import (
	"context"
	"log/slog"
	"slices"

	"gavel/internal/domain/user"
	"gavel/internal/infra"
	"gavel/internal/pkg/errs"
)

type PermissionReader interface {
	FindActionsByRole(ctx context.Context, role string) ([]string, error)
}

type PermissionCacheStore interface {
	// GetRoleActions returns nil on a miss.
	GetRoleActions(ctx context.Context, role string) ([]string, error)
	SetRoleActions(ctx context.Context, role string, actions []string) error
}

type PermissionChecker interface {
	HasPermission(ctx context.Context, role user.Role, action string) (bool, error)
}

type permissionCheckerImpl struct {
	reader PermissionReader
	store  PermissionCacheStore
	logger *slog.Logger
}

func NewPermissionChecker(reader PermissionReader, store PermissionCacheStore, logger *slog.Logger) PermissionChecker {
	return &permissionCheckerImpl{
		reader: reader,
		store:  store,
		logger: logger,
	}
}

// HasPermission resolves the role's action set through the cache, falling
// back to the durable store on a miss. Grants changed in the store are
// visible only after the cache entry expires; callers accept that window.
func (p *permissionCheckerImpl) HasPermission(ctx context.Context, role user.Role, action string) (bool, error) {
	actions, err := p.store.GetRoleActions(ctx, role.String())
	if err != nil {
		// Degrade to the authoritative store rather than denying access.
		p.logger.Warn("permission cache read failed", "role", role.String(), "error", err.Error())
		actions = nil
	}

	if actions == nil {
		actions, err = p.reader.FindActionsByRole(ctx, role.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return false, errs.Mark(err, errs.ErrRoleNotFound)
			}
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := p.store.SetRoleActions(ctx, role.String(), actions); err != nil {
			p.logger.Warn("failed to populate permission cache", "role", role.String(), "error", err.Error())
		}
	}

	return slices.Contains(actions, action), nil
}
