package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"gavel/internal/infra/db"
)

// UnitOfWork runs fn inside one database transaction; everything written
// through the provided handle commits or rolls back as a unit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}
