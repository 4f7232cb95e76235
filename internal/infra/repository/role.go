package repository

import (
	"context"
	"errors"

	"gavel/internal/infra"
	"gavel/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type RoleRepository struct {
	db db.DBTX
}

func NewRoleRepository(db db.DBTX) *RoleRepository {
	return &RoleRepository{db: db}
}

// FindActionsByRole returns the permitted action identifiers for a role.
// A role with no grants returns an empty slice; an unknown role is NOT_FOUND.
func (r *RoleRepository) FindActionsByRole(ctx context.Context, role string) ([]string, error) {
	var roleID int64
	err := r.db.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, role).Scan(&roleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("role not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find role", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT p.action
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.action`, roleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query role permissions", err)
	}
	defer rows.Close()

	actions := make([]string, 0, 8)
	for rows.Next() {
		var action string
		if err := rows.Scan(&action); err != nil {
			return nil, infra.WrapRepoErr("failed to scan permission", err)
		}
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read role permissions", err)
	}
	return actions, nil
}
