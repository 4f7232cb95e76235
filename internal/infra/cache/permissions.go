package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PermissionStore caches the permitted action set per role. Grants made in
// the durable store become visible only after the TTL elapses.
type PermissionStore struct {
	rdb *redis.Client
}

func NewPermissionStore(rdb *redis.Client) *PermissionStore {
	return &PermissionStore{rdb: rdb}
}

func permissionKey(role string) string {
	return fmt.Sprintf(KeyRolePermissions, role)
}

// GetRoleActions returns nil on a miss; an empty cached set decodes to an
// empty (non-nil) slice.
func (s *PermissionStore) GetRoleActions(ctx context.Context, role string) ([]string, error) {
	val, err := s.rdb.Get(ctx, permissionKey(role)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	actions := make([]string, 0, 8)
	if err := json.Unmarshal(val, &actions); err != nil {
		return nil, fmt.Errorf("malformed cached permission set: %w", err)
	}
	return actions, nil
}

func (s *PermissionStore) SetRoleActions(ctx context.Context, role string, actions []string) error {
	if actions == nil {
		actions = []string{}
	}
	body, err := json.Marshal(actions)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, permissionKey(role), body, TTLPermissions).Err()
}
