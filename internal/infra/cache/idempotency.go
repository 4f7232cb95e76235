package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// StoredResponse is the verbatim replay unit for a deduplicated request.
type StoredResponse struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
}

type IdempotencyStore struct {
	rdb *redis.Client
}

func NewIdempotencyStore(rdb *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb}
}

func idempotencyKey(key string) string {
	return fmt.Sprintf(KeyIdempotency, key)
}

// Get returns nil on a miss.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (*StoredResponse, error) {
	val, err := s.rdb.Get(ctx, idempotencyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var resp StoredResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, fmt.Errorf("malformed idempotency record: %w", err)
	}
	return &resp, nil
}

func (s *IdempotencyStore) Set(ctx context.Context, key string, resp StoredResponse) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, idempotencyKey(key), body, TTLIdempotency).Err()
}
