package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PriceCache holds the latest known current price per auction. It is not
// authoritative: it may be absent or briefly stale, and every writer simply
// overwrites (last-writer-wins).
type PriceCache struct {
	rdb *redis.Client
}

func NewPriceCache(rdb *redis.Client) *PriceCache {
	return &PriceCache{rdb: rdb}
}

func priceKey(auctionID uuid.UUID) string {
	return fmt.Sprintf(KeyAuctionPrice, auctionID)
}

// Get returns nil on a cache miss.
func (c *PriceCache) Get(ctx context.Context, auctionID uuid.UUID) (*decimal.Decimal, error) {
	val, err := c.rdb.Get(ctx, priceKey(auctionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	price, err := decimal.NewFromString(val)
	if err != nil {
		return nil, fmt.Errorf("malformed cached price %q: %w", val, err)
	}
	return &price, nil
}

func (c *PriceCache) Set(ctx context.Context, auctionID uuid.UUID, price decimal.Decimal) error {
	return c.rdb.Set(ctx, priceKey(auctionID), price.String(), TTLPrice).Err()
}
