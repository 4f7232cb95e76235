package cache

import "time"

const (
	// Latest known current price: auction:{id}:price -> decimal string
	KeyAuctionPrice = "auction:%s:price"

	// Cached permission set: permissions:role:{role} -> JSON array of actions
	KeyRolePermissions = "permissions:role:%s"

	// Stored response for a mutating request: idempotency:{key} -> {statusCode, data}
	KeyIdempotency = "idempotency:%s"
)

var (
	// Disposable snapshot; self-heals on miss, so a short TTL is enough to
	// evict entries for auctions nobody bids on anymore.
	TTLPrice = 24 * time.Hour

	TTLPermissions = time.Hour
	TTLIdempotency = 24 * time.Hour
)
