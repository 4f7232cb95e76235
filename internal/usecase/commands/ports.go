package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/domain/bid"
	"gavel/internal/infra/db"
	"gavel/internal/infra/events"
	"gavel/internal/infra/queue"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots prevent dependency on read-side query types
type AuctionSnapshot struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	Title         string
	Description   string
	Status        auction.Status
	StartingPrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
	ImageURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExpiredAuction is one row of the sweep's working set.
type ExpiredAuction struct {
	ID          uuid.UUID
	Title       string
	SellerEmail string
}

type HighestBid struct {
	BidderID    uuid.UUID
	BidderEmail string
	Amount      decimal.Decimal
}

type UserSnapshot struct {
	ID         uuid.UUID
	Name       string
	Email      string
	IsVerified bool
}

type AuctionRepository interface {
	Create(ctx context.Context, a *auction.Auction) error
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionSnapshot, error)
	// AdvancePrice raises current_price to amount iff the auction is still
	// ACTIVE and amount beats the stored price; reports whether a row changed.
	AdvancePrice(ctx context.Context, db db.DBTX, id uuid.UUID, amount decimal.Decimal) (bool, error)
	FindExpired(ctx context.Context, now time.Time) ([]ExpiredAuction, error)
	// MarkStatus transitions ACTIVE → status; reports whether a row changed.
	MarkStatus(ctx context.Context, id uuid.UUID, status auction.Status) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BidRepository interface {
	Create(ctx context.Context, db db.DBTX, b *bid.Bid) error
	HighestForAuction(ctx context.Context, auctionID uuid.UUID) (*HighestBid, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	// SetVerified flips the account verification flag kept for the
	// RequireVerified gate; verification itself happens at the auth service.
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

type PriceCache interface {
	// Get returns nil on a cache miss.
	Get(ctx context.Context, auctionID uuid.UUID) (*decimal.Decimal, error)
	Set(ctx context.Context, auctionID uuid.UUID, price decimal.Decimal) error
}

type EventPublisher interface {
	PublishBidUpdate(ctx context.Context, ev events.BidUpdate) error
}

type TaskEnqueuer interface {
	EnqueueAuctionWon(ctx context.Context, payload queue.AuctionWonPayload) error
	EnqueueAuctionExpired(ctx context.Context, payload queue.AuctionExpiredPayload) error
}
