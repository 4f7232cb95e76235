package bid

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNonPositiveAmount = errors.New("bid amount must be positive")

// Bid is an immutable record of one offer; it is created exactly once and
// never mutated or deleted.
type Bid struct {
	id        uuid.UUID
	auctionID uuid.UUID
	bidderID  uuid.UUID
	amount    decimal.Decimal
	createdAt time.Time
}

func NewBid(auctionID, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) (*Bid, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	return &Bid{
		id:        uuid.New(),
		auctionID: auctionID,
		bidderID:  bidderID,
		amount:    amount,
		createdAt: now,
	}, nil
}

func (b *Bid) ID() uuid.UUID           { return b.id }
func (b *Bid) AuctionID() uuid.UUID    { return b.auctionID }
func (b *Bid) BidderID() uuid.UUID     { return b.bidderID }
func (b *Bid) Amount() decimal.Decimal { return b.amount }
func (b *Bid) CreatedAt() time.Time    { return b.createdAt }
