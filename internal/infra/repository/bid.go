package repository

import (
	"context"
	"errors"

	"gavel/internal/domain/bid"
	"gavel/internal/infra"
	"gavel/internal/infra/db"
	"gavel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BidRepository struct {
	db db.DBTX
}

func NewBidRepository(db db.DBTX) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(ctx context.Context, db db.DBTX, b *bid.Bid) error {
	_, err := db.Exec(ctx, `
		INSERT INTO bids (id, auction_id, bidder_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID(), b.AuctionID(), b.BidderID(), b.Amount().String(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert bid", err)
	}
	return nil
}

// HighestForAuction returns nil when the auction received no bids.
func (r *BidRepository) HighestForAuction(ctx context.Context, auctionID uuid.UUID) (*commands.HighestBid, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.bidder_id, u.email, b.amount
		FROM bids b
		JOIN users u ON u.id = b.bidder_id
		WHERE b.auction_id = $1
		ORDER BY b.amount DESC
		LIMIT 1`, auctionID)

	var (
		hb     commands.HighestBid
		amount string
	)
	if err := row.Scan(&hb.BidderID, &hb.BidderEmail, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find highest bid", err)
	}

	var err error
	if hb.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, infra.WrapRepoErr("failed to parse bid amount", err)
	}
	return &hb, nil
}
