package commands

//go:generate mockgen -source=bid.go -destination=../../../tests/mock/commands/bid.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/domain/bid"
	"gavel/internal/infra"
	"gavel/internal/infra/db"
	"gavel/internal/infra/events"
	"gavel/internal/pkg/clock"
	"gavel/internal/pkg/errs"
	"gavel/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BidView struct {
	ID         uuid.UUID
	AuctionID  uuid.UUID
	BidderID   uuid.UUID
	BidderName string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

type BidCommands interface {
	PlaceBid(ctx context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal) (*BidView, error)
}

type bidUseCaseImpl struct {
	auctions AuctionRepository
	bids     BidRepository
	users    UserRepository
	prices   PriceCache
	events   EventPublisher
	uow      shared.UnitOfWork
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBidCommands(
	auctions AuctionRepository,
	bids BidRepository,
	users UserRepository,
	prices PriceCache,
	events EventPublisher,
	uow shared.UnitOfWork,
	clock clock.Clock,
	logger *slog.Logger,
) BidCommands {
	return &bidUseCaseImpl{
		auctions: auctions,
		bids:     bids,
		users:    users,
		prices:   prices,
		events:   events,
		uow:      uow,
		clock:    clock,
		logger:   logger,
	}
}

// PlaceBid is the write path for one bid: fast-path cache reject,
// authoritative re-validation, atomic commit of {bid insert, price advance},
// then advisory cache write and broadcast. Only the commit is on the
// durability path; everything after it is best-effort.
func (u *bidUseCaseImpl) PlaceBid(ctx context.Context, auctionID, bidderID uuid.UUID, amount decimal.Decimal) (*BidView, error) {
	cached := u.readCachedPrice(ctx, auctionID)
	if auction.BelowCachedPrice(cached, amount) {
		return nil, &auction.PriceTooLowError{CurrentPrice: *cached}
	}

	snap, err := u.auctions.FindByID(ctx, auctionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuctionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Self-heal: the next reader gets the fast path back.
	if auction.NeedsCacheHeal(cached) {
		if err := u.prices.Set(ctx, auctionID, snap.CurrentPrice); err != nil {
			u.logger.Warn("failed to heal price cache", "auction_id", auctionID, "error", err.Error())
		}
	}

	entity := auction.Reconstruct(
		snap.ID, snap.SellerID, snap.Title, snap.Description, snap.Status,
		snap.StartingPrice, snap.CurrentPrice, snap.StartTime, snap.EndTime,
		snap.ImageURL, snap.CreatedAt, snap.UpdatedAt,
	)
	if err := entity.CanAcceptBid(bidderID, amount, u.clock.Now()); err != nil {
		return nil, err
	}

	bidder, err := u.users.FindByID(ctx, bidderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	newBid, err := bid.NewBid(auctionID, bidderID, amount, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.commitBid(ctx, newBid); err != nil {
		return nil, err
	}

	// Steps below are advisory: the bid is already committed, so none of
	// these failures may fail the request.
	if err := u.prices.Set(ctx, auctionID, amount); err != nil {
		u.logger.Warn("failed to update price cache after commit",
			"auction_id", auctionID, "error", err.Error())
	}

	ev := events.BidUpdate{
		AuctionID:  auctionID,
		Amount:     amount,
		BidderName: bidder.Name,
		Timestamp:  newBid.CreatedAt(),
	}
	if err := u.events.PublishBidUpdate(ctx, ev); err != nil {
		u.logger.Warn("failed to broadcast bid update",
			"auction_id", auctionID, "error", err.Error())
	}

	return &BidView{
		ID:         newBid.ID(),
		AuctionID:  newBid.AuctionID(),
		BidderID:   newBid.BidderID(),
		BidderName: bidder.Name,
		Amount:     newBid.Amount(),
		CreatedAt:  newBid.CreatedAt(),
	}, nil
}

// commitBid performs the single transaction of the pipeline. The guarded
// price update makes the store serialize concurrent commits on the same
// auction: the loser changes zero rows and is rejected against the price the
// winner just committed.
func (u *bidUseCaseImpl) commitBid(ctx context.Context, b *bid.Bid) error {
	var rejected error

	err := u.uow.Within(ctx, func(ctx context.Context, db db.DBTX) error {
		advanced, err := u.auctions.AdvancePrice(ctx, db, b.AuctionID(), b.Amount())
		if err != nil {
			return err
		}
		if !advanced {
			rejected = u.explainRejection(ctx, b.AuctionID(), b.Amount())
			return rejected
		}
		return u.bids.Create(ctx, db, b)
	})

	if err != nil {
		if rejected != nil {
			return rejected
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// explainRejection re-reads the authoritative row to name the rule the
// conditional update enforced: either a competing bid advanced the price
// first, or the sweep resolved the auction between validation and commit.
func (u *bidUseCaseImpl) explainRejection(ctx context.Context, auctionID uuid.UUID, amount decimal.Decimal) error {
	snap, err := u.auctions.FindByID(ctx, auctionID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.Status != auction.StatusActive {
		return auction.ErrEnded
	}
	return &auction.PriceTooLowError{CurrentPrice: snap.CurrentPrice}
}

// A price-cache read failure degrades to a cache miss: the fast path is an
// optimization and must never make the authoritative path unavailable.
func (u *bidUseCaseImpl) readCachedPrice(ctx context.Context, auctionID uuid.UUID) *decimal.Decimal {
	cached, err := u.prices.Get(ctx, auctionID)
	if err != nil {
		u.logger.Warn("price cache read failed, falling back to store",
			"auction_id", auctionID, "error", err.Error())
		return nil
	}
	return cached
}
