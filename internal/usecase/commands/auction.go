package commands

//go:generate mockgen -source=auction.go -destination=../../../tests/mock/commands/auction.go -package=commandsmock

import (
	"context"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/infra"
	"gavel/internal/pkg/clock"
	"gavel/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAuctionParams struct {
	SellerID      uuid.UUID
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
	ImageURL      string
}

type AuctionCommands interface {
	CreateAuction(ctx context.Context, params CreateAuctionParams) (*AuctionSnapshot, error)
	DeleteAuction(ctx context.Context, id uuid.UUID) error
}

type auctionUseCaseImpl struct {
	auctions AuctionRepository
	clock    clock.Clock
}

func NewAuctionCommands(auctions AuctionRepository, clock clock.Clock) AuctionCommands {
	return &auctionUseCaseImpl{
		auctions: auctions,
		clock:    clock,
	}
}

func (u *auctionUseCaseImpl) CreateAuction(ctx context.Context, params CreateAuctionParams) (*AuctionSnapshot, error) {
	entity, err := auction.NewAuction(
		params.SellerID,
		params.Title,
		params.Description,
		params.StartingPrice,
		params.StartTime,
		params.EndTime,
		params.ImageURL,
		u.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := u.auctions.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &AuctionSnapshot{
		ID:            entity.ID(),
		SellerID:      entity.SellerID(),
		Title:         entity.Title(),
		Description:   entity.Description(),
		Status:        entity.Status(),
		StartingPrice: entity.StartingPrice(),
		CurrentPrice:  entity.CurrentPrice(),
		StartTime:     entity.StartTime(),
		EndTime:       entity.EndTime(),
		ImageURL:      entity.ImageURL(),
	}, nil
}

// DeleteAuction is an administrative operation; the bid core itself never
// removes auctions.
func (u *auctionUseCaseImpl) DeleteAuction(ctx context.Context, id uuid.UUID) error {
	if err := u.auctions.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrAuctionNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
