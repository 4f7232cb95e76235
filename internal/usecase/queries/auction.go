package queries

//go:generate mockgen -source=auction.go -destination=../../../tests/mock/queries/auction.go -package=queriesmock

import (
	"context"

	"gavel/internal/infra"
	"gavel/internal/pkg/errs"

	"github.com/google/uuid"
)

type AuctionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	List(ctx context.Context, filter AuctionFilter) (*AuctionPage, error)
}

type AuctionQueries interface {
	GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error)
	ListAuctions(ctx context.Context, filter AuctionFilter) (*AuctionPage, error)
}

type auctionQueriesImpl struct {
	readStore AuctionReadStore
}

func NewAuctionQueries(readStore AuctionReadStore) AuctionQueries {
	return &auctionQueriesImpl{readStore: readStore}
}

func (q *auctionQueriesImpl) GetAuction(ctx context.Context, id uuid.UUID) (*AuctionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuctionNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *auctionQueriesImpl) ListAuctions(ctx context.Context, filter AuctionFilter) (*AuctionPage, error) {
	page, err := q.readStore.List(ctx, filter.Normalize())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return page, nil
}
