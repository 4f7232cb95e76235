package readstore

import (
	"context"
	"errors"
	"fmt"

	"gavel/internal/infra"
	"gavel/internal/infra/db"
	"gavel/internal/pkg/clock"
	"gavel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AuctionReadStore struct {
	db    db.DBTX
	clock clock.Clock
}

func NewAuctionReadStore(db db.DBTX, clock clock.Clock) *AuctionReadStore {
	return &AuctionReadStore{db: db, clock: clock}
}

func (r *AuctionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuctionView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.seller_id, u.name, u.email, a.title, a.description, a.status,
		       a.starting_price, a.current_price, a.start_time, a.end_time, a.image_url,
		       a.created_at, a.updated_at
		FROM auctions a
		JOIN users u ON u.id = a.seller_id
		WHERE a.id = $1`, id)

	var (
		view          queries.AuctionView
		startingPrice string
		currentPrice  string
	)
	err := row.Scan(
		&view.ID, &view.SellerID, &view.SellerName, &view.SellerEmail,
		&view.Title, &view.Description, &view.Status,
		&startingPrice, &currentPrice, &view.StartTime, &view.EndTime,
		&view.ImageURL, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction view", err)
	}

	if view.StartingPrice, err = decimal.NewFromString(startingPrice); err != nil {
		return nil, infra.WrapRepoErr("failed to parse starting price", err)
	}
	if view.CurrentPrice, err = decimal.NewFromString(currentPrice); err != nil {
		return nil, infra.WrapRepoErr("failed to parse current price", err)
	}
	return &view, nil
}

func (r *AuctionReadStore) List(ctx context.Context, filter queries.AuctionFilter) (*queries.AuctionPage, error) {
	where, args := BuildListFilter(filter, r.clock.Now())

	var total int64
	countSQL := `SELECT count(*) FROM auctions a WHERE ` + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count auctions", err)
	}

	listSQL := `
		SELECT a.id, u.name, a.title, a.status, a.current_price, a.end_time, a.image_url, a.created_at
		FROM auctions a
		JOIN users u ON u.id = a.seller_id
		WHERE ` + where + `
		ORDER BY a.created_at DESC
		LIMIT ` + fmt.Sprintf("$%d", len(args)+1) + ` OFFSET ` + fmt.Sprintf("$%d", len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list auctions", err)
	}
	defer rows.Close()

	items := make([]queries.AuctionListItem, 0, filter.Limit)
	for rows.Next() {
		var (
			item  queries.AuctionListItem
			price string
		)
		if err := rows.Scan(&item.ID, &item.SellerName, &item.Title, &item.Status,
			&price, &item.EndTime, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan auction list item", err)
		}
		if item.CurrentPrice, err = decimal.NewFromString(price); err != nil {
			return nil, infra.WrapRepoErr("failed to parse current price", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read auction list", err)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &queries.AuctionPage{
		Items: items,
		Meta: queries.PageMeta{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	}, nil
}
