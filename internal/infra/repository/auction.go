package repository

import (
	"context"
	"errors"
	"time"

	"gavel/internal/domain/auction"
	"gavel/internal/infra"
	"gavel/internal/infra/db"
	"gavel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AuctionRepository struct {
	db db.DBTX
}

func NewAuctionRepository(db db.DBTX) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auctions (id, seller_id, title, description, status, starting_price, current_price, start_time, end_time, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		a.ID(), a.SellerID(), a.Title(), a.Description(), a.Status().String(),
		a.StartingPrice().String(), a.CurrentPrice().String(), a.StartTime(), a.EndTime(), a.ImageURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert auction", err)
	}
	return nil
}

func (r *AuctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.AuctionSnapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, seller_id, title, description, status, starting_price, current_price,
		       start_time, end_time, image_url, created_at, updated_at
		FROM auctions
		WHERE id = $1`, id)

	snap, err := scanAuctionSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("auction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find auction by ID", err)
	}
	return snap, nil
}

// AdvancePrice is the write half of the bid commit: the WHERE clause makes the
// store itself serialize racing committers, so the loser sees zero rows.
func (r *AuctionRepository) AdvancePrice(ctx context.Context, db db.DBTX, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE auctions
		SET current_price = $2, updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE' AND current_price < $2`,
		id, amount.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to advance auction price", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AuctionRepository) FindExpired(ctx context.Context, now time.Time) ([]commands.ExpiredAuction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.title, u.email
		FROM auctions a
		JOIN users u ON u.id = a.seller_id
		WHERE a.status = 'ACTIVE' AND a.end_time < $1
		ORDER BY a.end_time`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query expired auctions", err)
	}
	defer rows.Close()

	var out []commands.ExpiredAuction
	for rows.Next() {
		var e commands.ExpiredAuction
		if err := rows.Scan(&e.ID, &e.Title, &e.SellerEmail); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired auction", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read expired auctions", err)
	}
	return out, nil
}

func (r *AuctionRepository) MarkStatus(ctx context.Context, id uuid.UUID, status auction.Status) (bool, error) {
	if !auction.StatusActive.CanTransitionTo(status) {
		return false, infra.WrapRepoErr("status is not a terminal state", auction.ErrStatusNotTransitable)
	}
	// Guarded on ACTIVE so re-running the sweep over an already resolved
	// auction is a no-op rather than a backward transition.
	tag, err := r.db.Exec(ctx, `
		UPDATE auctions
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'ACTIVE'`,
		id, status.String(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update auction status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *AuctionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM auctions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete auction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("auction not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanAuctionSnapshot(row pgx.Row) (*commands.AuctionSnapshot, error) {
	var (
		snap          commands.AuctionSnapshot
		status        string
		startingPrice string
		currentPrice  string
	)
	err := row.Scan(
		&snap.ID, &snap.SellerID, &snap.Title, &snap.Description, &status,
		&startingPrice, &currentPrice, &snap.StartTime, &snap.EndTime,
		&snap.ImageURL, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snap.Status = auction.Status(status)
	if !snap.Status.IsValid() {
		return nil, auction.ErrInvalidStatus
	}
	if snap.StartingPrice, err = decimal.NewFromString(startingPrice); err != nil {
		return nil, err
	}
	if snap.CurrentPrice, err = decimal.NewFromString(currentPrice); err != nil {
		return nil, err
	}
	return &snap, nil
}
