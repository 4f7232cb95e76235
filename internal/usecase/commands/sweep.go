package commands

import (
	"context"
	"log/slog"

	"gavel/internal/domain/auction"
	"gavel/internal/infra/queue"
	"gavel/internal/pkg/clock"
	"gavel/internal/pkg/errs"
)

type LifecycleCommands interface {
	CloseExpiredAuctions(ctx context.Context) error
}

type lifecycleUseCaseImpl struct {
	auctions AuctionRepository
	bids     BidRepository
	tasks    TaskEnqueuer
	clock    clock.Clock
	logger   *slog.Logger
}

func NewLifecycleCommands(
	auctions AuctionRepository,
	bids BidRepository,
	tasks TaskEnqueuer,
	clock clock.Clock,
	logger *slog.Logger,
) LifecycleCommands {
	return &lifecycleUseCaseImpl{
		auctions: auctions,
		bids:     bids,
		tasks:    tasks,
		clock:    clock,
		logger:   logger,
	}
}

// CloseExpiredAuctions resolves every ACTIVE auction past its end time.
// Auctions are processed independently: one failure is logged, the auction
// stays ACTIVE, and the next tick retries it.
func (u *lifecycleUseCaseImpl) CloseExpiredAuctions(ctx context.Context) error {
	expired, err := u.auctions.FindExpired(ctx, u.clock.Now())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(expired) == 0 {
		return nil
	}

	u.logger.Info("found expired auctions", "count", len(expired))

	for _, ea := range expired {
		if err := u.closeOne(ctx, ea); err != nil {
			u.logger.Error("failed to close auction",
				"auction_id", ea.ID, "error", err.Error())
		}
	}
	return nil
}

// closeOne enqueues before transitioning: if the status update fails the
// auction stays ACTIVE and is retried, at the cost of a possible duplicate
// task, which at-least-once queue consumers tolerate anyway.
func (u *lifecycleUseCaseImpl) closeOne(ctx context.Context, ea ExpiredAuction) error {
	winner, err := u.bids.HighestForAuction(ctx, ea.ID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if winner != nil {
		payload := queue.AuctionWonPayload{
			AuctionID:   ea.ID,
			WinnerID:    winner.BidderID,
			WinnerEmail: winner.BidderEmail,
			Amount:      winner.Amount,
			SellerEmail: ea.SellerEmail,
			Title:       ea.Title,
		}
		if err := u.tasks.EnqueueAuctionWon(ctx, payload); err != nil {
			return errs.Mark(err, errs.ErrQueueOperationFailed)
		}
		changed, err := u.auctions.MarkStatus(ctx, ea.ID, auction.StatusSold)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if changed {
			u.logger.Info("auction sold",
				"auction_id", ea.ID, "winner_id", winner.BidderID, "amount", winner.Amount.String())
		}
		return nil
	}

	payload := queue.AuctionExpiredPayload{
		AuctionID:   ea.ID,
		SellerEmail: ea.SellerEmail,
		Title:       ea.Title,
	}
	if err := u.tasks.EnqueueAuctionExpired(ctx, payload); err != nil {
		return errs.Mark(err, errs.ErrQueueOperationFailed)
	}
	changed, err := u.auctions.MarkStatus(ctx, ea.ID, auction.StatusClosed)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if changed {
		u.logger.Info("auction closed with no bids", "auction_id", ea.ID)
	}
	return nil
}
