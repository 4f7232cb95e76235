package worker

import (
	"context"
	"fmt"
	"log/slog"

	"gavel/internal/infra/queue"
)

// Notifier is the outbound side of the task queue: the actual delivery
// channel (email) lives outside this service.
type Notifier interface {
	AuctionWon(ctx context.Context, payload queue.AuctionWonPayload) error
	AuctionExpired(ctx context.Context, payload queue.AuctionExpiredPayload) error
}

// LogNotifier records the notification intent; it stands in for the email
// dispatcher this service hands off to.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) AuctionWon(_ context.Context, payload queue.AuctionWonPayload) error {
	n.logger.Info("dispatching auction won notification",
		"auction_id", payload.AuctionID,
		"winner_email", payload.WinnerEmail,
		"seller_email", payload.SellerEmail,
		"amount", payload.Amount.String(),
		"title", payload.Title,
	)
	return nil
}

func (n *LogNotifier) AuctionExpired(_ context.Context, payload queue.AuctionExpiredPayload) error {
	n.logger.Info("dispatching auction expired notification",
		"auction_id", payload.AuctionID,
		"seller_email", payload.SellerEmail,
		"title", payload.Title,
	)
	return nil
}

// Dispatch routes one queue envelope to the notifier. Returning an error
// leaves the message uncommitted so the queue redelivers it.
func Dispatch(ctx context.Context, n Notifier, env queue.Envelope) error {
	switch env.Type {
	case queue.TaskAuctionWon:
		payload, err := queue.UnwrapPayload[queue.AuctionWonPayload](env.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		return n.AuctionWon(ctx, payload)
	case queue.TaskAuctionExpired:
		payload, err := queue.UnwrapPayload[queue.AuctionExpiredPayload](env.Payload)
		if err != nil {
			return fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		return n.AuctionExpired(ctx, payload)
	default:
		return fmt.Errorf("unknown task type %q", env.Type)
	}
}
