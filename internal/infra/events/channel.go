package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const topicFormat = "auction:%s:events"

// BidUpdate is the event contract pushed to observers of an auction topic.
type BidUpdate struct {
	AuctionID  uuid.UUID       `json:"auctionId"`
	Amount     decimal.Decimal `json:"amount"`
	BidderName string          `json:"bidderName"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Channel fans bid updates out over redis pub/sub, one topic per auction.
// Delivery is at-most-once to currently connected observers; it is never on
// the durability path.
type Channel struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func NewChannel(rdb *redis.Client, logger *slog.Logger) *Channel {
	return &Channel{rdb: rdb, logger: logger}
}

func Topic(auctionID uuid.UUID) string {
	return fmt.Sprintf(topicFormat, auctionID)
}

func (c *Channel) PublishBidUpdate(ctx context.Context, ev BidUpdate) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return c.rdb.Publish(ctx, Topic(ev.AuctionID), body).Err()
}

// Subscribe joins the auction's topic and streams decoded events until ctx is
// done or the returned cancel func is called.
func (c *Channel) Subscribe(ctx context.Context, auctionID uuid.UUID) (<-chan BidUpdate, func()) {
	sub := c.rdb.Subscribe(ctx, Topic(auctionID))
	out := make(chan BidUpdate, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev BidUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				c.logger.Warn("dropping malformed bid_update event",
					"topic", msg.Channel, "error", err.Error())
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		if err := sub.Close(); err != nil {
			c.logger.Warn("failed to close subscription", "error", err.Error())
		}
	}
	return out, cancel
}
