package queue

import (
	"context"

	"gavel/internal/pkg/config"
	"gavel/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// Producer writes notification tasks to the shared queue topic. Writes are
// synchronous with full acks: the sweep only considers an auction handed off
// once the broker has durably accepted the task.
type Producer struct {
	w *kafka.Writer
}

func NewProducer(cfg config.KafkaConfig) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *Producer) EnqueueAuctionWon(ctx context.Context, payload AuctionWonPayload) error {
	return p.publish(ctx, TaskAuctionWon, payload.AuctionID.String(), payload)
}

func (p *Producer) EnqueueAuctionExpired(ctx context.Context, payload AuctionExpiredPayload) error {
	return p.publish(ctx, TaskAuctionExpired, payload.AuctionID.String(), payload)
}

func (p *Producer) publish(ctx context.Context, taskType, key string, payload any) error {
	env, err := NewEnvelope(taskType, payload)
	if err != nil {
		return errs.Wrap(err, "failed to build task envelope")
	}
	body, err := marshalEnvelope(env)
	if err != nil {
		return errs.Wrap(err, "failed to marshal task envelope")
	}
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: body}); err != nil {
		return errs.Wrap(err, "failed to enqueue task")
	}
	return nil
}

func (p *Producer) Close() error {
	return p.w.Close()
}
