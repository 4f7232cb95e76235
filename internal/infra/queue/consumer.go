package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gavel/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// Handler must return nil only when the task is fully processed; the offset
// is committed on success, so a failed task is delivered again.
type Handler func(ctx context.Context, env Envelope) error

// messageSource is the slice of kafka.Reader the consumer loop needs.
type messageSource interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

const (
	retryBaseBackoff = 200 * time.Millisecond
	retryMaxBackoff  = 30 * time.Second
)

type Consumer struct {
	src     messageSource
	logger  *slog.Logger
	backoff time.Duration
}

func NewConsumer(cfg config.KafkaConfig, logger *slog.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.ConsumerGroup,
		Topic:          cfg.NotificationsTopic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	return &Consumer{src: r, logger: logger, backoff: retryBaseBackoff}
}

// Start blocks until ctx is canceled. A failed task is retried in place;
// fetching the next message before this one succeeds would let a later
// commit advance the group offset past it and lose it for good. Retries are
// unbounded; a dead-letter path is a known gap.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.src.Close()

	for {
		m, err := c.src.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		var env Envelope
		if err := json.Unmarshal(m.Value, &env); err != nil {
			// A message that can never decode would redeliver forever; drop it.
			c.logger.Error("dropping undecodable task", "offset", m.Offset, "error", err.Error())
			if err := c.src.CommitMessages(ctx, m); err != nil {
				c.logger.Warn("failed to commit dropped task", "error", err.Error())
			}
			continue
		}

		if err := c.handleUntilDone(ctx, h, env, m.Offset); err != nil {
			return nil
		}

		if err := c.src.CommitMessages(ctx, m); err != nil {
			c.logger.Warn("failed to commit task offset", "offset", m.Offset, "error", err.Error())
		}
	}
}

// handleUntilDone retries the same task with capped exponential backoff until
// the handler succeeds or ctx is done. The non-nil return is always a ctx
// error; the task stays uncommitted and is redelivered after restart.
func (c *Consumer) handleUntilDone(ctx context.Context, h Handler, env Envelope, offset int64) error {
	delay := c.backoff
	for {
		if err := h(ctx, env); err == nil {
			return nil
		} else {
			c.logger.Error("task processing failed, retrying",
				"type", env.Type, "offset", offset, "retry_in", delay, "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > retryMaxBackoff {
			delay = retryMaxBackoff
		}
	}
}

func marshalEnvelope(env Envelope) ([]byte, error) {
	return json.Marshal(env)
}
