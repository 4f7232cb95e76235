package bootstrap

import (
	"context"
	"log/slog"

	"gavel/internal/infra/queue"
	"gavel/internal/pkg/config"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewTaskProducer,
		NewTaskConsumer,
	),
)

func NewTaskConsumer(cfg config.Config, logger *slog.Logger) *queue.Consumer {
	return queue.NewConsumer(cfg.Kafka, logger)
}

func NewTaskProducer(lc fx.Lifecycle, cfg config.Config) *queue.Producer {
	producer := queue.NewProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	return producer
}
