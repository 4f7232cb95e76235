package components

import (
	"context"
	"log/slog"

	"gavel/internal/infra/queue"
	"gavel/internal/pkg/config"
	"gavel/internal/usecase/commands"
	"gavel/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
		fx.Annotate(
			worker.NewLogNotifier,
			fx.As(new(worker.Notifier)),
		),
	),
	fx.Invoke(
		runSweeper,
		runConsumer,
	),
)

func NewSweeper(lifecycle commands.LifecycleCommands, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(lifecycle, cfg.Sweep.Interval, logger)
}

func runSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func runConsumer(lc fx.Lifecycle, consumer *queue.Consumer, notifier worker.Notifier, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	handle := func(ctx context.Context, env queue.Envelope) error {
		return worker.Dispatch(ctx, notifier, env)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := consumer.Start(ctx, handle); err != nil {
					logger.Error("notification consumer stopped", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
