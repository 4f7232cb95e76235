package worker

import (
	"context"
	"log/slog"
	"time"

	"gavel/internal/usecase/commands"
)

// Sweeper drives the auction lifecycle on a fixed interval. It has no
// external trigger and never terminates on its own: a failed run is logged
// and the next tick retries from scratch.
type Sweeper struct {
	lifecycle commands.LifecycleCommands
	interval  time.Duration
	logger    *slog.Logger
}

func NewSweeper(lifecycle commands.LifecycleCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		lifecycle: lifecycle,
		interval:  interval,
		logger:    logger,
	}
}

// Run blocks until ctx is canceled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("auction sweeper started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auction sweeper stopped")
			return
		case <-ticker.C:
			if err := s.lifecycle.CloseExpiredAuctions(ctx); err != nil {
				s.logger.Error("sweep run failed", "error", err.Error())
			}
		}
	}
}
