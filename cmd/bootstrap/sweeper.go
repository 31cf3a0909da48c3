package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"fieldsync/internal/pkg/config"
	"fieldsync/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs the maintenance pass on a ticker for the lifetime of the app.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, maint commands.MaintenanceCommands, logger *slog.Logger) {
	if !cfg.Sweep.Enabled || cfg.Sweep.Interval <= 0 {
		logger.Info("maintenance sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				runSweeper(ctx, cfg.Sweep.Interval, maint, logger)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func runSweeper(ctx context.Context, interval time.Duration, maint commands.MaintenanceCommands, logger *slog.Logger) {
	logger.Info("maintenance sweeper started", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("maintenance sweeper stopped")
			return
		case <-ticker.C:
			// failures are logged by the sweep itself
			_, _ = maint.Sweep(ctx)
		}
	}
}
