package bootstrap

import (
	"log/slog"

	"fieldsync/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logPolicy),
)

// logPolicy records the time windows the process runs with, since they
// decide when exit requests expire and when idempotency records are swept.
func logPolicy(cfg config.Config, logger *slog.Logger) {
	logger.Info("policy loaded",
		"exit_auth_deadline", cfg.Exit.AuthDeadline,
		"idempotency_ttl", cfg.Idempotency.TTL,
		"sweep_enabled", cfg.Sweep.Enabled,
		"sweep_interval", cfg.Sweep.Interval,
		"creator_edit_window", cfg.Conflict.CreatorEditWindow,
		"crew_edit_window", cfg.Conflict.CrewEditWindow,
	)
}
