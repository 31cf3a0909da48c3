package bootstrap

import (
	"context"
	"log/slog"

	"fieldsync/internal/infra/db"
	"fieldsync/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			stat := pool.Stat()
			pool.Close()
			logger.Info("database pool closed", "acquired_total", stat.AcquireCount(), "acquire_wait", stat.AcquireDuration())
			return nil
		},
	})
	return pool, nil
}
