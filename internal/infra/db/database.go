package db

import (
	"context"
	"strconv"
	"time"

	"fieldsync/internal/pkg/config"
	"fieldsync/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectTimeout  = 10 * time.Second
	applicationName = "fieldsync"
)

// Connect opens a pool and pings it. Sessions run in UTC so that timestamptz
// values round-trip with the server clock.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 10 * time.Minute

	params := poolCfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	params["timezone"] = "UTC"
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Transient(errs.Wrapf(err, "failed to reach database %s:%s", cfg.Host, cfg.Port))
	}
	return pool, nil
}
