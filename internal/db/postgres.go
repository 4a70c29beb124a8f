package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-editor/internal/config/configs"
)

// NewPostgresPool opens the campaign store pool described by cfg and pings
// it within cfg.PingTimeout. The pool is closed again when the ping fails.
// The caller owns the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConf, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres %s: %w", poolConf.ConnConfig.Host, err)
	}

	logger.Info("postgres pool ready",
		slog.String("host", poolConf.ConnConfig.Host),
		slog.String("database", poolConf.ConnConfig.Database),
		slog.Int("max_conns", int(poolConf.MaxConns)),
		slog.Int("min_conns", int(poolConf.MinConns)),
	)
	return pool, nil
}

// PoolConfig parses cfg.Addr and applies the configured pool bounds. Zero
// bounds keep what the address or pgx chose.
func PoolConfig(cfg configs.Postgres) (*pgxpool.Config, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres address: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConf.MinConns = cfg.MinConns
	}
	if poolConf.MinConns > poolConf.MaxConns {
		return nil, fmt.Errorf("postgres min conns %d exceed max conns %d", poolConf.MinConns, poolConf.MaxConns)
	}
	return poolConf, nil
}
