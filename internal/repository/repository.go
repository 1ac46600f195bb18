package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultMaxConns bounds the pool; a single marketing-site backend does
// not need more.
const defaultMaxConns = 10

// NewPool creates a PostgreSQL connection pool and verifies connectivity.
// The pool is constructed once at startup, injected into the
// repositories, and closed on shutdown.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns == 0 || cfg.MaxConns > defaultMaxConns {
		cfg.MaxConns = defaultMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
