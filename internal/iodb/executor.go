// Package iodb implements query execution using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/gnquery/pkg/config"
	"github.com/gnames/gnquery/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxExecutor implements db.Executor using pgxpool for connection
// pooling.
type pgxExecutor struct {
	pool *pgxpool.Pool
}

// NewPgxExecutor creates a new executor (without connecting).
func NewPgxExecutor() db.Executor {
	return &pgxExecutor{}
}

// DSN builds a connection string from the configuration.
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)
}

// Connect establishes a connection pool and verifies it with a ping.
func (p *pgxExecutor) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	// queries are read-only and run one at a time from the CLI
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxExecutor) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Execute runs sql and reads all rows into memory.
func (p *pgxExecutor) Execute(
	ctx context.Context,
	sql string,
	args ...any,
) (*db.Rows, error) {
	if p.pool == nil {
		return nil, NotConnectedError()
	}

	start := time.Now()
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, NewQueryError(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	res := db.Rows{Columns: make([]string, len(fields))}
	for i := range fields {
		res.Columns[i] = fields[i].Name
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, NewScanRowError(err)
		}
		res.Values = append(res.Values, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, NewQueryError(err)
	}

	slog.Info("Query executed",
		"rows", res.Len(), "duration", time.Since(start).String())
	return &res, nil
}
