// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/lighthouse-hq/lighthouse/internal/logging"
	"github.com/lighthouse-hq/lighthouse/internal/monitoring"
	"github.com/lighthouse-hq/lighthouse/internal/tracing"
)

const DefaultTxTimeout = time.Minute

type txContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
	// TxTimeout bounds a WithTx transaction, measured from its first statement.
	TxTimeout time.Duration
}

// lazyTx begins its transaction on the first statement, so a WithTx block
// that only fails validation never touches the database.
type lazyTx struct {
	db      *sql.DB
	timeout time.Duration

	tx     TxInterface
	cancel context.CancelFunc
	done   bool
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the caller so a cancelled request cannot roll back a
	// transaction WithTx is about to commit
	ctx, cancel := context.WithTimeout(context.Background(), lt.timeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) finish(commit bool) error {
	if lt.cancel != nil {
		defer lt.cancel()
	}

	if lt.tx == nil || lt.done {
		return nil
	}

	lt.done = true

	if commit {
		return lt.tx.Commit()
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

type DBClient struct {
	// pool is kept to be closed alongside db
	pool *pgxpool.Pool
	db   *sql.DB

	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ DBClientInterface = (*DBClient)(nil)

// Statement returns a builder bound to the transaction of ctx when WithTx
// opened one, and to the pool otherwise.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	lt, ok := ctx.Value(txContextKey{}).(*lazyTx)
	if !ok {
		return builder.RunWith(d.db)
	}

	tx, err := lt.get()
	if err != nil {
		d.logger.Errorf("failed to begin transaction, running outside of it: %v", err)
		return builder.RunWith(d.db)
	}

	return builder.RunWith(tx)
}

// WithTx runs fn in a single transaction, committed when fn returns nil and
// rolled back otherwise. Nested calls join the outer transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*lazyTx); ok {
		return fn(ctx)
	}

	lt := &lazyTx{db: d.db, timeout: d.txTimeout}

	if err := fn(context.WithValue(ctx, txContextKey{}, lt)); err != nil {
		if rbErr := lt.finish(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := lt.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks the pool can still reach the database.
func (d *DBClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg and exposes it through database/sql.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(db, tracer, monitor, logger)
	d.pool = pool

	if cfg.TxTimeout > 0 {
		d.txTimeout = cfg.TxTimeout
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened database handle.
func NewDBClientFromDB(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db
	d.txTimeout = DefaultTxTimeout

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
