// Package postgres keeps the benchmark history in PostgreSQL. Queries are
// built with goqu on top of a database/sql wrapper around a pgx pool, which is
// also what goose migrates.
package postgres

import (
	"advent/pkg/serrors"
	"advent/pkg/storage"
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options holds the connection settings of the history database.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as sslmode (disable, require, verify-full, ...).
	SslMode string

	// Zero values keep the pgx defaults.
	ConnMaxLifetime    time.Duration
	ConnMaxIdleTime    time.Duration
	MaxOpenConnections int
	MaxIdleConnections int
}

// URL returns the connection string of o.
func (o Options) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": {o.SslMode}}.Encode()
	}

	return u.String()
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.URL())
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid history database settings")
	}

	if o.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(o.MaxOpenConnections) //nolint: gosec
	}
	if o.MaxIdleConnections > 0 {
		cfg.MinConns = int32(o.MaxIdleConnections) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// DB is the part of database/sql both *sql.DB and *sql.Tx provide.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder is the part of goqu used to build history queries. goqu databases
// and transactions both provide it.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
}

// PgSQL is the PostgreSQL history storage. The same type serves as the pooled
// handle (DB is a *sql.DB) and as a transaction (DB is a *sql.Tx).
type PgSQL struct {
	DB      DB
	Builder Builder
	// Pool is nil on transaction handles.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// New connects to the history database. A server that does not answer a ping
// yields an ErrUnavailable error.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "history database %s:%d is not reachable",
			options.Host, options.Port)
	}

	db := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      db,
		Builder: goqu.Dialect(dialect).DB(db),
		Pool:    pool,
	}, nil
}

func (p *PgSQL) tx() (*sql.Tx, bool) {
	tx, ok := p.DB.(*sql.Tx)

	return tx, ok
}

// Close releases the pool. It is a no-op on transaction handles.
func (p *PgSQL) Close() error {
	if p.Pool == nil {
		return nil
	}

	var err error
	if db, ok := p.DB.(*sql.DB); ok {
		err = db.Close()
	}
	p.Pool.Close()

	if err != nil {
		return fmt.Errorf("could not close history database: %w", err)
	}

	return nil
}

// Begin opens a transaction. Nested transactions are not supported.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{DB: tx, Builder: goqu.NewTx(dialect, tx)}, nil
}

// Commit commits the transaction of a handle returned by Begin.
func (p *PgSQL) Commit() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback discards the transaction of a handle returned by Begin.
func (p *PgSQL) Rollback() error {
	tx, ok := p.tx()
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// WithTx runs cb inside a transaction. The transaction is committed when cb
// returns nil and rolled back when it returns an error or panics.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := cb(tx); err != nil {
		return err
	}

	committed = true

	return tx.Commit()
}
