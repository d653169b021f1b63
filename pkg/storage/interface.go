// Package storage defines the storage interfaces the workbench relies on to
// keep a history of benchmark runs. Backends (e.g. PostgreSQL) live in
// sub-packages.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"advent/pkg/domain"
	"context"
	"time"
)

// RunPage is a page of benchmark runs with an optional cursor for the next page.
type RunPage struct {
	// Runs holds the runs of the page, newest first.
	Runs []domain.BenchmarkRun
	// NextCursor is the creation time to pass as cursor for the next page. It
	// is nil on the last page.
	NextCursor *time.Time
}

// HistoryStorage persists benchmark runs together with their day results.
type HistoryStorage interface {
	// StoreRun persists a run and its results atomically and returns the stored
	// run with generated fields filled in. A zero ID is replaced by a new one.
	StoreRun(ctx context.Context, run domain.BenchmarkRun) (*domain.BenchmarkRun, error)
	// RunByID returns the run with the given ID, or nil when it does not exist.
	RunByID(ctx context.Context, id domain.RunID) (*domain.BenchmarkRun, error)
	// Runs returns the runs of a year created before cursor (no bound when
	// cursor is zero), newest first, at most limit of them.
	Runs(ctx context.Context, year int, cursor time.Time, limit uint) (RunPage, error)
	// LatestRun returns the most recent run of a year, or nil when there is none.
	LatestRun(ctx context.Context, year int) (*domain.BenchmarkRun, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	HistoryStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations should become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success
	// or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
