package storage

import "advent/pkg/serrors"

// Transaction state errors. Both are internal: they only surface when a caller
// misuses a handle.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that already is a transaction.
	ErrAlreadyInTx = serrors.With(serrors.ErrInternal, "history storage already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.With(serrors.ErrInternal, "history storage not in tx")
)
