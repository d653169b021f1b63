package postgres

import (
	root "advent"
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded history migrations. It returns the schema
// version afterwards and the versions applied by this call.
func Migrate(ctx context.Context, db *sql.DB) (int64, []int64, error) {
	fsys, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return 0, nil, fmt.Errorf("could not open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return 0, nil, fmt.Errorf("could not create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("could not migrate history database: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, applied, fmt.Errorf("could not read history database version: %w", err)
	}

	return version, applied, nil
}
