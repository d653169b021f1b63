package advent

import "embed"

// Migrations holds the goose SQL migrations of the history database.
//
//go:embed migrations/*.sql
var Migrations embed.FS
