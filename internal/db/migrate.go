// Package db owns the relational schema. Migrations are embedded in the
// binary and applied at every start-up; each statement is idempotent so a
// database created before goose tracking existed is adopted as-is.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"outreach/internal/infra"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrations embed.FS

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate creates every table that does not exist yet. It never drops or truncates data.
func Migrate(ctx context.Context, db *infra.Database, logger infra.Logger) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("migrate: database is required")
	}

	var dialect, dir string
	switch db.Dialect {
	case infra.DialectSQLite:
		dialect, dir = "sqlite3", "migrations/sqlite"
	case infra.DialectPostgres:
		dialect, dir = "pgx", "migrations/postgres"
	default:
		return fmt.Errorf("migrate: unsupported dialect %q", db.Dialect)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(infra.GooseLogger{L: logger})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: set dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db.DB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
