package infra

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour behind a Database.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Database bundles the shared connection pool with its dialect.
type Database struct {
	DB      *sql.DB
	Dialect Dialect
}

// Close releases the underlying pool.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// ParseDatabaseURL resolves the driver name, DSN and dialect for a DATABASE_URL value.
// Postgres URLs go through the pgx stdlib driver, everything else is treated as a SQLite path.
func ParseDatabaseURL(raw string) (driver, dsn string, dialect Dialect, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", "", fmt.Errorf("database url is required")
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return "pgx", raw, DialectPostgres, nil
	}
	path := raw
	for _, prefix := range []string{"sqlite://", "sqlite:", "file:"} {
		if strings.HasPrefix(lower, prefix) {
			path = raw[len(prefix):]
			break
		}
	}
	if path == "" {
		return "", "", "", fmt.Errorf("sqlite path is empty")
	}
	return "sqlite", path, DialectSQLite, nil
}

// NewDatabase opens and pings the database described by cfg.DatabaseURL.
func NewDatabase(ctx context.Context, cfg *Config) (*Database, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	return OpenDatabase(ctx, cfg.DatabaseURL)
}

// OpenDatabase opens a connection pool for the given DATABASE_URL value.
func OpenDatabase(ctx context.Context, url string) (*Database, error) {
	driver, dsn, dialect, err := ParseDatabaseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	if dialect == DialectSQLite {
		if dsn != ":memory:" {
			if dir := filepath.Dir(dsn); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("ensure database directory: %w", err)
				}
			}
		}
		dsn = withSQLitePragmas(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	switch dialect {
	case DialectSQLite:
		// one connection keeps :memory: databases shared and lets SQLite serialize writers
		db.SetMaxOpenConns(1)
	case DialectPostgres:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
		db.SetConnMaxIdleTime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &Database{DB: db, Dialect: dialect}, nil
}

func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}
