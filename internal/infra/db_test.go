package infra

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		driver  string
		dsn     string
		dialect Dialect
		wantErr bool
	}{
		{name: "postgres", in: "postgres://u:p@localhost:5432/app", driver: "pgx", dsn: "postgres://u:p@localhost:5432/app", dialect: DialectPostgres},
		{name: "postgresql", in: "postgresql://localhost/app", driver: "pgx", dsn: "postgresql://localhost/app", dialect: DialectPostgres},
		{name: "sqlite scheme", in: "sqlite://data/app.db", driver: "sqlite", dsn: "data/app.db", dialect: DialectSQLite},
		{name: "bare path", in: "/var/lib/app.db", driver: "sqlite", dsn: "/var/lib/app.db", dialect: DialectSQLite},
		{name: "memory", in: "sqlite::memory:", driver: "sqlite", dsn: ":memory:", dialect: DialectSQLite},
		{name: "empty", in: "  ", wantErr: true},
		{name: "empty sqlite path", in: "sqlite://", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			driver, dsn, dialect, err := ParseDatabaseURL(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.driver, driver)
			assert.Equal(t, tc.dsn, dsn)
			assert.Equal(t, tc.dialect, dialect)
		})
	}
}

func TestOpenDatabaseCreatesSQLiteDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.db")

	db, err := OpenDatabase(context.Background(), "sqlite://"+path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, DialectSQLite, db.Dialect)
	assert.DirExists(t, filepath.Dir(path))
}
