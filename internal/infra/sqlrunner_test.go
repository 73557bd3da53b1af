package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markedInsert = `--sql 0f4a1c8e-6b2d-4e1b-9a57-3c2d1e0f9a11
insert into donations (name, amount) values (?, ?);
`

func TestExtractMarker(t *testing.T) {
	marker, body, err := extractMarker(markedInsert)
	require.NoError(t, err)
	assert.Equal(t, "0f4a1c8e-6b2d-4e1b-9a57-3c2d1e0f9a11", marker)
	assert.Equal(t, "insert into donations (name, amount) values (?, ?);", body)

	_, _, err = extractMarker("select 1")
	assert.Error(t, err)

	_, _, err = extractMarker("   ")
	assert.Error(t, err)
}

func TestRebindDollar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "select * from users where email = ?", want: "select * from users where email = $1"},
		{in: "values (?, ?, ?)", want: "values ($1, $2, $3)"},
		{in: "where note = '?' and id = ?", want: "where note = '?' and id = $1"},
		{in: "select 1", want: "select 1"},
	}
	for _, tc := range tests {
		if got := rebindDollar(tc.in); got != tc.want {
			t.Fatalf("rebindDollar(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSQLRunnerRejectsUnmarkedQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewSQLRunner(db, DialectSQLite, zerolog.Nop())
	_, err = runner.Exec(context.Background(), "delete from users")
	require.Error(t, err)

	err = runner.QueryRow(context.Background(), "select 1").Scan(new(int))
	require.Error(t, err)

	_, err = runner.Query(context.Background(), "select 1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRunnerRebindsForPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("insert into donations (name, amount) values ($1, $2);").
		WithArgs("A", 50.0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	runner := NewSQLRunner(db, DialectPostgres, zerolog.Nop())
	_, err = runner.Exec(context.Background(), markedInsert, "A", 50.0)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRunnerPropagatesDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk I/O error")
	mock.ExpectExec("insert into donations (name, amount) values (?, ?);").WillReturnError(boom)

	runner := NewSQLRunner(db, DialectSQLite, zerolog.Nop())
	_, err = runner.Exec(context.Background(), markedInsert, "A", 50.0)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
