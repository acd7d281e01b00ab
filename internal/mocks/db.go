package mocks

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

// NewTxDB opens an empty in-memory SQLite database. Service tests use it as
// a source of real *sql.Tx handles for store.RunInTransaction while the
// stores themselves are mocked; no statements ever reach it.
func NewTxDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())
	return db
}

// NewClosedDB returns a database whose BeginTx always fails.
func NewClosedDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return db
}
