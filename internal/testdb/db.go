package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds individual setup operations.
const TestTimeout = 10 * time.Second

// urlEnvVars are checked in order for a test database URL.
var urlEnvVars = []string{"FLASHCARDS_TEST_DATABASE_URL", "DATABASE_URL", "FLASHCARDS_DATABASE_URL"}

// GetTestDatabaseURL returns the first configured test database URL, or "".
func GetTestDatabaseURL() string {
	for _, name := range urlEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT opens the test database and applies all migrations.
// The test is skipped when no database URL is configured. The connection is
// closed when the test finishes.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("skipping integration test: DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	db.SetMaxOpenConns(10)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	discard := slog.New(slog.DiscardHandler)
	require.NoError(t, postgres.Migrate(ctx, db, "up", discard), "failed to migrate test database")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "failed to begin test transaction")
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			t.Errorf("failed to roll back test transaction: %v", rbErr)
		}
	}()

	fn(t, tx)
}

// UniqueName returns prefix with a suffix unique to this test run, for
// values that hit unique constraints in committed test data.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
