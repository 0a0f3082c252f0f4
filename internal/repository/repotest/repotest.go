// Package repotest provides an in-memory database with the application
// schema applied, for tests that exercise the stores end to end.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/productapi/productapi-go/internal/repository"
)

// NewDB returns a migrated in-memory SQLite pool that is closed when the test ends.
func NewDB(tb testing.TB) *sql.DB {
	tb.Helper()

	ctx := context.Background()
	db, err := repository.NewDB(ctx, repository.Options{
		Driver: repository.DriverSQLite,
		DSN:    ":memory:",
	})
	if err != nil {
		tb.Fatalf("repository.NewDB() unexpected error: %v", err)
	}
	tb.Cleanup(func() { db.Close() })

	if err := repository.Migrate(ctx, db, repository.DriverSQLite); err != nil {
		tb.Fatalf("repository.Migrate() unexpected error: %v", err)
	}
	return db
}
