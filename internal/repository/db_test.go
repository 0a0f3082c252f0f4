package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/productapi/productapi-go/internal/repository"
)

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := repository.NewDB(context.Background(), repository.Options{Driver: "postgres", DSN: "x"})
	require.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := repository.NewDB(ctx, repository.Options{Driver: repository.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.Migrate(ctx, db, repository.DriverSQLite))
	require.NoError(t, repository.Migrate(ctx, db, repository.DriverSQLite))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	require.Error(t, repository.Migrate(context.Background(), nil, "oracle"))
}
