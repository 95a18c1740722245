package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/BuzzLyutic/task-store-api/internal/model"
)

// setupPostgres поднимает PostgreSQL в контейнере
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx))
	return pool
}

func TestPostgresSnapshotter(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	snap, err := NewPostgresSnapshotter(ctx, pool, "default")
	require.NoError(t, err)

	t.Run("load before first save", func(t *testing.T) {
		_, err := snap.Load(ctx)
		assert.ErrorIs(t, err, ErrIO)
	})

	t.Run("round trip", func(t *testing.T) {
		db := sampleDatabase()
		require.NoError(t, snap.Save(ctx, db))

		loaded, err := snap.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, db.Tasks, loaded.Tasks)
		assert.Equal(t, db.Users, loaded.Users)
	})

	t.Run("upsert keeps one row", func(t *testing.T) {
		require.NoError(t, snap.Save(ctx, model.NewDatabase()))

		var count int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM store_snapshots").Scan(&count))
		assert.Equal(t, 1, count)

		loaded, err := snap.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded.Tasks)
	})

	t.Run("snapshots are isolated by name", func(t *testing.T) {
		other, err := NewPostgresSnapshotter(ctx, pool, "other")
		require.NoError(t, err)
		require.NoError(t, other.Save(ctx, sampleDatabase()))

		loaded, err := snap.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded.Tasks)
	})
}
