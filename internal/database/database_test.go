package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/realgold/showcase/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.SlideRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, SeedDefaults(context.Background(), db))
	return repository.NewSlideRepo(db)
}

func TestMigrationsAreRepeatable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	require.NoError(t, RunMigrations(dbPath))
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM slides").Scan(&count))
	require.Equal(t, 3, count)
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM slide_stats").Scan(&count))
	require.Equal(t, 6, count)
}

func TestSeededDeckRoundTrips(t *testing.T) {
	t.Parallel()

	repo := openTestDB(t)
	slides, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, slides, 3)

	want := DefaultSlides()
	for i, s := range slides {
		require.Equal(t, i, s.Position)
		require.Equal(t, want[i].ID, s.ID)
		require.Equal(t, want[i].TabLabel, s.TabLabel)
		require.Equal(t, want[i].Headline, s.Headline)
		require.Equal(t, want[i].Stats, s.Stats)
		require.False(t, s.CreatedAt.IsZero())
	}
}
