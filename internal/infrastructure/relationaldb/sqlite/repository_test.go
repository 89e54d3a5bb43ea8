package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	for _, table := range []string{"modes", "mode_batches"} {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Should not error when called again
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestRepository_LoadEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	modes, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, modes)
	assert.Empty(t, modes)
}

func TestRepository_SaveLoad(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	want := entities.ModeMap{1: entities.ModeBoxed, 25: entities.ModeDexOnly}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepository_SaveReplacesWholeMapping(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.ModeMap{1: entities.ModeBoxed, 2: entities.ModeBoxed}))
	require.NoError(t, repo.Save(ctx, entities.ModeMap{3: entities.ModeDexOnly, 4: entities.ModeNone}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeMap{3: entities.ModeDexOnly}, got)
}

func TestRepository_Batches(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	timeNow = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
	t.Cleanup(func() { timeNow = time.Now })

	require.NoError(t, repo.Save(ctx, entities.ModeMap{1: entities.ModeBoxed}))
	require.NoError(t, repo.Save(ctx, entities.ModeMap{1: entities.ModeBoxed, 2: entities.ModeDexOnly}))
	require.NoError(t, repo.Save(ctx, entities.ModeMap{}))

	batches, err := repo.Batches(ctx, 2)
	require.NoError(t, err)
	require.Len(t, batches, 2)

	assert.Equal(t, 0, batches[0].Entries)
	assert.Equal(t, 2, batches[1].Entries)
	assert.True(t, batches[0].CreatedAt.After(batches[1].CreatedAt))
	assert.NotEqual(t, batches[0].ID, batches[1].ID)
	assert.Len(t, batches[0].ID, 36)
}

func TestRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.db")
	ctx := context.Background()

	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Save(ctx, entities.ModeMap{151: entities.ModeBoxed}))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.EnsureSchema(ctx))

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeMap{151: entities.ModeBoxed}, got)
}
