package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
	"github.com/ersonp/dex-core/internal/infrastructure/jsonstore"
	"github.com/ersonp/dex-core/internal/infrastructure/relationaldb/sqlite"
)

func TestOpenModeStore(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg := config.Default()
		store, err := openModeStore(cfg, t.TempDir())
		require.NoError(t, err)
		assert.IsType(t, &jsonstore.Store{}, store)
	})

	t.Run("sqlite creates directory", func(t *testing.T) {
		cfg := config.Default()
		cfg.Modes.Backend = config.BackendSQLite
		base := t.TempDir()

		store, err := openModeStore(cfg, base)
		require.NoError(t, err)
		repo, ok := store.(*sqlite.Repository)
		require.True(t, ok)
		defer repo.Close()

		assert.Equal(t, filepath.Join(base, ".dex", "modes.db"), repo.Path())
		_, ok = store.(ports.SchemaManager)
		assert.True(t, ok)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Modes.Backend = "redis"
		_, err := openModeStore(cfg, t.TempDir())
		require.Error(t, err)
	})
}

func TestWithDepsAt_ModeRoundTrip(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			t.Setenv("DEX_MODES_BACKEND", backend)
			base := t.TempDir()
			ctx := context.Background()

			err := withDepsAt(ctx, base, func(d *Deps) error {
				_, err := d.ModeHandler.HandleSet(ctx, 25, "boxed")
				return err
			})
			require.NoError(t, err)

			// A fresh set of dependencies sees the saved mode.
			err = withDepsAt(ctx, base, func(d *Deps) error {
				status, err := d.ModeHandler.HandleGet(ctx, 25)
				require.NoError(t, err)
				assert.Equal(t, entities.ModeBoxed, status)
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestWithDepsAt_InvalidConfig(t *testing.T) {
	t.Setenv("DEX_API_CONCURRENCY", "0")

	err := withDepsAt(context.Background(), t.TempDir(), func(*Deps) error {
		t.Fatal("callback must not run")
		return nil
	})
	require.ErrorContains(t, err, "loading config")
}
