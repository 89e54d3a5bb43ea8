package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "nested", "modes.json"))
	require.NoError(t, err)
	return store
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestStore_AbsentFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	modes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, modes)
	assert.Empty(t, modes)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := entities.ModeMap{1: entities.ModeBoxed, 386: entities.ModeDexOnly}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_DocumentFormat(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), entities.ModeMap{
		25: entities.ModeDexOnly,
		1:  entities.ModeBoxed,
		7:  entities.ModeNone,
	}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": "boxed", "25": "dex-only"}`, string(data))
}

func TestStore_SaveReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, entities.ModeMap{1: entities.ModeBoxed}))
	require.NoError(t, store.Save(ctx, entities.ModeMap{2: entities.ModeBoxed}))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeMap{2: entities.ModeBoxed}, got)

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "boxed"},
		{name: "non-numeric id", content: `{"pikachu": "boxed"}`},
		{name: "unknown status", content: `{"1": "shiny"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "modes.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			store, err := New(path)
			require.NoError(t, err)

			_, err = store.Load(context.Background())
			require.Error(t, err)
		})
	}
}

func TestStore_AcceptsDisplayLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"4": "ボックス", "5": "図鑑", "6": ""}`), 0644))
	store, err := New(path)
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.ModeMap{4: entities.ModeBoxed, 5: entities.ModeDexOnly}, got)
}
