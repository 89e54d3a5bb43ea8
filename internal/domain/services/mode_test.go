package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func TestModeService_SetGet(t *testing.T) {
	store := mocks.NewModeStore()
	svc := NewModeService(store)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, 25, entities.ModeBoxed))
	status, err := svc.Get(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeBoxed, status)

	status, err = svc.Get(ctx, 26)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeNone, status)
}

func TestModeService_SetPreservesOthers(t *testing.T) {
	store := mocks.NewModeStore()
	store.Modes[1] = entities.ModeDexOnly
	svc := NewModeService(store)

	require.NoError(t, svc.Set(context.Background(), 2, entities.ModeBoxed))
	assert.Equal(t, entities.ModeMap{1: entities.ModeDexOnly, 2: entities.ModeBoxed}, store.Modes)
}

func TestModeService_SetNoneClears(t *testing.T) {
	store := mocks.NewModeStore()
	store.Modes[1] = entities.ModeBoxed
	svc := NewModeService(store)

	require.NoError(t, svc.Set(context.Background(), 1, entities.ModeNone))
	assert.Empty(t, store.Modes)
}

func TestModeService_RejectsOutOfRange(t *testing.T) {
	store := mocks.NewModeStore()
	svc := NewModeService(store)
	ctx := context.Background()

	require.Error(t, svc.Set(ctx, 0, entities.ModeBoxed))
	require.Error(t, svc.Set(ctx, 387, entities.ModeBoxed))
	_, err := svc.Get(ctx, -1)
	require.Error(t, err)
	assert.Equal(t, 0, store.Saves)
}

func TestModeService_List(t *testing.T) {
	store := mocks.NewModeStore()
	store.Modes[25] = entities.ModeDexOnly
	store.Modes[1] = entities.ModeBoxed
	svc := NewModeService(store)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ModeEntry{
		{ID: 1, Status: entities.ModeBoxed},
		{ID: 25, Status: entities.ModeDexOnly},
	}, entries)
}

func TestModeService_LoadError(t *testing.T) {
	store := mocks.NewModeStore()
	store.LoadErr = errors.New("corrupt")
	svc := NewModeService(store)

	err := svc.Set(context.Background(), 1, entities.ModeBoxed)
	require.ErrorContains(t, err, "corrupt")
}

func TestModeService_HistoryUnsupported(t *testing.T) {
	svc := NewModeService(mocks.NewModeStore())

	_, err := svc.History(context.Background(), 5)
	require.ErrorIs(t, err, ErrHistoryUnsupported)
}
