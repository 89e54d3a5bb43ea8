package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

func rowIDs(rows []TableRow) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestTableHandler_HandleTable(t *testing.T) {
	store := mocks.NewModeStore()
	store.Modes[1] = entities.ModeBoxed
	handler := newTestTableHandler(newTableAPI(), store)

	result, err := handler.HandleTable(context.Background(), TableOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Rows, 4)

	first := result.Rows[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "フシギダネ", first.Name)
	assert.Equal(t, entities.ModeBoxed, first.Mode)
	assert.Equal(t, map[string]string{"FR": "", "LG": "", "R": "", "S": "", "E": "〇"}, first.Matrix())

	assert.Equal(t, entities.ModeNone, result.Rows[1].Mode)
	assert.Error(t, result.Rows[2].Err)
	assert.Empty(t, result.Rows[2].Versions)
	assert.Equal(t, []string{"firered", "leafgreen"}, result.Rows[3].Versions.Keys())
}

func TestTableHandler_GameFilter(t *testing.T) {
	tests := []struct {
		name  string
		games []string
		want  []int
	}{
		{name: "single game", games: []string{"FR"}, want: []int{4}},
		{name: "any of several", games: []string{"E", "LG"}, want: []int{1, 4}},
		{name: "case insensitive", games: []string{"e"}, want: []int{1}},
		{name: "no species", games: []string{"R", "S"}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestTableHandler(newTableAPI(), mocks.NewModeStore())

			result, err := handler.HandleTable(context.Background(), TableOptions{Games: tt.games})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rowIDs(result.Rows))
			assert.Equal(t, 4, result.Total)
		})
	}
}

func TestTableHandler_UnknownGame(t *testing.T) {
	api := newTableAPI()
	handler := newTestTableHandler(api, mocks.NewModeStore())

	_, err := handler.HandleTable(context.Background(), TableOptions{Games: []string{"GS"}})
	require.ErrorContains(t, err, "unknown game")
	assert.Equal(t, 0, api.Calls("species-list"), "validated before fetching")
}

func TestTableHandler_ListFailure(t *testing.T) {
	api := newTableAPI()
	api.Errs["species-list"] = &entities.NetworkError{URL: "list", StatusCode: 503}
	handler := newTestTableHandler(api, mocks.NewModeStore())

	_, err := handler.HandleTable(context.Background(), TableOptions{})
	var netErr *entities.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestTableHandler_ModeStoreFailure(t *testing.T) {
	store := mocks.NewModeStore()
	store.LoadErr = errors.New("corrupt document")
	handler := newTestTableHandler(newTableAPI(), store)

	_, err := handler.HandleTable(context.Background(), TableOptions{})
	require.ErrorContains(t, err, "corrupt document")
}

func TestTableHandler_NameFailureFallsBack(t *testing.T) {
	api := newTableAPI()
	api.Errs["species/2"] = errors.New("timeout")
	handler := newTestTableHandler(api, mocks.NewModeStore())

	result, err := handler.HandleTable(context.Background(), TableOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ivysaur", result.Rows[1].Name)
	assert.Error(t, result.Rows[1].Err)
	assert.Equal(t, 2, result.Failed)
}
