package mocks

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// ModeStore is a mock implementation of ports.ModeStore.
type ModeStore struct {
	Modes   entities.ModeMap
	LoadErr error
	SaveErr error
	Saves   int
}

// NewModeStore creates an empty mock ModeStore.
func NewModeStore() *ModeStore {
	return &ModeStore{Modes: entities.ModeMap{}}
}

// Load returns a copy of the stored mapping.
func (m *ModeStore) Load(_ context.Context) (entities.ModeMap, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make(entities.ModeMap, len(m.Modes))
	for id, status := range m.Modes {
		out[id] = status
	}
	return out, nil
}

// Save replaces the stored mapping.
func (m *ModeStore) Save(_ context.Context, modes entities.ModeMap) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Modes = make(entities.ModeMap, len(modes))
	for id, status := range modes {
		m.Modes[id] = status
	}
	return nil
}
