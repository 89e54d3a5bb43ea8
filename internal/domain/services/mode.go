package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// ErrHistoryUnsupported is returned when the configured store keeps no history.
var ErrHistoryUnsupported = errors.New("mode store does not record history")

// ModeEntry is one annotated species.
type ModeEntry struct {
	ID     int                 `json:"id"`
	Status entities.ModeStatus `json:"status"`
}

// ModeService edits the species status annotations. Every change loads the
// whole mapping, modifies it and saves it back.
type ModeService struct {
	store ports.ModeStore
}

// NewModeService creates a new ModeService.
func NewModeService(store ports.ModeStore) *ModeService {
	return &ModeService{store: store}
}

// Load returns the stored mapping.
func (s *ModeService) Load(ctx context.Context) (entities.ModeMap, error) {
	modes, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading modes: %w", err)
	}
	if modes == nil {
		modes = entities.ModeMap{}
	}
	return modes, nil
}

// Set stores status for species id. ModeNone clears it.
func (s *ModeService) Set(ctx context.Context, id int, status entities.ModeStatus) error {
	if !entities.ValidSpeciesID(id) {
		return fmt.Errorf("species id %d out of range 1..%d", id, entities.MaxSpeciesID)
	}
	modes, err := s.Load(ctx)
	if err != nil {
		return err
	}
	modes.Set(id, status)
	if err := s.store.Save(ctx, modes); err != nil {
		return fmt.Errorf("saving modes: %w", err)
	}
	return nil
}

// Get returns the status of species id.
func (s *ModeService) Get(ctx context.Context, id int) (entities.ModeStatus, error) {
	if !entities.ValidSpeciesID(id) {
		return entities.ModeNone, fmt.Errorf("species id %d out of range 1..%d", id, entities.MaxSpeciesID)
	}
	modes, err := s.Load(ctx)
	if err != nil {
		return entities.ModeNone, err
	}
	return modes.Get(id), nil
}

// List returns every annotated species ordered by id.
func (s *ModeService) List(ctx context.Context) ([]ModeEntry, error) {
	modes, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]ModeEntry, 0, len(modes))
	for id, status := range modes {
		entries = append(entries, ModeEntry{ID: id, Status: status})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// History returns recent saves when the store records them.
func (s *ModeService) History(ctx context.Context, limit int) ([]entities.ModeBatch, error) {
	history, ok := s.store.(ports.ModeHistory)
	if !ok {
		return nil, ErrHistoryUnsupported
	}
	batches, err := history.Batches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading mode history: %w", err)
	}
	return batches, nil
}
