package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// AvailabilityEntry is the availability of one species in a batch.
// Err is set when the encounter fetch for that species failed.
type AvailabilityEntry struct {
	Species  entities.SpeciesRef
	Versions entities.VersionSet
	Err      error
}

// AvailabilityService determines which tracked versions a species appears in.
type AvailabilityService struct {
	api         ports.PokeAPI
	concurrency int
}

// NewAvailabilityService creates a new AvailabilityService.
// concurrency bounds parallel encounter fetches in ForAll; values below 1 mean sequential.
func NewAvailabilityService(api ports.PokeAPI, concurrency int) *AvailabilityService {
	return &AvailabilityService{
		api:         api,
		concurrency: concurrency,
	}
}

// Availability returns the tracked versions the species with id can be encountered in.
func (s *AvailabilityService) Availability(ctx context.Context, id int) (entities.VersionSet, error) {
	encounters, err := s.api.Encounters(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching encounters for %d: %w", id, err)
	}
	return VersionsFromEncounters(encounters), nil
}

// ForAll computes availability for every species. A failure for one species
// is recorded on its entry and does not affect the others; only context
// cancellation aborts the batch.
func (s *AvailabilityService) ForAll(ctx context.Context, species []entities.SpeciesRef) ([]AvailabilityEntry, error) {
	entries := make([]AvailabilityEntry, len(species))
	err := fanOut(ctx, len(species), s.concurrency, func(ctx context.Context, i int) {
		versions, err := s.Availability(ctx, species[i].ID)
		if err != nil {
			slog.Warn("availability unavailable", "species", species[i].ID, "err", err)
			versions = entities.VersionSet{}
		}
		entries[i] = AvailabilityEntry{Species: species[i], Versions: versions, Err: err}
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// VersionsFromEncounters flattens every version detail of every location and
// keeps the distinct tracked version keys. Other versions are ignored.
func VersionsFromEncounters(encounters entities.EncounterList) entities.VersionSet {
	versions := entities.VersionSet{}
	for _, e := range encounters {
		for _, vd := range e.VersionDetails {
			if vd.Version != nil {
				versions.Add(vd.Version.Name)
			}
		}
	}
	return versions
}
