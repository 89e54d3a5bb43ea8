package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// DetailService assembles the per-species detail bundle.
type DetailService struct {
	api       ports.PokeAPI
	localizer *Localizer
	weakness  *WeaknessService
	species   *SpeciesService
}

// NewDetailService creates a new DetailService.
func NewDetailService(
	api ports.PokeAPI,
	localizer *Localizer,
	weakness *WeaknessService,
	species *SpeciesService,
) *DetailService {
	return &DetailService{
		api:       api,
		localizer: localizer,
		weakness:  weakness,
		species:   species,
	}
}

// Detail builds the full detail of the species with id. Any fetch failure
// aborts this detail only.
func (s *DetailService) Detail(ctx context.Context, id int) (*entities.Detail, error) {
	sp, err := s.api.Species(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching species %d: %w", id, err)
	}

	pokemon, err := s.api.Pokemon(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching pokemon %d: %w", id, err)
	}

	detail := &entities.Detail{
		Species: entities.SpeciesRef{ID: id, Name: s.localizer.Localize(sp.Names, sp.Name), Key: sp.Name},
	}

	if detail.Encounters, err = s.Encounters(ctx, id); err != nil {
		return nil, err
	}

	typeKeys := pokemonTypeKeys(pokemon)
	for _, key := range typeKeys {
		info, err := s.weakness.TypeInfo(ctx, key)
		if err != nil {
			return nil, err
		}
		detail.Types = append(detail.Types, info)
	}

	weak, err := s.weakness.Weaknesses(ctx, typeKeys)
	if err != nil {
		return nil, err
	}
	if detail.Weaknesses, err = s.weakness.Describe(ctx, weak); err != nil {
		return nil, err
	}

	if detail.LevelUpMoves, err = s.levelUpMoves(ctx, pokemon); err != nil {
		return nil, err
	}

	if detail.Evolution, err = s.Evolution(ctx, id, sp); err != nil {
		return nil, err
	}

	if detail.EggGroups, err = s.eggGroups(ctx, sp); err != nil {
		return nil, err
	}

	if detail.EggMoves, err = s.eggMoves(ctx, pokemon); err != nil {
		return nil, err
	}

	return detail, nil
}

// Encounters groups the encounter slots of species id by tracked version,
// in column order, each sorted by chance descending. Versions without
// encounters are present with no locations.
func (s *DetailService) Encounters(ctx context.Context, id int) ([]entities.VersionEncounters, error) {
	encounters, err := s.api.Encounters(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching encounters for %d: %w", id, err)
	}

	byVersion := make(map[string][]entities.LocationChance, len(entities.TrackedVersions))
	for _, e := range encounters {
		if e.LocationArea == nil {
			return nil, &entities.MissingFieldError{Resource: fmt.Sprintf("encounters %d", id), Field: "location_area"}
		}
		area, err := s.locationAreaName(ctx, e.LocationArea.URL)
		if err != nil {
			return nil, err
		}
		for _, vd := range e.VersionDetails {
			if vd.Version == nil {
				continue
			}
			if _, ok := entities.VersionByKey(vd.Version.Name); !ok {
				continue
			}
			for _, det := range vd.EncounterDetails {
				byVersion[vd.Version.Name] = append(byVersion[vd.Version.Name], entities.LocationChance{Area: area, Chance: det.Chance})
			}
		}
	}

	result := make([]entities.VersionEncounters, 0, len(entities.TrackedVersions))
	for _, v := range entities.TrackedVersions {
		locations := byVersion[v.Key]
		sort.SliceStable(locations, func(i, j int) bool {
			return locations[i].Chance > locations[j].Chance
		})
		if locations == nil {
			locations = []entities.LocationChance{}
		}
		result = append(result, entities.VersionEncounters{Version: v, Locations: locations})
	}
	return result, nil
}

// locationAreaName applies the area -> location -> area key fallback. The
// parent location is only fetched when the area has no preferred name.
func (s *DetailService) locationAreaName(ctx context.Context, url string) (string, error) {
	area, err := s.api.LocationArea(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetching location area: %w", err)
	}
	if name, ok := s.localizer.Lookup(area.Names); ok {
		return name, nil
	}
	if area.Location == nil || area.Location.URL == "" {
		return area.Name, nil
	}
	location, err := s.api.Location(ctx, area.Location.URL)
	if err != nil {
		return "", fmt.Errorf("fetching location of %s: %w", area.Name, err)
	}
	return s.localizer.LocationArea(area, location), nil
}

// Evolution resolves the direct predecessor and successors of species id.
func (s *DetailService) Evolution(ctx context.Context, id int, sp *entities.SpeciesResource) (entities.Evolution, error) {
	var evo entities.Evolution
	if sp.EvolutionChain == nil || sp.EvolutionChain.URL == "" {
		return evo, &entities.MissingFieldError{Resource: "pokemon-species " + sp.Name, Field: "evolution_chain.url"}
	}

	chain, err := s.api.EvolutionChain(ctx, sp.EvolutionChain.URL)
	if err != nil {
		return evo, fmt.Errorf("fetching evolution chain: %w", err)
	}

	graph, err := BuildEvolutionGraph(chain.Chain)
	if err != nil {
		return evo, fmt.Errorf("building evolution graph: %w", err)
	}

	if parentID, ok := graph.Parent(id); ok {
		parent := s.relative(ctx, parentID)
		evo.Parent = &parent
	}
	for _, childID := range graph.ChildrenOf(id) {
		evo.Children = append(evo.Children, s.relative(ctx, childID))
	}
	return evo, nil
}

// relative names an evolution relative. A failed lookup leaves the name
// empty so it renders as the dex number.
func (s *DetailService) relative(ctx context.Context, id int) entities.SpeciesRef {
	ref, err := s.species.Ref(ctx, id)
	if err != nil {
		slog.Warn("evolution relative name unavailable", "species", id, "err", err)
		return entities.SpeciesRef{ID: id}
	}
	return ref
}

func (s *DetailService) levelUpMoves(ctx context.Context, p *entities.PokemonResource) ([]entities.MoveRecord, error) {
	levelMoves := LevelUpMoves(p)
	records := make([]entities.MoveRecord, 0, len(levelMoves))
	for _, lm := range levelMoves {
		rec, err := s.move(ctx, lm.Key)
		if err != nil {
			return nil, err
		}
		rec.Level = lm.Level
		rec.Method = entities.LearnLevelUp
		records = append(records, rec)
	}
	return records, nil
}

func (s *DetailService) eggMoves(ctx context.Context, p *entities.PokemonResource) ([]entities.MoveRecord, error) {
	keys := EggMoves(p).Sorted()
	records := make([]entities.MoveRecord, 0, len(keys))
	for _, key := range keys {
		rec, err := s.move(ctx, key)
		if err != nil {
			return nil, err
		}
		rec.Method = entities.LearnEgg
		records = append(records, rec)
	}
	return records, nil
}

func (s *DetailService) move(ctx context.Context, key string) (entities.MoveRecord, error) {
	mv, err := s.api.Move(ctx, key)
	if err != nil {
		return entities.MoveRecord{}, fmt.Errorf("fetching move %q: %w", key, err)
	}
	t, err := s.weakness.TypeInfo(ctx, mv.Type.Name)
	if err != nil {
		return entities.MoveRecord{}, err
	}
	return entities.MoveRecord{
		Key:      key,
		Name:     s.localizer.Localize(mv.Names, key),
		TypeKey:  t.Key,
		TypeName: t.Name,
	}, nil
}

func (s *DetailService) eggGroups(ctx context.Context, sp *entities.SpeciesResource) ([]entities.EggGroupRef, error) {
	groups := make([]entities.EggGroupRef, 0, len(sp.EggGroups))
	for _, g := range sp.EggGroups {
		eg, err := s.api.EggGroup(ctx, g.Name)
		if err != nil {
			return nil, fmt.Errorf("fetching egg group %q: %w", g.Name, err)
		}
		groups = append(groups, entities.EggGroupRef{Key: g.Name, Name: s.localizer.Localize(eg.Names, g.Name)})
	}
	return groups, nil
}

// pokemonTypeKeys returns the type keys ordered by slot.
func pokemonTypeKeys(p *entities.PokemonResource) []string {
	types := make([]entities.PokemonType, len(p.Types))
	copy(types, p.Types)
	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Slot < types[j].Slot
	})
	keys := make([]string, 0, len(types))
	for _, t := range types {
		keys = append(keys, t.Type.Name)
	}
	return keys
}
