package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// PokeAPI is a mock implementation of ports.PokeAPI backed by in-memory resources.
// Errs is keyed by "<kind>/<id or url>", e.g. "encounters/4" or "type/fire".
type PokeAPI struct {
	mu sync.Mutex

	SpeciesList    []entities.NamedResource
	SpeciesByID    map[int]*entities.SpeciesResource
	EncountersByID map[int]entities.EncounterList
	PokemonByID    map[int]*entities.PokemonResource
	Types          map[string]*entities.TypeResource
	Moves          map[string]*entities.MoveResource
	EggGroups      map[string]*entities.EggGroupResource
	Chains         map[string]*entities.EvolutionChainResource
	Areas          map[string]*entities.LocationAreaResource
	Locations      map[string]*entities.LocationResource
	Errs           map[string]error

	calls map[string]int
}

// NewPokeAPI creates an empty mock PokeAPI.
func NewPokeAPI() *PokeAPI {
	return &PokeAPI{
		SpeciesByID:    make(map[int]*entities.SpeciesResource),
		EncountersByID: make(map[int]entities.EncounterList),
		PokemonByID:    make(map[int]*entities.PokemonResource),
		Types:          make(map[string]*entities.TypeResource),
		Moves:          make(map[string]*entities.MoveResource),
		EggGroups:      make(map[string]*entities.EggGroupResource),
		Chains:         make(map[string]*entities.EvolutionChainResource),
		Areas:          make(map[string]*entities.LocationAreaResource),
		Locations:      make(map[string]*entities.LocationResource),
		Errs:           make(map[string]error),
		calls:          make(map[string]int),
	}
}

// Calls returns how many times the resource key was requested.
func (m *PokeAPI) Calls(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[key]
}

func (m *PokeAPI) record(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[key]++
	return m.Errs[key]
}

func notFound(key string) error {
	return &entities.NetworkError{URL: key, StatusCode: 404}
}

// ListSpecies returns up to limit species references.
func (m *PokeAPI) ListSpecies(_ context.Context, limit int) ([]entities.NamedResource, error) {
	if err := m.record("species-list"); err != nil {
		return nil, err
	}
	if limit < len(m.SpeciesList) {
		return m.SpeciesList[:limit], nil
	}
	return m.SpeciesList, nil
}

// Species returns the species detail for id.
func (m *PokeAPI) Species(_ context.Context, id int) (*entities.SpeciesResource, error) {
	key := "species/" + strconv.Itoa(id)
	if err := m.record(key); err != nil {
		return nil, err
	}
	s, ok := m.SpeciesByID[id]
	if !ok {
		return nil, notFound(key)
	}
	return s, nil
}

// Encounters returns the encounter list for id; absent ids have no encounters.
func (m *PokeAPI) Encounters(_ context.Context, id int) (entities.EncounterList, error) {
	if err := m.record("encounters/" + strconv.Itoa(id)); err != nil {
		return nil, err
	}
	return m.EncountersByID[id], nil
}

// Pokemon returns the pokemon for id.
func (m *PokeAPI) Pokemon(_ context.Context, id int) (*entities.PokemonResource, error) {
	key := "pokemon/" + strconv.Itoa(id)
	if err := m.record(key); err != nil {
		return nil, err
	}
	p, ok := m.PokemonByID[id]
	if !ok {
		return nil, notFound(key)
	}
	return p, nil
}

// Type returns the type resource by key.
func (m *PokeAPI) Type(_ context.Context, name string) (*entities.TypeResource, error) {
	key := "type/" + name
	if err := m.record(key); err != nil {
		return nil, err
	}
	t, ok := m.Types[name]
	if !ok {
		return nil, notFound(key)
	}
	return t, nil
}

// Move returns the move resource by key.
func (m *PokeAPI) Move(_ context.Context, name string) (*entities.MoveResource, error) {
	key := "move/" + name
	if err := m.record(key); err != nil {
		return nil, err
	}
	mv, ok := m.Moves[name]
	if !ok {
		return nil, notFound(key)
	}
	return mv, nil
}

// EggGroup returns the egg group resource by key.
func (m *PokeAPI) EggGroup(_ context.Context, name string) (*entities.EggGroupResource, error) {
	key := "egg-group/" + name
	if err := m.record(key); err != nil {
		return nil, err
	}
	g, ok := m.EggGroups[name]
	if !ok {
		return nil, notFound(key)
	}
	return g, nil
}

// EvolutionChain returns the chain resource at url.
func (m *PokeAPI) EvolutionChain(_ context.Context, url string) (*entities.EvolutionChainResource, error) {
	key := "chain/" + url
	if err := m.record(key); err != nil {
		return nil, err
	}
	c, ok := m.Chains[url]
	if !ok {
		return nil, notFound(key)
	}
	return c, nil
}

// LocationArea returns the location area at url.
func (m *PokeAPI) LocationArea(_ context.Context, url string) (*entities.LocationAreaResource, error) {
	key := "area/" + url
	if err := m.record(key); err != nil {
		return nil, err
	}
	a, ok := m.Areas[url]
	if !ok {
		return nil, notFound(key)
	}
	return a, nil
}

// Location returns the location at url.
func (m *PokeAPI) Location(_ context.Context, url string) (*entities.LocationResource, error) {
	key := "location/" + url
	if err := m.record(key); err != nil {
		return nil, err
	}
	l, ok := m.Locations[url]
	if !ok {
		return nil, notFound(key)
	}
	return l, nil
}
