package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// API implements ports.PokeAPI by decoding and validating resources read
// through a ports.ResourceFetcher, normally the shared cache.
type API struct {
	fetcher ports.ResourceFetcher
	baseURL string
}

// Ensure API implements ports.PokeAPI.
var _ ports.PokeAPI = (*API)(nil)

// NewAPI creates typed accessors rooted at baseURL.
func NewAPI(fetcher ports.ResourceFetcher, baseURL string) *API {
	return &API{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type validator interface {
	Validate() error
}

// get fetches ref and decodes it into a validated T.
func get[T any, PT interface {
	*T
	validator
}](ctx context.Context, a *API, ref string) (*T, error) {
	body, err := a.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &entities.DecodeError{URL: ref, Err: err}
	}
	if err := PT(&v).Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

func (a *API) resourceURL(kind string, id any) string {
	return fmt.Sprintf("%s/%s/%v/", a.baseURL, kind, id)
}

// ListSpecies returns up to limit species references, following next links
// until enough entries are collected or the listing ends.
func (a *API) ListSpecies(ctx context.Context, limit int) ([]entities.NamedResource, error) {
	if limit <= 0 {
		return nil, nil
	}
	next := fmt.Sprintf("%s/pokemon-species?limit=%d", a.baseURL, limit)
	results := make([]entities.NamedResource, 0, limit)

	for next != "" && len(results) < limit {
		page, err := get[entities.SpeciesPage](ctx, a, next)
		if err != nil {
			return nil, fmt.Errorf("listing species: %w", err)
		}
		if len(page.Results) == 0 {
			break
		}
		results = append(results, page.Results...)

		next = ""
		if page.Next != nil {
			next = *page.Next
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Species returns GET /pokemon-species/{id}.
func (a *API) Species(ctx context.Context, id int) (*entities.SpeciesResource, error) {
	return get[entities.SpeciesResource](ctx, a, a.resourceURL("pokemon-species", id))
}

// Encounters returns GET /pokemon/{id}/encounters.
func (a *API) Encounters(ctx context.Context, id int) (entities.EncounterList, error) {
	list, err := get[entities.EncounterList](ctx, a, fmt.Sprintf("%s/pokemon/%d/encounters", a.baseURL, id))
	if err != nil {
		return nil, err
	}
	return *list, nil
}

// Pokemon returns GET /pokemon/{id}.
func (a *API) Pokemon(ctx context.Context, id int) (*entities.PokemonResource, error) {
	return get[entities.PokemonResource](ctx, a, a.resourceURL("pokemon", id))
}

// Type returns GET /type/{name}.
func (a *API) Type(ctx context.Context, name string) (*entities.TypeResource, error) {
	return get[entities.TypeResource](ctx, a, a.resourceURL("type", url.PathEscape(name)))
}

// Move returns GET /move/{name}.
func (a *API) Move(ctx context.Context, name string) (*entities.MoveResource, error) {
	return get[entities.MoveResource](ctx, a, a.resourceURL("move", url.PathEscape(name)))
}

// EggGroup returns GET /egg-group/{name}.
func (a *API) EggGroup(ctx context.Context, name string) (*entities.EggGroupResource, error) {
	return get[entities.EggGroupResource](ctx, a, a.resourceURL("egg-group", url.PathEscape(name)))
}

// EvolutionChain returns the chain referenced by a species.
func (a *API) EvolutionChain(ctx context.Context, ref string) (*entities.EvolutionChainResource, error) {
	return get[entities.EvolutionChainResource](ctx, a, ref)
}

// LocationArea returns the area referenced by an encounter.
func (a *API) LocationArea(ctx context.Context, ref string) (*entities.LocationAreaResource, error) {
	return get[entities.LocationAreaResource](ctx, a, ref)
}

// Location returns the parent location of an area.
func (a *API) Location(ctx context.Context, ref string) (*entities.LocationResource, error) {
	return get[entities.LocationResource](ctx, a, ref)
}
