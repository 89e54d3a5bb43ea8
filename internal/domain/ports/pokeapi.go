package ports

import (
	"context"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// PokeAPI provides typed, validated access to the upstream resources.
// Every method reads through the shared response cache.
type PokeAPI interface {
	// ListSpecies returns up to limit species references, following pagination.
	ListSpecies(ctx context.Context, limit int) ([]entities.NamedResource, error)

	// Species returns the species detail for id.
	Species(ctx context.Context, id int) (*entities.SpeciesResource, error)

	// Encounters returns the encounter list of the pokemon with id.
	Encounters(ctx context.Context, id int) (entities.EncounterList, error)

	// Pokemon returns the pokemon (types and moves) for id.
	Pokemon(ctx context.Context, id int) (*entities.PokemonResource, error)

	// Type returns the type resource by key.
	Type(ctx context.Context, name string) (*entities.TypeResource, error)

	// Move returns the move resource by key.
	Move(ctx context.Context, name string) (*entities.MoveResource, error)

	// EggGroup returns the egg group resource by key.
	EggGroup(ctx context.Context, name string) (*entities.EggGroupResource, error)

	// EvolutionChain returns the chain resource at url.
	EvolutionChain(ctx context.Context, url string) (*entities.EvolutionChainResource, error)

	// LocationArea returns the location area resource at url.
	LocationArea(ctx context.Context, url string) (*entities.LocationAreaResource, error)

	// Location returns the location resource at url.
	Location(ctx context.Context, url string) (*entities.LocationResource, error)
}
