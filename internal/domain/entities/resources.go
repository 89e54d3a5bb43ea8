package entities

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NamedResource is the upstream {name, url} reference used everywhere in the API.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LocalizedName is one entry of a resource's "names" list.
type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// SpeciesPage is one page of GET /pokemon-species.
type SpeciesPage struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []NamedResource `json:"results"`
}

// SpeciesResource is GET /pokemon-species/{id}.
type SpeciesResource struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Names          []LocalizedName `json:"names"`
	EvolutionChain *NamedResource  `json:"evolution_chain"`
	EggGroups      []NamedResource `json:"egg_groups"`
}

// EncounterList is GET /pokemon/{id}/encounters.
type EncounterList []EncounterResource

// EncounterResource is one location area entry of an encounter list.
type EncounterResource struct {
	LocationArea   *NamedResource           `json:"location_area"`
	VersionDetails []EncounterVersionDetail `json:"version_details"`
}

// EncounterVersionDetail lists encounters of one location area in one version.
type EncounterVersionDetail struct {
	Version          *NamedResource    `json:"version"`
	EncounterDetails []EncounterDetail `json:"encounter_details"`
}

// EncounterDetail carries the encounter chance in percent.
type EncounterDetail struct {
	Chance int `json:"chance"`
}

// PokemonResource is GET /pokemon/{id}.
type PokemonResource struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Types []PokemonType `json:"types"`
	Moves []PokemonMove `json:"moves"`
}

// PokemonType is one slot of a pokemon's typing.
type PokemonType struct {
	Slot int            `json:"slot"`
	Type *NamedResource `json:"type"`
}

// PokemonMove is a move with the ways a pokemon learns it per version group.
type PokemonMove struct {
	Move                *NamedResource       `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

// VersionGroupDetail describes how a move is learned in one version group.
type VersionGroupDetail struct {
	LevelLearnedAt  int            `json:"level_learned_at"`
	MoveLearnMethod *NamedResource `json:"move_learn_method"`
	VersionGroup    *NamedResource `json:"version_group"`
}

// TypeResource is GET /type/{name}.
type TypeResource struct {
	Name            string           `json:"name"`
	Names           []LocalizedName  `json:"names"`
	DamageRelations *DamageRelations `json:"damage_relations"`
}

// DamageRelations holds the subset of type relations used for weaknesses.
type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
}

// MoveResource is GET /move/{name}.
type MoveResource struct {
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
	Type  *NamedResource  `json:"type"`
}

// EggGroupResource is GET /egg-group/{name}.
type EggGroupResource struct {
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

// EvolutionChainResource is GET {evolution_chain.url}.
type EvolutionChainResource struct {
	ID    int        `json:"id"`
	Chain *ChainLink `json:"chain"`
}

// ChainLink is one node of an evolution chain tree.
type ChainLink struct {
	Species   *NamedResource `json:"species"`
	EvolvesTo []ChainLink    `json:"evolves_to"`
}

// LocationAreaResource is GET {location_area.url}.
type LocationAreaResource struct {
	Name     string          `json:"name"`
	Names    []LocalizedName `json:"names"`
	Location *NamedResource  `json:"location"`
}

// LocationResource is GET {location.url}.
type LocationResource struct {
	Name  string          `json:"name"`
	Names []LocalizedName `json:"names"`
}

// Validate checks the fields the page walker depends on.
func (p *SpeciesPage) Validate() error {
	if p.Results == nil {
		return &MissingFieldError{Resource: "pokemon-species list", Field: "results"}
	}
	for i, r := range p.Results {
		if r.URL == "" {
			return &MissingFieldError{Resource: "pokemon-species list", Field: fmt.Sprintf("results[%d].url", i)}
		}
	}
	return nil
}

// Validate checks required species fields.
func (s *SpeciesResource) Validate() error {
	if s.Name == "" {
		return &MissingFieldError{Resource: "pokemon-species", Field: "name"}
	}
	for i, g := range s.EggGroups {
		if g.Name == "" {
			return &MissingFieldError{Resource: "pokemon-species " + s.Name, Field: fmt.Sprintf("egg_groups[%d].name", i)}
		}
	}
	return nil
}

// Validate checks every encounter entry.
func (l EncounterList) Validate() error {
	for i, e := range l {
		if e.LocationArea == nil || e.LocationArea.URL == "" {
			return &MissingFieldError{Resource: "encounters", Field: fmt.Sprintf("[%d].location_area.url", i)}
		}
		for j, vd := range e.VersionDetails {
			if vd.Version == nil || vd.Version.Name == "" {
				return &MissingFieldError{Resource: "encounters", Field: fmt.Sprintf("[%d].version_details[%d].version.name", i, j)}
			}
		}
	}
	return nil
}

// Validate checks the type and move references.
func (p *PokemonResource) Validate() error {
	resource := "pokemon " + strconv.Itoa(p.ID)
	if p.Types == nil {
		return &MissingFieldError{Resource: resource, Field: "types"}
	}
	for i, t := range p.Types {
		if t.Type == nil || t.Type.Name == "" {
			return &MissingFieldError{Resource: resource, Field: fmt.Sprintf("types[%d].type.name", i)}
		}
	}
	for i, m := range p.Moves {
		if m.Move == nil || m.Move.Name == "" {
			return &MissingFieldError{Resource: resource, Field: fmt.Sprintf("moves[%d].move.name", i)}
		}
		for j, vd := range m.VersionGroupDetails {
			if vd.MoveLearnMethod == nil || vd.VersionGroup == nil {
				return &MissingFieldError{Resource: resource, Field: fmt.Sprintf("moves[%d].version_group_details[%d]", i, j)}
			}
		}
	}
	return nil
}

// Validate checks the damage relations block.
func (t *TypeResource) Validate() error {
	if t.Name == "" {
		return &MissingFieldError{Resource: "type", Field: "name"}
	}
	if t.DamageRelations == nil {
		return &MissingFieldError{Resource: "type " + t.Name, Field: "damage_relations"}
	}
	return nil
}

// Validate checks the move's type reference.
func (m *MoveResource) Validate() error {
	if m.Name == "" {
		return &MissingFieldError{Resource: "move", Field: "name"}
	}
	if m.Type == nil || m.Type.Name == "" {
		return &MissingFieldError{Resource: "move " + m.Name, Field: "type.name"}
	}
	return nil
}

// Validate checks the egg group name.
func (g *EggGroupResource) Validate() error {
	if g.Name == "" {
		return &MissingFieldError{Resource: "egg-group", Field: "name"}
	}
	return nil
}

// Validate checks that the chain root is present. Nodes are checked by the
// graph builder while it walks them.
func (c *EvolutionChainResource) Validate() error {
	if c.Chain == nil {
		return &MissingFieldError{Resource: "evolution-chain " + strconv.Itoa(c.ID), Field: "chain"}
	}
	return nil
}

// Validate checks the area name used as the last fallback.
func (a *LocationAreaResource) Validate() error {
	if a.Name == "" {
		return &MissingFieldError{Resource: "location-area", Field: "name"}
	}
	return nil
}

// Validate checks the location name.
func (l *LocationResource) Validate() error {
	if l.Name == "" {
		return &MissingFieldError{Resource: "location", Field: "name"}
	}
	return nil
}

// IDFromURL extracts the numeric id from the last non-empty path segment of
// a resource URL such as https://pokeapi.co/api/v2/pokemon-species/1/.
func IDFromURL(rawURL string) (int, error) {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		id, err := strconv.Atoi(segments[i])
		if err != nil || id <= 0 {
			break
		}
		return id, nil
	}
	return 0, &MissingFieldError{Resource: rawURL, Field: "id"}
}
