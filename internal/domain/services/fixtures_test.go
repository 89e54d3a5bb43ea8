package services

import (
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
)

const testBase = "https://pokeapi.test/api/v2"

func speciesURL(id int) string {
	return fmt.Sprintf("%s/pokemon-species/%d/", testBase, id)
}

func areaURL(id int) string {
	return fmt.Sprintf("%s/location-area/%d/", testBase, id)
}

func locationURL(id int) string {
	return fmt.Sprintf("%s/location/%d/", testBase, id)
}

func chainURL(id int) string {
	return fmt.Sprintf("%s/evolution-chain/%d/", testBase, id)
}

func typeResource(key, ja string, weakTo ...string) *entities.TypeResource {
	from := make([]entities.NamedResource, 0, len(weakTo))
	for _, w := range weakTo {
		from = append(from, entities.NamedResource{Name: w})
	}
	return &entities.TypeResource{
		Name:            key,
		Names:           mocks.Names("en", key, "ja", ja),
		DamageRelations: &entities.DamageRelations{DoubleDamageFrom: from},
	}
}

func learned(method, group string, level int) entities.VersionGroupDetail {
	return entities.VersionGroupDetail{
		LevelLearnedAt:  level,
		MoveLearnMethod: mocks.Ref(method, ""),
		VersionGroup:    mocks.Ref(group, ""),
	}
}

func visit(version string, chances ...int) entities.EncounterVersionDetail {
	details := make([]entities.EncounterDetail, 0, len(chances))
	for _, c := range chances {
		details = append(details, entities.EncounterDetail{Chance: c})
	}
	return entities.EncounterVersionDetail{Version: mocks.Ref(version, ""), EncounterDetails: details}
}

// newBulbasaurAPI returns a mock API holding the Bulbasaur line (1-3) and
// Charmander (4), with Bulbasaur obtainable only in emerald.
func newBulbasaurAPI() *mocks.PokeAPI {
	api := mocks.NewPokeAPI()

	api.SpeciesList = []entities.NamedResource{
		{Name: "bulbasaur", URL: speciesURL(1)},
		{Name: "ivysaur", URL: speciesURL(2)},
		{Name: "venusaur", URL: speciesURL(3)},
		{Name: "charmander", URL: speciesURL(4)},
	}

	api.SpeciesByID[1] = &entities.SpeciesResource{
		ID:             1,
		Name:           "bulbasaur",
		Names:          mocks.Names("en", "Bulbasaur", "ja-Hrkt", "フシギダネ", "ja", "フシギダネ"),
		EvolutionChain: mocks.Ref("", chainURL(1)),
		EggGroups:      []entities.NamedResource{{Name: "monster"}, {Name: "plant"}},
	}
	api.SpeciesByID[2] = &entities.SpeciesResource{
		ID: 2, Name: "ivysaur",
		Names:          mocks.Names("ja-Hrkt", "フシギソウ"),
		EvolutionChain: mocks.Ref("", chainURL(1)),
	}
	api.SpeciesByID[3] = &entities.SpeciesResource{
		ID: 3, Name: "venusaur",
		Names:          mocks.Names("en", "Venusaur"),
		EvolutionChain: mocks.Ref("", chainURL(1)),
	}
	api.SpeciesByID[4] = &entities.SpeciesResource{
		ID: 4, Name: "charmander",
		Names:          mocks.Names("ja", "ヒトカゲ"),
		EvolutionChain: mocks.Ref("", chainURL(2)),
	}

	api.Chains[chainURL(1)] = &entities.EvolutionChainResource{
		ID: 1,
		Chain: &entities.ChainLink{
			Species: mocks.Ref("bulbasaur", speciesURL(1)),
			EvolvesTo: []entities.ChainLink{{
				Species: mocks.Ref("ivysaur", speciesURL(2)),
				EvolvesTo: []entities.ChainLink{{
					Species: mocks.Ref("venusaur", speciesURL(3)),
				}},
			}},
		},
	}

	api.EncountersByID[1] = entities.EncounterList{
		{
			LocationArea:   mocks.Ref("safari-zone-area-1", areaURL(10)),
			VersionDetails: []entities.EncounterVersionDetail{visit("emerald", 5, 20)},
		},
		{
			LocationArea:   mocks.Ref("route-119-area", areaURL(11)),
			VersionDetails: []entities.EncounterVersionDetail{visit("emerald", 10), visit("gold", 50)},
		},
	}
	api.EncountersByID[4] = entities.EncounterList{
		{
			LocationArea:   mocks.Ref("pallet-town-area", areaURL(12)),
			VersionDetails: []entities.EncounterVersionDetail{visit("firered", 100), visit("leafgreen", 100)},
		},
	}

	api.Areas[areaURL(10)] = &entities.LocationAreaResource{
		Name:     "safari-zone-area-1",
		Names:    mocks.Names("ja", "サファリゾーン エリア1"),
		Location: mocks.Ref("safari-zone", locationURL(20)),
	}
	api.Areas[areaURL(11)] = &entities.LocationAreaResource{
		Name:     "route-119-area",
		Names:    mocks.Names("en", "Route 119"),
		Location: mocks.Ref("route-119", locationURL(21)),
	}
	api.Areas[areaURL(12)] = &entities.LocationAreaResource{
		Name:     "pallet-town-area",
		Location: mocks.Ref("pallet-town", locationURL(22)),
	}
	api.Locations[locationURL(21)] = &entities.LocationResource{
		Name:  "route-119",
		Names: mocks.Names("ja-Hrkt", "119ばんどうろ"),
	}
	api.Locations[locationURL(22)] = &entities.LocationResource{Name: "pallet-town"}

	api.PokemonByID[1] = &entities.PokemonResource{
		ID:   1,
		Name: "bulbasaur",
		Types: []entities.PokemonType{
			{Slot: 2, Type: mocks.Ref("poison", "")},
			{Slot: 1, Type: mocks.Ref("grass", "")},
		},
		Moves: []entities.PokemonMove{
			{Move: mocks.Ref("tackle", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("level-up", "ruby-sapphire", 1),
				learned("level-up", "emerald", 1),
			}},
			{Move: mocks.Ref("vine-whip", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("level-up", "ruby-sapphire", 10),
				learned("level-up", "firered-leafgreen", 13),
			}},
			{Move: mocks.Ref("growl", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("level-up", "emerald", 4),
			}},
			{Move: mocks.Ref("razor-leaf", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("level-up", "gold-silver", 20),
			}},
			{Move: mocks.Ref("skull-bash", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("egg", "ruby-sapphire", 0),
				learned("egg", "emerald", 0),
			}},
			{Move: mocks.Ref("charm", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("egg", "firered-leafgreen", 0),
			}},
			{Move: mocks.Ref("petal-dance", ""), VersionGroupDetails: []entities.VersionGroupDetail{
				learned("egg", "crystal", 0),
			}},
		},
	}

	api.Types["grass"] = typeResource("grass", "くさ", "fire", "ice", "poison", "flying", "bug")
	api.Types["poison"] = typeResource("poison", "どく", "ground", "psychic")
	api.Types["normal"] = typeResource("normal", "ノーマル", "fighting")
	api.Types["fire"] = typeResource("fire", "ほのお", "water", "ground", "rock")
	api.Types["ice"] = typeResource("ice", "こおり", "fire", "fighting", "rock", "steel")
	api.Types["flying"] = typeResource("flying", "ひこう", "electric", "ice", "rock")
	api.Types["bug"] = typeResource("bug", "むし", "fire", "flying", "rock")
	api.Types["ground"] = typeResource("ground", "じめん", "water", "grass", "ice")
	api.Types["psychic"] = typeResource("psychic", "エスパー", "bug", "ghost", "dark")
	api.Types["fairy"] = typeResource("fairy", "フェアリー", "poison", "steel")

	api.Moves["tackle"] = &entities.MoveResource{Name: "tackle", Names: mocks.Names("ja", "たいあたり"), Type: mocks.Ref("normal", "")}
	api.Moves["vine-whip"] = &entities.MoveResource{Name: "vine-whip", Names: mocks.Names("ja", "つるのムチ"), Type: mocks.Ref("grass", "")}
	api.Moves["growl"] = &entities.MoveResource{Name: "growl", Names: mocks.Names("ja-Hrkt", "なきごえ"), Type: mocks.Ref("normal", "")}
	api.Moves["skull-bash"] = &entities.MoveResource{Name: "skull-bash", Names: mocks.Names("en", "Skull Bash"), Type: mocks.Ref("normal", "")}
	api.Moves["charm"] = &entities.MoveResource{Name: "charm", Names: mocks.Names("ja", "あまえる"), Type: mocks.Ref("fairy", "")}

	api.EggGroups["monster"] = &entities.EggGroupResource{Name: "monster", Names: mocks.Names("ja-Hrkt", "かいじゅう")}
	api.EggGroups["plant"] = &entities.EggGroupResource{Name: "plant", Names: mocks.Names("ja", "植物")}

	return api
}
