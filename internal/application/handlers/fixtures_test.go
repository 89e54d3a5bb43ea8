package handlers

import (
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/mocks"
	"github.com/ersonp/dex-core/internal/domain/services"
)

const testBase = "https://pokeapi.test/api/v2"

func speciesURL(id int) string {
	return fmt.Sprintf("%s/pokemon-species/%d/", testBase, id)
}

func encounter(area string, versions ...string) entities.EncounterResource {
	details := make([]entities.EncounterVersionDetail, 0, len(versions))
	for _, v := range versions {
		details = append(details, entities.EncounterVersionDetail{
			Version:          mocks.Ref(v, ""),
			EncounterDetails: []entities.EncounterDetail{{Chance: 10}},
		})
	}
	return entities.EncounterResource{
		LocationArea:   mocks.Ref(area, testBase+"/location-area/"+area+"/"),
		VersionDetails: details,
	}
}

// newTableAPI serves four species: 1 in emerald, 2 nowhere, 3 with a
// failing encounter fetch, 4 in FireRed and LeafGreen.
func newTableAPI() *mocks.PokeAPI {
	api := mocks.NewPokeAPI()
	keys := []string{"bulbasaur", "ivysaur", "venusaur", "charmander"}
	ja := []string{"フシギダネ", "フシギソウ", "フシギバナ", "ヒトカゲ"}
	for i, key := range keys {
		id := i + 1
		api.SpeciesList = append(api.SpeciesList, entities.NamedResource{Name: key, URL: speciesURL(id)})
		api.SpeciesByID[id] = &entities.SpeciesResource{ID: id, Name: key, Names: mocks.Names("ja", ja[i])}
	}
	api.EncountersByID[1] = entities.EncounterList{encounter("safari-zone-area-1", "emerald", "gold")}
	api.Errs["encounters/3"] = &entities.NetworkError{URL: "encounters/3", StatusCode: 500}
	api.EncountersByID[4] = entities.EncounterList{encounter("pallet-town-area", "firered", "leafgreen")}
	return api
}

func newTestTableHandler(api *mocks.PokeAPI, store *mocks.ModeStore) *TableHandler {
	localizer := services.NewLocalizer()
	return NewTableHandler(
		services.NewSpeciesService(api, localizer, entities.MaxSpeciesID, 2),
		services.NewAvailabilityService(api, 2),
		services.NewModeService(store),
	)
}
