package mocks

import "github.com/ersonp/dex-core/internal/domain/entities"

// Names builds a names list from language/name pairs.
func Names(pairs ...string) []entities.LocalizedName {
	names := make([]entities.LocalizedName, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		names = append(names, entities.LocalizedName{
			Name:     pairs[i+1],
			Language: entities.NamedResource{Name: pairs[i]},
		})
	}
	return names
}

// Ref builds a named resource.
func Ref(name, url string) *entities.NamedResource {
	return &entities.NamedResource{Name: name, URL: url}
}
