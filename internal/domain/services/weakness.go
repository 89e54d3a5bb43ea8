package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// WeaknessService unions type effectiveness relations.
type WeaknessService struct {
	api       ports.PokeAPI
	localizer *Localizer
}

// NewWeaknessService creates a new WeaknessService.
func NewWeaknessService(api ports.PokeAPI, localizer *Localizer) *WeaknessService {
	return &WeaknessService{
		api:       api,
		localizer: localizer,
	}
}

// Weaknesses returns the union of double_damage_from over the given one or
// two types. The input types are not filtered out.
func (s *WeaknessService) Weaknesses(ctx context.Context, typeKeys []string) (entities.KeySet, error) {
	if len(typeKeys) == 0 || len(typeKeys) > 2 {
		return nil, fmt.Errorf("expected 1 or 2 types, got %d", len(typeKeys))
	}

	weak := entities.KeySet{}
	for _, key := range typeKeys {
		t, err := s.api.Type(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("fetching type %q: %w", key, err)
		}
		from, err := doubleDamageFrom(t)
		if err != nil {
			return nil, err
		}
		for _, name := range from {
			weak.Add(name)
		}
	}
	return weak, nil
}

// Describe localizes type keys, sorted by key.
func (s *WeaknessService) Describe(ctx context.Context, keys entities.KeySet) ([]entities.TypeInfo, error) {
	infos := make([]entities.TypeInfo, 0, len(keys))
	for _, key := range keys.Sorted() {
		info, err := s.TypeInfo(ctx, key)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// TypeInfo returns the localized type for key.
func (s *WeaknessService) TypeInfo(ctx context.Context, key string) (entities.TypeInfo, error) {
	if key == "" {
		return entities.TypeInfo{}, errors.New("type key is required")
	}
	t, err := s.api.Type(ctx, key)
	if err != nil {
		return entities.TypeInfo{}, fmt.Errorf("fetching type %q: %w", key, err)
	}
	from, err := doubleDamageFrom(t)
	if err != nil {
		return entities.TypeInfo{}, err
	}
	return entities.TypeInfo{
		Key:              key,
		Name:             s.localizer.Localize(t.Names, key),
		DoubleDamageFrom: from,
	}, nil
}

func doubleDamageFrom(t *entities.TypeResource) ([]string, error) {
	if t.DamageRelations == nil {
		return nil, &entities.MissingFieldError{Resource: "type " + t.Name, Field: "damage_relations"}
	}
	names := make([]string, 0, len(t.DamageRelations.DoubleDamageFrom))
	for _, rel := range t.DamageRelations.DoubleDamageFrom {
		names = append(names, rel.Name)
	}
	return names, nil
}
