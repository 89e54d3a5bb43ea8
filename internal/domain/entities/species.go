// Package entities contains core domain data structures.
package entities

import (
	"sort"
	"strconv"
)

// MaxSpeciesID is the highest national dex number covered (Generation III).
const MaxSpeciesID = 386

// SpeciesRef identifies a species with its display name.
type SpeciesRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`          // Localized display name
	Key  string `json:"key,omitempty"` // Canonical English key (e.g., "bulbasaur")
	URL  string `json:"url,omitempty"`
}

// DisplayName returns the localized name, or the id when no name is known.
func (s SpeciesRef) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return strconv.Itoa(s.ID)
}

// ValidSpeciesID reports whether id is within the covered dex range.
func ValidSpeciesID(id int) bool {
	return id >= 1 && id <= MaxSpeciesID
}

// TypeInfo is a localized elemental type.
type TypeInfo struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	DoubleDamageFrom []string `json:"double_damage_from,omitempty"`
}

// EggGroupRef is a localized egg group.
type EggGroupRef struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// KeySet is an unordered set of upstream keys (type or move names).
type KeySet map[string]struct{}

// NewKeySet builds a set from keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

// Add inserts key.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is present.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in ascending order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
