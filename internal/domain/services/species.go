package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
)

// minFindScore is the Jaro-Winkler similarity below which non-substring
// candidates are dropped from search results.
const minFindScore = 0.75

// SpeciesEntry is one species of the catalog. Err is set when its detail
// could not be fetched; Name then falls back to the canonical key.
type SpeciesEntry struct {
	entities.SpeciesRef
	Err error `json:"-"`
}

// Match is a search result.
type Match struct {
	Species entities.SpeciesRef `json:"species"`
	Score   float64             `json:"score"`
}

// SpeciesService lists species with localized names.
type SpeciesService struct {
	api         ports.PokeAPI
	localizer   *Localizer
	limit       int
	concurrency int
}

// NewSpeciesService creates a new SpeciesService listing up to limit species.
func NewSpeciesService(api ports.PokeAPI, localizer *Localizer, limit, concurrency int) *SpeciesService {
	if limit <= 0 {
		limit = entities.MaxSpeciesID
	}
	return &SpeciesService{
		api:         api,
		localizer:   localizer,
		limit:       limit,
		concurrency: concurrency,
	}
}

// List returns the species catalog in dex order. Only a failure of the list
// itself is returned; per-species failures are recorded on the entries.
func (s *SpeciesService) List(ctx context.Context) ([]SpeciesEntry, error) {
	refs, err := s.api.ListSpecies(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("listing species: %w", err)
	}

	entries := make([]SpeciesEntry, len(refs))
	for i, ref := range refs {
		id, err := entities.IDFromURL(ref.URL)
		if err != nil {
			// Upstream order is dex order.
			id = i + 1
		}
		entries[i] = SpeciesEntry{SpeciesRef: entities.SpeciesRef{ID: id, Name: ref.Name, Key: ref.Name, URL: ref.URL}}
	}

	err = fanOut(ctx, len(entries), s.concurrency, func(ctx context.Context, i int) {
		sp, err := s.api.Species(ctx, entries[i].ID)
		if err != nil {
			slog.Warn("species name unavailable", "species", entries[i].ID, "err", err)
			entries[i].Err = fmt.Errorf("fetching species %d: %w", entries[i].ID, err)
			return
		}
		entries[i].Name = s.localizer.Localize(sp.Names, entries[i].Key)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Ref returns the localized reference of a single species.
func (s *SpeciesService) Ref(ctx context.Context, id int) (entities.SpeciesRef, error) {
	sp, err := s.api.Species(ctx, id)
	if err != nil {
		return entities.SpeciesRef{ID: id}, fmt.Errorf("fetching species %d: %w", id, err)
	}
	return entities.SpeciesRef{ID: id, Name: s.localizer.Localize(sp.Names, sp.Name), Key: sp.Name}, nil
}

// Find ranks catalog species by similarity of query to their localized name
// or canonical key. Substring matches rank first.
func (s *SpeciesService) Find(ctx context.Context, query string, limit int) ([]Match, error) {
	q := normalizeQuery(query)
	if q == "" {
		return nil, errors.New("search query is required")
	}

	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		Match
		contains bool
	}
	results := make([]scored, 0)
	for _, e := range entries {
		name := normalizeQuery(e.Name)
		key := normalizeQuery(e.Key)
		contains := strings.Contains(name, q) || strings.Contains(key, q)
		score := matchr.JaroWinkler(q, name, false)
		if ks := matchr.JaroWinkler(q, key, false); ks > score {
			score = ks
		}
		if !contains && score < minFindScore {
			continue
		}
		results = append(results, scored{Match: Match{Species: e.SpeciesRef, Score: score}, contains: contains})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].contains != results[j].contains {
			return results[i].contains
		}
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Species.ID < results[j].Species.ID
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = r.Match
	}
	return matches, nil
}

// NameIndex maps species id to display name.
func NameIndex(entries []SpeciesEntry) map[int]string {
	index := make(map[int]string, len(entries))
	for _, e := range entries {
		index[e.ID] = e.DisplayName()
	}
	return index
}

// normalizeQuery folds width variants, lower-cases and maps hiragana to
// katakana so "ふしぎだね" matches "フシギダネ" and "ＢＵＬＢＡ" matches "bulba".
func normalizeQuery(s string) string {
	s = norm.NFC.String(width.Fold.String(strings.TrimSpace(s)))
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.Hiragana) && r >= 'ぁ' && r <= 'ゖ' {
			return r + ('ァ' - 'ぁ')
		}
		return r
	}, s)
}
