// Package services contains domain business logic.
package services

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/ersonp/dex-core/internal/domain/entities"
)

// DefaultLanguages is the canonical display language preference.
var DefaultLanguages = []string{"ja", "ja-Hrkt"}

// preference is a language key parsed once. Keys that are not valid BCP 47
// (PokeAPI uses a few, e.g. "roomaji") are compared as raw strings.
type preference struct {
	raw    string
	tag    language.Tag
	parsed bool
}

func parsePreference(key string) preference {
	tag, err := language.Parse(key)
	return preference{raw: key, tag: tag, parsed: err == nil}
}

func (p preference) matches(other preference) bool {
	if p.parsed && other.parsed {
		return p.tag == other.tag
	}
	return strings.EqualFold(p.raw, other.raw)
}

// Localizer resolves display names from a resource's names list.
type Localizer struct {
	prefs []preference
}

// NewLocalizer creates a Localizer for languages in preference order.
// With no languages it uses DefaultLanguages.
func NewLocalizer(languages ...string) *Localizer {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	prefs := make([]preference, 0, len(languages))
	for _, l := range languages {
		prefs = append(prefs, parsePreference(l))
	}
	return &Localizer{prefs: prefs}
}

// Lookup returns the name of the most preferred language present in names.
func (l *Localizer) Lookup(names []entities.LocalizedName) (string, bool) {
	if len(names) == 0 {
		return "", false
	}
	keys := make([]preference, len(names))
	for i, n := range names {
		keys[i] = parsePreference(n.Language.Name)
	}
	for _, pref := range l.prefs {
		for i, n := range names {
			if n.Name != "" && pref.matches(keys[i]) {
				return n.Name, true
			}
		}
	}
	return "", false
}

// Localize returns the preferred-language name, or fallback when none matches.
func (l *Localizer) Localize(names []entities.LocalizedName, fallback string) string {
	if name, ok := l.Lookup(names); ok {
		return name
	}
	return fallback
}

// LocationArea resolves a location area name with the three-tier fallback:
// the area's own names, then its parent location's names, then the area key.
// location may be nil when the area already matched or has no parent.
func (l *Localizer) LocationArea(area *entities.LocationAreaResource, location *entities.LocationResource) string {
	if name, ok := l.Lookup(area.Names); ok {
		return name
	}
	if location != nil {
		if name, ok := l.Lookup(location.Names); ok {
			return name
		}
	}
	return area.Name
}

// Localize resolves names with an explicit preference list.
func Localize(names []entities.LocalizedName, preferred []string, fallback string) string {
	return NewLocalizer(preferred...).Localize(names, fallback)
}
