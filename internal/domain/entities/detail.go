package entities

// LocationChance is one encounter slot at a localized location.
type LocationChance struct {
	Area   string `json:"area"`
	Chance int    `json:"chance"` // percent, 0-100
}

// VersionEncounters lists the encounter slots of one tracked version,
// highest chance first.
type VersionEncounters struct {
	Version   Version          `json:"version"`
	Locations []LocationChance `json:"locations"`
}

// Evolution is the neighborhood of a species in its evolution chain.
type Evolution struct {
	Parent   *SpeciesRef  `json:"parent,omitempty"`
	Children []SpeciesRef `json:"children,omitempty"`
}

// Detail is the per-species bundle shown when a row is selected.
type Detail struct {
	Species      SpeciesRef          `json:"species"`
	Encounters   []VersionEncounters `json:"encounters"`
	Types        []TypeInfo          `json:"types"`
	Weaknesses   []TypeInfo          `json:"weaknesses"`
	LevelUpMoves []MoveRecord        `json:"level_up_moves"`
	Evolution    Evolution           `json:"evolution"`
	EggGroups    []EggGroupRef       `json:"egg_groups"`
	EggMoves     []MoveRecord        `json:"egg_moves"`
}
