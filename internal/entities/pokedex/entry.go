// Package pokedex holds the domain types returned to callers: entry
// summaries, entry detail and the decorated evolution tree.
package pokedex

// EntrySummary is one row of a listing page
type EntrySummary struct {
	ID          int
	Name        string
	DisplayName string
	Types       []TypeSlot
	ImageURL    string
	// Annotated is false when the per-entry detail lookups failed and only
	// the listing data is available
	Annotated bool
}

// TypeSlot is an elemental type with its translated name and display color
type TypeSlot struct {
	Slot        int
	Name        string
	DisplayName string
	Color       string
}

// Stat is a base stat with its translated name
type Stat struct {
	Name        string
	DisplayName string
	BaseStat    int
	Effort      int
}

// Ability is an ability slot with its localized name
type Ability struct {
	Name        string
	DisplayName string
	Hidden      bool
	Slot        int
}

// SpeciesInfo is the localized species data shown on the detail page
type SpeciesInfo struct {
	ID          int
	Name        string
	DisplayName string
	Genus       string
	FlavorText  string
	Habitat     *NamedValue
	CaptureRate int
	IsBaby      bool
	IsLegendary bool
	IsMythical  bool
}

// EntryDetail is everything the detail page renders
type EntryDetail struct {
	ID        int
	Name      string
	Height    int
	Weight    int
	ImageURL  string
	Types     []TypeSlot
	Stats     []Stat
	Abilities []Ability
	Species   *SpeciesInfo
	// Evolution is nil when the species belongs to no chain
	Evolution *EvolutionTree
}
