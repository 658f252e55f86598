package pokeapi

import (
	"github.com/KirkDiggler/pokedex-api/internal/localization"
)

// Name is one entry of an upstream names array
type Name struct {
	Name     string      `json:"name"`
	Language ResourceRef `json:"language"`
}

func toLocalizedNames(names []Name) []localization.LocalizedName {
	out := make([]localization.LocalizedName, len(names))
	for i, n := range names {
		out[i] = localization.LocalizedName{Locale: n.Language.Name, Value: n.Name}
	}
	return out
}

// EntryPage is one page of the entry listing
type EntryPage struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []ResourceRef `json:"results"`
}

// HasNext reports whether the upstream advertises another page
func (p *EntryPage) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Entry is the /pokemon/{id} resource
type Entry struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Stats     []StatValue   `json:"stats"`
	Species   ResourceRef   `json:"species"`
}

// TypeSlot is one of an entry's types
type TypeSlot struct {
	Slot int         `json:"slot"`
	Type ResourceRef `json:"type"`
}

// AbilitySlot is one of an entry's abilities
type AbilitySlot struct {
	Ability  ResourceRef `json:"ability"`
	IsHidden bool        `json:"is_hidden"`
	Slot     int         `json:"slot"`
}

// StatValue is one of an entry's base stats
type StatValue struct {
	BaseStat int         `json:"base_stat"`
	Effort   int         `json:"effort"`
	Stat     ResourceRef `json:"stat"`
}

// FlavorText is one localized description
type FlavorText struct {
	FlavorText string      `json:"flavor_text"`
	Language   ResourceRef `json:"language"`
}

// Genus is one localized category such as "Seed Pokémon"
type Genus struct {
	Genus    string      `json:"genus"`
	Language ResourceRef `json:"language"`
}

// Species is the /pokemon-species/{id} resource
type Species struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	CaptureRate       int          `json:"capture_rate"`
	IsBaby            bool         `json:"is_baby"`
	IsLegendary       bool         `json:"is_legendary"`
	IsMythical        bool         `json:"is_mythical"`
	Habitat           *ResourceRef `json:"habitat"`
	EvolutionChain    *ResourceRef `json:"evolution_chain"`
	Names             []Name       `json:"names"`
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
	Genera            []Genus      `json:"genera"`
}

// CanonicalName implements localization.Named
func (s *Species) CanonicalName() string { return s.Name }

// LocalizedNames implements localization.Named
func (s *Species) LocalizedNames() []localization.LocalizedName { return toLocalizedNames(s.Names) }

// NamedResource is the subset shared by every resource with a names array:
// species, items, abilities, habitats and so on.
type NamedResource struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Names []Name `json:"names"`
}

// CanonicalName implements localization.Named
func (n *NamedResource) CanonicalName() string { return n.Name }

// LocalizedNames implements localization.Named
func (n *NamedResource) LocalizedNames() []localization.LocalizedName {
	return toLocalizedNames(n.Names)
}

// EvolutionChain is the /evolution-chain/{id} resource
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the chain. EvolutionDetails describe how the
// previous stage becomes this one and are empty at the root.
type ChainLink struct {
	Species          ResourceRef       `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one alternative set of conditions. Every field is optional.
type EvolutionDetail struct {
	MinLevel           *int         `json:"min_level"`
	MinHappiness       *int         `json:"min_happiness"`
	MinBeauty          *int         `json:"min_beauty"`
	MinAffection       *int         `json:"min_affection"`
	Item               *ResourceRef `json:"item"`
	HeldItem           *ResourceRef `json:"held_item"`
	Trigger            *ResourceRef `json:"trigger"`
	TimeOfDay          string       `json:"time_of_day"`
	Location           *ResourceRef `json:"location"`
	KnownMove          *ResourceRef `json:"known_move"`
	KnownMoveType      *ResourceRef `json:"known_move_type"`
	PartySpecies       *ResourceRef `json:"party_species"`
	PartyType          *ResourceRef `json:"party_type"`
	NeedsOverworldRain bool         `json:"needs_overworld_rain"`
}
