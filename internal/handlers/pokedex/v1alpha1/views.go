package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
)

// ListEntriesView is the ListEntries response payload
type ListEntriesView struct {
	Entries    []EntrySummaryView `json:"entries"`
	Total      int                `json:"total"`
	NextOffset int                `json:"next_offset"`
	HasMore    bool               `json:"has_more"`
}

// EntrySummaryView is one listing row
type EntrySummaryView struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name,omitempty"`
	Types       []TypeView `json:"types,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Annotated   bool       `json:"annotated"`
}

// Label returns the display name, or the canonical name for degraded rows
func (v EntrySummaryView) Label() string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return v.Name
}

// TypeView is a translated type badge
type TypeView struct {
	Slot        int    `json:"slot"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
}

// StatView is a translated base stat
type StatView struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	BaseStat    int    `json:"base_stat"`
	Effort      int    `json:"effort,omitempty"`
}

// AbilityView is a localized ability
type AbilityView struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Hidden      bool   `json:"hidden,omitempty"`
	Slot        int    `json:"slot"`
}

// NamedView is a resource reference with its display string
type NamedView struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

// SpeciesView is the localized species section of the detail page
type SpeciesView struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Genus       string     `json:"genus,omitempty"`
	FlavorText  string     `json:"flavor_text,omitempty"`
	Habitat     *NamedView `json:"habitat,omitempty"`
	CaptureRate int        `json:"capture_rate"`
	IsBaby      bool       `json:"is_baby,omitempty"`
	IsLegendary bool       `json:"is_legendary,omitempty"`
	IsMythical  bool       `json:"is_mythical,omitempty"`
}

// EntryDetailView is the GetEntry response payload
type EntryDetailView struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Height    int                `json:"height"`
	Weight    int                `json:"weight"`
	ImageURL  string             `json:"image_url"`
	Types     []TypeView         `json:"types"`
	Stats     []StatView         `json:"stats"`
	Abilities []AbilityView      `json:"abilities"`
	Species   *SpeciesView       `json:"species,omitempty"`
	Evolution *EvolutionTreeView `json:"evolution,omitempty"`
	Fallbacks []LookupView       `json:"fallbacks,omitempty"`
}

// RequirementView is one sparse requirement; absent conditions are omitted
type RequirementView struct {
	MinLevel           int        `json:"min_level,omitempty"`
	MinHappiness       int        `json:"min_happiness,omitempty"`
	MinBeauty          int        `json:"min_beauty,omitempty"`
	MinAffection       int        `json:"min_affection,omitempty"`
	Item               *NamedView `json:"item,omitempty"`
	HeldItem           *NamedView `json:"held_item,omitempty"`
	Trigger            *NamedView `json:"trigger,omitempty"`
	TimeOfDay          string     `json:"time_of_day,omitempty"`
	Location           *NamedView `json:"location,omitempty"`
	KnownMove          *NamedView `json:"known_move,omitempty"`
	KnownMoveType      *NamedView `json:"known_move_type,omitempty"`
	PartySpecies       *NamedView `json:"party_species,omitempty"`
	PartyType          *NamedView `json:"party_type,omitempty"`
	NeedsOverworldRain bool       `json:"needs_overworld_rain,omitempty"`
}

// TransitionView is an edge to the next stage
type TransitionView struct {
	Text         string             `json:"text"`
	Requirements []RequirementView  `json:"requirements,omitempty"`
	Target       *EvolutionTreeView `json:"target"`
}

// EvolutionTreeView is a decorated evolution tree
type EvolutionTreeView struct {
	Species     NamedView        `json:"species"`
	Transitions []TransitionView `json:"transitions,omitempty"`
}

// LookupView reports a lookup that fell back to the canonical name
type LookupView struct {
	Kind       string `json:"kind"`
	ResourceID int    `json:"resource_id,omitempty"`
	Name       string `json:"name"`
	Error      string `json:"error,omitempty"`
}

// EvolutionTreeResponseView is the GetEvolutionTree response payload
type EvolutionTreeResponseView struct {
	ChainID     int                `json:"chain_id"`
	TraversalID string             `json:"traversal_id"`
	Tree        *EvolutionTreeView `json:"tree"`
	Fallbacks   []LookupView       `json:"fallbacks,omitempty"`
}

// ToStruct converts a view into a protobuf Struct through its JSON shape
func ToStruct(view interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(view)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal view")
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal view")
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build struct")
	}
	return s, nil
}

// FromStruct decodes a protobuf Struct into a view
func FromStruct(s *structpb.Struct, view interface{}) error {
	data, err := protojson.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to marshal struct")
	}
	if err := json.Unmarshal(data, view); err != nil {
		return errors.Wrap(err, "failed to decode view")
	}
	return nil
}

func typeViews(types []pokedex.TypeSlot) []TypeView {
	out := make([]TypeView, 0, len(types))
	for _, t := range types {
		out = append(out, TypeView(t))
	}
	return out
}

func namedView(v *pokedex.NamedValue) *NamedView {
	if v == nil {
		return nil
	}
	return &NamedView{ID: v.ID, Name: v.Name, DisplayName: v.DisplayName}
}

func summaryView(e *pokedex.EntrySummary) EntrySummaryView {
	return EntrySummaryView{
		ID:          e.ID,
		Name:        e.Name,
		DisplayName: e.DisplayName,
		Types:       typeViews(e.Types),
		ImageURL:    e.ImageURL,
		Annotated:   e.Annotated,
	}
}

func detailView(d *pokedex.EntryDetail, lookups []lookup.Outcome) *EntryDetailView {
	view := &EntryDetailView{
		ID:        d.ID,
		Name:      d.Name,
		Height:    d.Height,
		Weight:    d.Weight,
		ImageURL:  d.ImageURL,
		Types:     typeViews(d.Types),
		Stats:     make([]StatView, 0, len(d.Stats)),
		Abilities: make([]AbilityView, 0, len(d.Abilities)),
		Evolution: treeView(d.Evolution),
		Fallbacks: fallbackViews(lookups),
	}

	for _, s := range d.Stats {
		view.Stats = append(view.Stats, StatView(s))
	}
	for _, a := range d.Abilities {
		view.Abilities = append(view.Abilities, AbilityView(a))
	}

	if sp := d.Species; sp != nil {
		view.Species = &SpeciesView{
			ID:          sp.ID,
			Name:        sp.Name,
			DisplayName: sp.DisplayName,
			Genus:       sp.Genus,
			FlavorText:  sp.FlavorText,
			Habitat:     namedView(sp.Habitat),
			CaptureRate: sp.CaptureRate,
			IsBaby:      sp.IsBaby,
			IsLegendary: sp.IsLegendary,
			IsMythical:  sp.IsMythical,
		}
	}
	return view
}

func treeView(t *pokedex.EvolutionTree) *EvolutionTreeView {
	if t == nil {
		return nil
	}

	view := &EvolutionTreeView{
		Species: NamedView{ID: t.Species.ID, Name: t.Species.Name, DisplayName: t.Species.DisplayName},
	}
	for _, tr := range t.Transitions {
		reqs := make([]RequirementView, 0, len(tr.Requirements))
		for _, r := range tr.Requirements {
			reqs = append(reqs, requirementView(r))
		}
		view.Transitions = append(view.Transitions, TransitionView{
			Text:         tr.Text,
			Requirements: reqs,
			Target:       treeView(tr.Target),
		})
	}
	return view
}

func requirementView(r pokedex.Requirement) RequirementView {
	return RequirementView{
		MinLevel:           r.MinLevel,
		MinHappiness:       r.MinHappiness,
		MinBeauty:          r.MinBeauty,
		MinAffection:       r.MinAffection,
		Item:               namedView(r.Item),
		HeldItem:           namedView(r.HeldItem),
		Trigger:            namedView(r.Trigger),
		TimeOfDay:          r.TimeOfDay,
		Location:           namedView(r.Location),
		KnownMove:          namedView(r.KnownMove),
		KnownMoveType:      namedView(r.KnownMoveType),
		PartySpecies:       namedView(r.PartySpecies),
		PartyType:          namedView(r.PartyType),
		NeedsOverworldRain: r.NeedsOverworldRain,
	}
}

func fallbackViews(lookups []lookup.Outcome) []LookupView {
	var out []LookupView
	for _, o := range lookups {
		if !o.Fallback {
			continue
		}
		v := LookupView{Kind: string(o.Kind), ResourceID: o.ResourceID, Name: o.Name}
		if o.Err != nil {
			v.Error = o.Err.Error()
		}
		out = append(out, v)
	}
	return out
}
