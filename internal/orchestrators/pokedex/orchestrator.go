// Package pokedex implements the entry browsing orchestrator: listing pages
// and per-entry detail
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
)

const (
	// DefaultPageSize matches the upstream listing default
	DefaultPageSize = 20
	// MaxPageSize bounds the per-page fan-out
	MaxPageSize = 100
)

// Service defines the interface for entry browsing
type Service interface {
	// ListEntries fetches one listing page and annotates every entry on it.
	// Only the listing fetch can fail the call.
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// GetEntry assembles the detail page for one entry
	GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client      pokeapi.Client
	Evolution   evolution.Service
	IDGenerator idgen.Generator
	// Observer receives detail-page lookup outcomes (optional)
	Observer lookup.Observer
	Clock    clock.Clock
	// PageSize is used when a request gives no limit (optional, defaults to DefaultPageSize)
	PageSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Evolution == nil {
		vb.RequiredField("Evolution")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.PageSize != 0 {
		errors.ValidateRange("PageSize", c.PageSize, 1, MaxPageSize, vb)
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Observer == nil {
		c.Observer = lookup.LogObserver{}
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	return nil
}

type orchestrator struct {
	client    pokeapi.Client
	evolution evolution.Service
	idGen     idgen.Generator
	observer  lookup.Observer
	clock     clock.Clock
	pageSize  int
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:    cfg.Client,
		evolution: cfg.Evolution,
		idGen:     cfg.IDGenerator,
		observer:  cfg.Observer,
		clock:     cfg.Clock,
		pageSize:  cfg.PageSize,
	}, nil
}

func (o *orchestrator) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limit := input.Limit
	if limit == 0 {
		limit = o.pageSize
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Limit", limit, 1, MaxPageSize, vb)
	if input.Offset < 0 {
		vb.Field("Offset", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	locales := localesOrDefault(input.Locales)
	catalog := localization.Match(locales)

	page, err := o.client.ListEntries(ctx, limit, input.Offset)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list entries at offset %d", input.Offset)
	}

	// Annotate every entry concurrently; one failure degrades only its own row
	entries := make([]*pokedex.EntrySummary, len(page.Results))
	var wg sync.WaitGroup

	for i, ref := range page.Results {
		wg.Add(1)
		go func(idx int, ref pokeapi.ResourceRef) {
			defer wg.Done()

			summary, err := o.annotate(ctx, ref, locales, catalog)
			if err != nil {
				slog.Warn("Failed to annotate entry, using listing data",
					"entry_id", ref.ID,
					"name", ref.Name,
					"error", err)
				summary = degradedSummary(ref)
			}
			entries[idx] = summary
		}(i, ref)
	}

	wg.Wait()

	return &ListEntriesOutput{
		Entries:    entries,
		Total:      page.Count,
		NextOffset: input.Offset + len(entries),
		HasMore:    page.HasNext(),
	}, nil
}

func (o *orchestrator) annotate(
	ctx context.Context,
	ref pokeapi.ResourceRef,
	locales []string,
	catalog *localization.Catalog,
) (*pokedex.EntrySummary, error) {
	if ref.ID <= 0 {
		return nil, errors.InvalidArgumentf("entry %q has no id", ref.Name)
	}

	entry, err := o.client.GetEntry(ctx, ref.ID)
	if err != nil {
		return nil, err
	}

	species, err := o.client.GetSpecies(ctx, speciesID(entry))
	if err != nil {
		return nil, err
	}

	return &pokedex.EntrySummary{
		ID:          entry.ID,
		Name:        entry.Name,
		DisplayName: localization.ResolveName(species, locales),
		Types:       typeSlots(entry.Types, catalog),
		ImageURL:    pokeapi.ImageURL(entry.ID),
		Annotated:   true,
	}, nil
}

func degradedSummary(ref pokeapi.ResourceRef) *pokedex.EntrySummary {
	summary := &pokedex.EntrySummary{
		ID:   ref.ID,
		Name: ref.Name,
	}
	if ref.ID > 0 {
		summary.ImageURL = pokeapi.ImageURL(ref.ID)
	}
	return summary
}

func (o *orchestrator) GetEntry(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ID <= 0 {
		vb.Fieldf("ID", "must be positive, got %d", input.ID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	locales := localesOrDefault(input.Locales)
	catalog := localization.Match(locales)

	entry, err := o.client.GetEntry(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get entry %d", input.ID)
	}

	species, err := o.client.GetSpecies(ctx, speciesID(entry))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get species for entry %d", input.ID)
	}

	var (
		tree           *pokedex.EvolutionTree
		evolutionLooks []lookup.Outcome
	)
	if species.EvolutionChain != nil && species.EvolutionChain.ID > 0 {
		built, err := o.evolution.BuildEvolutionTree(ctx, &evolution.BuildEvolutionTreeInput{
			ChainID: species.EvolutionChain.ID,
			Locales: locales,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build evolution tree for entry %d", input.ID)
		}
		tree = built.Tree
		evolutionLooks = built.Lookups
	}

	recorder := &lookup.Recorder{}
	session, err := lookup.NewSession(&lookup.SessionConfig{
		Client:      o.client,
		Locales:     locales,
		Observer:    lookup.Tee(recorder, o.observer),
		Clock:       o.clock,
		TraversalID: o.idGen.Generate(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start lookup session")
	}

	// Abilities resolve one at a time, each falling back on its own
	abilities := make([]pokedex.Ability, 0, len(entry.Abilities))
	for _, slot := range entry.Abilities {
		abilities = append(abilities, pokedex.Ability{
			Name:        slot.Ability.Name,
			DisplayName: session.DisplayName(ctx, lookup.KindAbility, slot.Ability),
			Hidden:      slot.IsHidden,
			Slot:        slot.Slot,
		})
	}

	info := &pokedex.SpeciesInfo{
		ID:          species.ID,
		Name:        species.Name,
		DisplayName: localization.ResolveName(species, locales),
		Genus:       genus(species, locales),
		FlavorText:  flavorText(species, locales),
		CaptureRate: species.CaptureRate,
		IsBaby:      species.IsBaby,
		IsLegendary: species.IsLegendary,
		IsMythical:  species.IsMythical,
	}
	if species.Habitat != nil {
		info.Habitat = &pokedex.NamedValue{
			ID:          species.Habitat.ID,
			Name:        species.Habitat.Name,
			DisplayName: session.DisplayName(ctx, lookup.KindHabitat, *species.Habitat),
		}
	}

	stats := make([]pokedex.Stat, 0, len(entry.Stats))
	for _, s := range entry.Stats {
		stats = append(stats, pokedex.Stat{
			Name:        s.Stat.Name,
			DisplayName: catalog.StatName(s.Stat.Name),
			BaseStat:    s.BaseStat,
			Effort:      s.Effort,
		})
	}

	return &GetEntryOutput{
		Entry: &pokedex.EntryDetail{
			ID:        entry.ID,
			Name:      entry.Name,
			Height:    entry.Height,
			Weight:    entry.Weight,
			ImageURL:  pokeapi.ImageURL(entry.ID),
			Types:     typeSlots(entry.Types, catalog),
			Stats:     stats,
			Abilities: abilities,
			Species:   info,
			Evolution: tree,
		},
		Lookups: append(recorder.Outcomes(), evolutionLooks...),
	}, nil
}

func typeSlots(slots []pokeapi.TypeSlot, catalog *localization.Catalog) []pokedex.TypeSlot {
	out := make([]pokedex.TypeSlot, 0, len(slots))
	for _, t := range slots {
		out = append(out, pokedex.TypeSlot{
			Slot:        t.Slot,
			Name:        t.Type.Name,
			DisplayName: catalog.TypeName(t.Type.Name),
			Color:       localization.TypeColor(t.Type.Name),
		})
	}
	return out
}

func genus(species *pokeapi.Species, locales []string) string {
	g, ok := localization.Pick(species.Genera, func(g pokeapi.Genus) string { return g.Language.Name }, locales)
	if !ok {
		return ""
	}
	return g.Genus
}

// flavorText picks the preferred description and flattens the line and page
// breaks the upstream text carries.
func flavorText(species *pokeapi.Species, locales []string) string {
	f, ok := localization.Pick(species.FlavorTextEntries,
		func(f pokeapi.FlavorText) string { return f.Language.Name }, locales)
	if !ok {
		return ""
	}
	return strings.Join(strings.Fields(f.FlavorText), " ")
}

func speciesID(entry *pokeapi.Entry) int {
	if entry.Species.ID > 0 {
		return entry.Species.ID
	}
	return entry.ID
}

func localesOrDefault(locales []string) []string {
	if len(locales) == 0 {
		return localization.DefaultLocales
	}
	return locales
}
