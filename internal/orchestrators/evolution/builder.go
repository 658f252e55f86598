package evolution

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
)

// treeBuilder walks one decoded chain and produces a new, decorated tree.
// The decoded chain is only read.
type treeBuilder struct {
	session *lookup.Session
	catalog *localization.Catalog
	// species on the path from the root to the node being built
	onPath map[string]bool
}

func newTreeBuilder(session *lookup.Session, catalog *localization.Catalog) *treeBuilder {
	return &treeBuilder{
		session: session,
		catalog: catalog,
		onPath:  make(map[string]bool),
	}
}

// build decorates link and then each evolves_to entry in order, depth-first
func (b *treeBuilder) build(ctx context.Context, link *pokeapi.ChainLink) (*pokedex.EvolutionTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, contextCode(err), "evolution traversal interrupted")
	}

	key := speciesKey(link.Species)
	if b.onPath[key] {
		return nil, errors.Abortedf("evolution chain cycles back to species %s", key)
	}
	b.onPath[key] = true
	defer delete(b.onPath, key)

	node := &pokedex.EvolutionTree{
		Species: pokedex.SpeciesNode{
			ID:          link.Species.ID,
			Name:        link.Species.Name,
			DisplayName: b.session.DisplayName(ctx, lookup.KindSpecies, link.Species),
		},
	}

	for i := range link.EvolvesTo {
		next := &link.EvolvesTo[i]

		requirements := make([]pokedex.Requirement, 0, len(next.EvolutionDetails))
		for j := range next.EvolutionDetails {
			requirements = append(requirements, b.requirement(ctx, &next.EvolutionDetails[j]))
		}

		target, err := b.build(ctx, next)
		if err != nil {
			return nil, err
		}

		node.Transitions = append(node.Transitions, pokedex.Transition{
			Requirements: requirements,
			Text:         FormatTransition(requirements, b.catalog),
			Target:       target,
		})
	}

	return node, nil
}

func (b *treeBuilder) requirement(ctx context.Context, detail *pokeapi.EvolutionDetail) pokedex.Requirement {
	r := pokedex.Requirement{
		MinLevel:           deref(detail.MinLevel),
		MinHappiness:       deref(detail.MinHappiness),
		MinBeauty:          deref(detail.MinBeauty),
		MinAffection:       deref(detail.MinAffection),
		TimeOfDay:          detail.TimeOfDay,
		NeedsOverworldRain: detail.NeedsOverworldRain,
	}

	if detail.Item != nil {
		r.Item = b.fetched(ctx, lookup.KindItem, detail.Item)
	}
	if detail.HeldItem != nil {
		r.HeldItem = b.fetched(ctx, lookup.KindItem, detail.HeldItem)
	}
	if detail.PartySpecies != nil {
		r.PartySpecies = b.fetched(ctx, lookup.KindSpecies, detail.PartySpecies)
	}

	r.Trigger = b.mapped(detail.Trigger, b.catalog.TriggerName)
	r.KnownMoveType = b.mapped(detail.KnownMoveType, b.catalog.TypeName)
	r.PartyType = b.mapped(detail.PartyType, b.catalog.TypeName)
	r.Location = b.mapped(detail.Location, localization.Humanize)
	r.KnownMove = b.mapped(detail.KnownMove, localization.Humanize)

	return r
}

// fetched resolves the display name over the network, falling back to the canonical name
func (b *treeBuilder) fetched(ctx context.Context, kind lookup.Kind, ref *pokeapi.ResourceRef) *pokedex.NamedValue {
	return &pokedex.NamedValue{
		ID:          ref.ID,
		Name:        ref.Name,
		DisplayName: b.session.DisplayName(ctx, kind, *ref),
	}
}

// mapped resolves the display name from a static table
func (b *treeBuilder) mapped(ref *pokeapi.ResourceRef, display func(string) string) *pokedex.NamedValue {
	if ref == nil || ref.Name == "" {
		return nil
	}
	return &pokedex.NamedValue{
		ID:          ref.ID,
		Name:        ref.Name,
		DisplayName: display(ref.Name),
	}
}

func speciesKey(ref pokeapi.ResourceRef) string {
	if ref.ID > 0 {
		return fmt.Sprintf("%d (%s)", ref.ID, ref.Name)
	}
	return ref.Name
}

func contextCode(err error) errors.Code {
	if err == context.DeadlineExceeded {
		return errors.CodeDeadlineExceeded
	}
	return errors.CodeCanceled
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
