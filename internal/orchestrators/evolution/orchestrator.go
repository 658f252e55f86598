// Package evolution builds localized evolution trees from PokeAPI chains
package evolution

//go:generate mockgen -destination=mock/mock_service.go -package=evolutionmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
)

// Service defines the interface for evolution operations
type Service interface {
	// BuildEvolutionTree fetches a chain and returns it decorated with
	// display names and requirement text. Only the chain fetch itself can
	// fail the call; name lookups fall back to canonical names.
	BuildEvolutionTree(ctx context.Context, input *BuildEvolutionTreeInput) (*BuildEvolutionTreeOutput, error)
}

// Config holds the dependencies for the evolution orchestrator
type Config struct {
	Client      pokeapi.Client
	IDGenerator idgen.Generator
	// Observer receives every lookup outcome (optional, defaults to lookup.LogObserver)
	Observer lookup.Observer
	// Clock times lookups (optional)
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	if err := vb.Build(); err != nil {
		return err
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
	client   pokeapi.Client
	idGen    idgen.Generator
	observer lookup.Observer
	clock    clock.Clock
}

// NewOrchestrator creates a new evolution orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:   cfg.Client,
		idGen:    cfg.IDGenerator,
		observer: cfg.Observer,
		clock:    cfg.Clock,
	}, nil
}

func (o *orchestrator) BuildEvolutionTree(
	ctx context.Context,
	input *BuildEvolutionTreeInput,
) (*BuildEvolutionTreeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.ChainID <= 0 {
		vb.Fieldf("ChainID", "must be positive, got %d", input.ChainID)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	traversalID := o.idGen.Generate()
	locales := input.Locales
	if len(locales) == 0 {
		locales = localization.DefaultLocales
	}

	slog.Debug("Building evolution tree",
		"traversal_id", traversalID,
		"chain_id", input.ChainID,
		"locales", locales)

	chain, err := o.client.GetEvolutionChain(ctx, input.ChainID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch evolution chain %d", input.ChainID)
	}

	recorder := &lookup.Recorder{}
	session, err := lookup.NewSession(&lookup.SessionConfig{
		Client:      o.client,
		Locales:     locales,
		Observer:    lookup.Tee(recorder, o.observer),
		Clock:       o.clock,
		TraversalID: traversalID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start lookup session")
	}

	b := newTreeBuilder(session, localization.Match(locales))
	tree, err := b.build(ctx, &chain.Chain)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build evolution chain %d", input.ChainID)
	}

	lookups := recorder.Outcomes()
	slog.Debug("Built evolution tree",
		"traversal_id", traversalID,
		"chain_id", input.ChainID,
		"depth", tree.Depth(),
		"lookups", len(lookups),
		"fallbacks", len(recorder.Fallbacks()))

	return &BuildEvolutionTreeOutput{
		Tree:        tree,
		TraversalID: traversalID,
		Lookups:     lookups,
	}, nil
}
