package evolution

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
)

// BuildEvolutionTreeInput defines the request for building an evolution tree
type BuildEvolutionTreeInput struct {
	// ChainID is the id parsed from a species' evolution_chain ref
	ChainID int
	// Locales are the preferred upstream locales; empty means localization.DefaultLocales
	Locales []string
}

// BuildEvolutionTreeOutput defines the response for building an evolution tree
type BuildEvolutionTreeOutput struct {
	Tree        *pokedex.EvolutionTree
	TraversalID string
	// Lookups holds every secondary lookup made while building, in order
	Lookups []lookup.Outcome
}
