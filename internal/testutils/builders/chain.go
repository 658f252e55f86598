// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
)

// ChainLinkBuilder provides a fluent interface for building decoded chain links
type ChainLinkBuilder struct {
	link pokeapi.ChainLink
}

// NewChainLink starts a link for the given species
func NewChainLink(speciesID int, name string) *ChainLinkBuilder {
	return &ChainLinkBuilder{
		link: pokeapi.ChainLink{
			Species: SpeciesRef(speciesID, name),
		},
	}
}

// WithDetail appends one alternative requirement for reaching this link
func (b *ChainLinkBuilder) WithDetail(detail pokeapi.EvolutionDetail) *ChainLinkBuilder {
	b.link.EvolutionDetails = append(b.link.EvolutionDetails, detail)
	return b
}

// AtLevel appends a level-up requirement with no trigger
func (b *ChainLinkBuilder) AtLevel(level int) *ChainLinkBuilder {
	return b.WithDetail(pokeapi.EvolutionDetail{MinLevel: IntPtr(level)})
}

// EvolvesTo appends children in order
func (b *ChainLinkBuilder) EvolvesTo(children ...*ChainLinkBuilder) *ChainLinkBuilder {
	for _, child := range children {
		b.link.EvolvesTo = append(b.link.EvolvesTo, child.Build())
	}
	return b
}

// Build returns the link
func (b *ChainLinkBuilder) Build() pokeapi.ChainLink {
	return b.link
}

// BuildChain wraps the link in a chain resource with the given id
func (b *ChainLinkBuilder) BuildChain(chainID int) *pokeapi.EvolutionChain {
	return &pokeapi.EvolutionChain{
		ID:    chainID,
		Chain: b.Build(),
	}
}

// SpeciesRef builds a ref the way the decoder would for /pokemon-species/{id}/
func SpeciesRef(id int, name string) pokeapi.ResourceRef {
	return pokeapi.ResourceRef{Kind: "pokemon-species", ID: id, Name: name}
}

// ItemRef builds a ref the way the decoder would for /item/{id}/
func ItemRef(id int, name string) *pokeapi.ResourceRef {
	return &pokeapi.ResourceRef{Kind: "item", ID: id, Name: name}
}

// TriggerRef builds an /evolution-trigger/ ref
func TriggerRef(id int, name string) *pokeapi.ResourceRef {
	return &pokeapi.ResourceRef{Kind: "evolution-trigger", ID: id, Name: name}
}

// TypeRef builds a /type/ ref
func TypeRef(id int, name string) *pokeapi.ResourceRef {
	return &pokeapi.ResourceRef{Kind: "type", ID: id, Name: name}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
