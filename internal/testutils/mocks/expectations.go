// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/builders"
)

// ExpectSpeciesName sets up one species name lookup returning the zh-Hans name
func ExpectSpeciesName(
	ctx context.Context, mockClient *pokeapimock.MockClient, id int, name, zh string,
) *gomock.Call {
	return mockClient.EXPECT().
		GetNamedResource(ctx, builders.SpeciesRef(id, name)).
		Return(testutils.ZhNamed(id, name, zh), nil)
}

// ExpectItemName sets up one item name lookup returning the zh-Hans name
func ExpectItemName(
	ctx context.Context, mockClient *pokeapimock.MockClient, id int, name, zh string,
) *gomock.Call {
	return mockClient.EXPECT().
		GetNamedResource(ctx, *builders.ItemRef(id, name)).
		Return(testutils.ZhNamed(id, name, zh), nil)
}

// ExpectBulbasaurChain sets up chain 1 and its three species lookups, in traversal order
func ExpectBulbasaurChain(ctx context.Context, mockClient *pokeapimock.MockClient) {
	gomock.InOrder(
		mockClient.EXPECT().GetEvolutionChain(ctx, 1).Return(testutils.BulbasaurChain(), nil),
		ExpectSpeciesName(ctx, mockClient, 1, "bulbasaur", testutils.BulbasaurZh),
		ExpectSpeciesName(ctx, mockClient, 2, "ivysaur", testutils.IvysaurZh),
		ExpectSpeciesName(ctx, mockClient, 3, "venusaur", testutils.VenusaurZh),
	)
}

// ExpectNamedResourceError fails one lookup with err
func ExpectNamedResourceError(
	ctx context.Context, mockClient *pokeapimock.MockClient, ref pokeapi.ResourceRef, err error,
) *gomock.Call {
	return mockClient.EXPECT().
		GetNamedResource(ctx, ref).
		Return(nil, err)
}
