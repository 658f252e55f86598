package pokedex_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	entities "github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	evolutionmock "github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution/mock"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockClient    *pokeapimock.MockClient
	mockEvolution *evolutionmock.MockService
	observed      *lookup.Recorder
	orchestrator  pokedex.Service
	ctx           context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.mockEvolution = evolutionmock.NewMockService(s.ctrl)
	s.observed = &lookup.Recorder{}
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = pokedex.NewOrchestrator(&pokedex.Config{
		Client:      s.mockClient,
		Evolution:   s.mockEvolution,
		IDGenerator: idgen.NewSequential("detail"),
		Observer:    s.observed,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func listingPage(next bool, refs ...pokeapi.ResourceRef) *pokeapi.EntryPage {
	page := &pokeapi.EntryPage{Count: 1302, Results: refs}
	if next {
		url := "https://pokeapi.co/api/v2/pokemon?offset=3&limit=3"
		page.Next = &url
	}
	return page
}

func entryRef(id int, name string) pokeapi.ResourceRef {
	return pokeapi.ResourceRef{Kind: "pokemon", ID: id, Name: name}
}

func (s *OrchestratorTestSuite) TestListEntries() {
	s.mockClient.EXPECT().
		ListEntries(s.ctx, 3, 0).
		Return(listingPage(true, entryRef(1, "bulbasaur"), entryRef(4, "charmander"), entryRef(7, "squirtle")), nil)

	s.mockClient.EXPECT().GetEntry(s.ctx, 1).Return(testutils.Entry(1, "bulbasaur", "grass", "poison"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 1).Return(testutils.Species(1, "bulbasaur", "妙蛙种子", 1), nil)
	s.mockClient.EXPECT().GetEntry(s.ctx, 4).Return(testutils.Entry(4, "charmander", "fire"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 4).Return(testutils.Species(4, "charmander", "小火龙", 2), nil)
	s.mockClient.EXPECT().GetEntry(s.ctx, 7).Return(testutils.Entry(7, "squirtle", "water"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 7).Return(testutils.Species(7, "squirtle", "杰尼龟", 3), nil)

	output, err := s.orchestrator.ListEntries(s.ctx, &pokedex.ListEntriesInput{Limit: 3})
	s.Require().NoError(err)

	s.Equal(1302, output.Total)
	s.Equal(3, output.NextOffset)
	s.True(output.HasMore)

	s.Require().Len(output.Entries, 3)
	s.Equal([]string{"妙蛙种子", "小火龙", "杰尼龟"}, []string{
		output.Entries[0].DisplayName, output.Entries[1].DisplayName, output.Entries[2].DisplayName,
	})

	bulbasaur := output.Entries[0]
	s.True(bulbasaur.Annotated)
	s.Equal(pokeapi.ImageURL(1), bulbasaur.ImageURL)
	s.Equal([]entities.TypeSlot{
		{Slot: 1, Name: "grass", DisplayName: "草", Color: "#78C850"},
		{Slot: 2, Name: "poison", DisplayName: "毒", Color: "#A040A0"},
	}, bulbasaur.Types)
}

func (s *OrchestratorTestSuite) TestListEntriesDegradesFailedEntry() {
	s.mockClient.EXPECT().
		ListEntries(s.ctx, 20, 40).
		Return(listingPage(false, entryRef(41, "zubat"), entryRef(42, "golbat")), nil)

	s.mockClient.EXPECT().GetEntry(s.ctx, 41).Return(testutils.Entry(41, "zubat", "poison", "flying"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 41).
		Return(nil, errors.NewTransportError("https://pokeapi.co/api/v2/pokemon-species/41/", http.StatusBadGateway))
	s.mockClient.EXPECT().GetEntry(s.ctx, 42).Return(testutils.Entry(42, "golbat", "poison", "flying"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 42).Return(testutils.Species(42, "golbat", "大嘴蝠", 15), nil)

	output, err := s.orchestrator.ListEntries(s.ctx, &pokedex.ListEntriesInput{Offset: 40})
	s.Require().NoError(err)

	s.False(output.HasMore)
	s.Equal(42, output.NextOffset)
	s.Require().Len(output.Entries, 2)

	s.Equal(&entities.EntrySummary{ID: 41, Name: "zubat", ImageURL: pokeapi.ImageURL(41)}, output.Entries[0])
	s.True(output.Entries[1].Annotated)
	s.Equal("大嘴蝠", output.Entries[1].DisplayName)
}

func (s *OrchestratorTestSuite) TestListEntriesListingFailure() {
	s.mockClient.EXPECT().
		ListEntries(s.ctx, 20, 0).
		Return(nil, errors.WrapTransport("https://pokeapi.co/api/v2/pokemon/", 0, context.DeadlineExceeded))

	output, err := s.orchestrator.ListEntries(s.ctx, &pokedex.ListEntriesInput{})
	s.Nil(output)
	s.Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestListEntriesValidation() {
	testCases := []struct {
		name  string
		input *pokedex.ListEntriesInput
	}{
		{"nil input", nil},
		{"limit too large", &pokedex.ListEntriesInput{Limit: 101}},
		{"negative limit", &pokedex.ListEntriesInput{Limit: -1}},
		{"negative offset", &pokedex.ListEntriesInput{Offset: -20}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orchestrator.ListEntries(s.ctx, tc.input)
			s.Nil(output)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) expectBulbasaurDetail() {
	s.mockClient.EXPECT().GetEntry(s.ctx, 1).Return(testutils.BulbasaurEntry(), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 1).Return(testutils.BulbasaurSpecies(), nil)
}

func (s *OrchestratorTestSuite) TestGetEntry() {
	s.expectBulbasaurDetail()

	tree := &entities.EvolutionTree{Species: entities.SpeciesNode{ID: 1, Name: "bulbasaur", DisplayName: testutils.BulbasaurZh}}
	s.mockEvolution.EXPECT().
		BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1, Locales: []string{"zh-Hans", "zh-Hant"}}).
		Return(&evolution.BuildEvolutionTreeOutput{
			Tree:    tree,
			Lookups: []lookup.Outcome{{TraversalID: "walk_1", Kind: lookup.KindSpecies, ResourceID: 1}},
		}, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().
			GetNamedResource(s.ctx, pokeapi.ResourceRef{Kind: "ability", ID: 65, Name: "overgrow"}).
			Return(testutils.ZhNamed(65, "overgrow", "茂盛"), nil),
		s.mockClient.EXPECT().
			GetNamedResource(s.ctx, pokeapi.ResourceRef{Kind: "ability", ID: 34, Name: "chlorophyll"}).
			Return(testutils.ZhNamed(34, "chlorophyll", "叶绿素"), nil),
		s.mockClient.EXPECT().
			GetNamedResource(s.ctx, pokeapi.ResourceRef{Kind: "pokemon-habitat", ID: 3, Name: "grassland"}).
			Return(testutils.ZhNamed(3, "grassland", "草原"), nil),
	)

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 1})
	s.Require().NoError(err)

	detail := output.Entry
	s.Equal(1, detail.ID)
	s.Equal(7, detail.Height)
	s.Equal(69, detail.Weight)
	s.Equal(pokeapi.ImageURL(1), detail.ImageURL)
	s.Same(tree, detail.Evolution)

	s.Equal([]entities.Ability{
		{Name: "overgrow", DisplayName: "茂盛", Slot: 1},
		{Name: "chlorophyll", DisplayName: "叶绿素", Hidden: true, Slot: 3},
	}, detail.Abilities)

	s.Equal([]entities.Stat{
		{Name: "hp", DisplayName: "HP", BaseStat: 45},
		{Name: "special-attack", DisplayName: "特攻", BaseStat: 65, Effort: 1},
	}, detail.Stats)

	info := detail.Species
	s.Equal(testutils.BulbasaurZh, info.DisplayName)
	s.Equal("种子宝可梦", info.Genus)
	s.Equal("出生的时候 背上就种着 一颗奇怪的种子。", info.FlavorText)
	s.Equal("草原", info.Habitat.Label())
	s.Equal(45, info.CaptureRate)

	s.Require().Len(output.Lookups, 4)
	s.Equal("detail_1", output.Lookups[0].TraversalID)
	s.Equal("walk_1", output.Lookups[3].TraversalID)
}

func (s *OrchestratorTestSuite) TestGetEntrySecondaryFailuresFallBack() {
	s.expectBulbasaurDetail()
	s.mockEvolution.EXPECT().
		BuildEvolutionTree(s.ctx, gomock.Any()).
		Return(&evolution.BuildEvolutionTreeOutput{Tree: &entities.EvolutionTree{}}, nil)

	unavailable := errors.NewTransportError("https://pokeapi.co/api/v2/ability/65/", http.StatusServiceUnavailable)
	s.mockClient.EXPECT().
		GetNamedResource(s.ctx, gomock.Any()).
		Return(nil, unavailable).
		Times(3)

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 1})
	s.Require().NoError(err)

	s.Equal("overgrow", output.Entry.Abilities[0].DisplayName)
	s.Equal("chlorophyll", output.Entry.Abilities[1].DisplayName)
	s.Equal("grassland", output.Entry.Species.Habitat.Label())
	s.Len(s.observed.Fallbacks(), 3)
}

func (s *OrchestratorTestSuite) TestGetEntryWithoutChainOrHabitat() {
	entry := testutils.Entry(132, "ditto", "normal")
	species := testutils.Species(132, "ditto", "百变怪", 0)

	s.mockClient.EXPECT().GetEntry(s.ctx, 132).Return(entry, nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 132).Return(species, nil)

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 132})
	s.Require().NoError(err)

	s.Nil(output.Entry.Evolution)
	s.Nil(output.Entry.Species.Habitat)
	s.Empty(output.Entry.Species.Genus)
	s.Empty(output.Lookups)
}

func (s *OrchestratorTestSuite) TestGetEntryNotFound() {
	s.mockClient.EXPECT().
		GetEntry(s.ctx, 99999).
		Return(nil, errors.NewTransportError("https://pokeapi.co/api/v2/pokemon/99999/", http.StatusNotFound))

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 99999})
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetEntryEvolutionFailureIsFatal() {
	s.expectBulbasaurDetail()
	s.mockEvolution.EXPECT().
		BuildEvolutionTree(s.ctx, gomock.Any()).
		Return(nil, errors.NewTransportError("https://pokeapi.co/api/v2/evolution-chain/1/", http.StatusInternalServerError))

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 1})
	s.Nil(output)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestGetEntryEnglish() {
	s.mockClient.EXPECT().GetEntry(s.ctx, 132).Return(testutils.Entry(132, "ditto", "normal"), nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, 132).Return(testutils.Species(132, "ditto", "百变怪", 0), nil)

	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{ID: 132, Locales: []string{"en"}})
	s.Require().NoError(err)

	s.Equal("ditto", output.Entry.Species.DisplayName)
	s.Equal("Normal", output.Entry.Types[0].DisplayName)
}

func (s *OrchestratorTestSuite) TestGetEntryValidation() {
	output, err := s.orchestrator.GetEntry(s.ctx, &pokedex.GetEntryInput{})
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := pokedex.NewOrchestrator(&pokedex.Config{})
	s.True(errors.IsInvalidArgument(err))

	_, err = pokedex.NewOrchestrator(&pokedex.Config{
		Client:      s.mockClient,
		Evolution:   s.mockEvolution,
		IDGenerator: idgen.NewSequential(""),
		PageSize:    500,
	})
	s.True(errors.IsInvalidArgument(err))
}
