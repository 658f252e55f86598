package evolution_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/builders"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *pokeapimock.MockClient
	observed     *lookup.Recorder
	orchestrator evolution.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.observed = &lookup.Recorder{}
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = evolution.NewOrchestrator(&evolution.Config{
		Client:      s.mockClient,
		IDGenerator: idgen.NewSequential("walk"),
		Observer:    s.observed,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// speciesOrder lists display names in the order Walk visits them
func speciesOrder(tree *pokedex.EvolutionTree) []string {
	var names []string
	tree.Walk(func(node *pokedex.EvolutionTree, _ int) {
		names = append(names, node.Species.Label())
	})
	return names
}

func (s *OrchestratorTestSuite) TestSingleNodeChain() {
	chain := builders.NewChainLink(132, "ditto").BuildChain(66)
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 66).Return(chain, nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 132, "ditto", "百变怪")

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 66})
	s.Require().NoError(err)

	s.Equal(pokedex.SpeciesNode{ID: 132, Name: "ditto", DisplayName: "百变怪"}, output.Tree.Species)
	s.Empty(output.Tree.Transitions)
	s.Equal(1, output.Tree.Depth())
	s.Equal("walk_1", output.TraversalID)
	s.Len(output.Lookups, 1)
}

func (s *OrchestratorTestSuite) TestLevelOnlyChain() {
	mocks.ExpectBulbasaurChain(s.ctx, s.mockClient)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1})
	s.Require().NoError(err)

	tree := output.Tree
	s.Equal(3, tree.Depth())
	s.Equal([]string{testutils.BulbasaurZh, testutils.IvysaurZh, testutils.VenusaurZh}, speciesOrder(tree))

	s.Require().Len(tree.Transitions, 1)
	s.Equal("Lv.16", tree.Transitions[0].Text)
	s.Equal(16, tree.Transitions[0].Requirements[0].MinLevel)

	ivysaur := tree.Transitions[0].Target
	s.Require().Len(ivysaur.Transitions, 1)
	s.Equal("Lv.32", ivysaur.Transitions[0].Text)
	s.Empty(ivysaur.Transitions[0].Target.Transitions)
}

func (s *OrchestratorTestSuite) TestLevelUpTriggerFollowsLevel() {
	chain := builders.NewChainLink(1, "bulbasaur").
		EvolvesTo(
			builders.NewChainLink(2, "ivysaur").WithDetail(pokeapi.EvolutionDetail{
				MinLevel: builders.IntPtr(16),
				Trigger:  builders.TriggerRef(1, "level-up"),
			}),
		).
		BuildChain(1)

	gomock.InOrder(
		s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 1).Return(chain, nil),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 1, "bulbasaur", testutils.BulbasaurZh),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 2, "ivysaur", testutils.IvysaurZh),
	)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1})
	s.Require().NoError(err)

	s.Require().Len(output.Tree.Transitions, 1)
	s.Equal("Lv.16 等级提升", output.Tree.Transitions[0].Text)
}

func (s *OrchestratorTestSuite) TestThreeTierBranchesMergeDepthFirst() {
	// root -> {left -> merged, right -> merged}
	chain := builders.NewChainLink(901, "root").
		EvolvesTo(
			builders.NewChainLink(902, "left").AtLevel(10).
				EvolvesTo(builders.NewChainLink(904, "merged").AtLevel(20)),
			builders.NewChainLink(903, "right").AtLevel(15).
				EvolvesTo(builders.NewChainLink(904, "merged").AtLevel(30)),
		).
		BuildChain(450)

	gomock.InOrder(
		s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 450).Return(chain, nil),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 901, "root", "根"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 902, "left", "左"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 904, "merged", "合"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 903, "right", "右"),
	)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 450})
	s.Require().NoError(err)

	tree := output.Tree
	s.Equal([]string{"根", "左", "合", "右", "合"}, speciesOrder(tree))
	s.Equal(3, tree.Depth())

	s.Require().Len(tree.Transitions, 2)
	left, right := tree.Transitions[0], tree.Transitions[1]
	s.Equal("Lv.10", left.Text)
	s.Equal("Lv.15", right.Text)

	s.Require().Len(left.Target.Transitions, 1)
	s.Require().Len(right.Target.Transitions, 1)
	s.Equal("Lv.20", left.Target.Transitions[0].Text)
	s.Equal("Lv.30", right.Target.Transitions[0].Text)
	s.Equal(904, right.Target.Transitions[0].Target.Species.ID)

	// merged is fetched once and reused on the second branch
	s.Len(output.Lookups, 4)
}

func (s *OrchestratorTestSuite) TestBranchingChainKeepsOrder() {
	gomock.InOrder(
		s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 67).Return(testutils.EeveeChain(), nil),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 133, "eevee", testutils.EeveeZh),
		mocks.ExpectItemName(s.ctx, s.mockClient, 84, "water-stone", "水之石"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 134, "vaporeon", testutils.VaporeonZh),
		mocks.ExpectItemName(s.ctx, s.mockClient, 83, "thunder-stone", "雷之石"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 135, "jolteon", testutils.JolteonZh),
		mocks.ExpectItemName(s.ctx, s.mockClient, 82, "fire-stone", "火之石"),
		mocks.ExpectSpeciesName(s.ctx, s.mockClient, 136, "flareon", testutils.FlareonZh),
	)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 67})
	s.Require().NoError(err)

	s.Equal([]string{
		testutils.EeveeZh, testutils.VaporeonZh, testutils.JolteonZh, testutils.FlareonZh,
	}, speciesOrder(output.Tree))

	transitions := output.Tree.Transitions
	s.Require().Len(transitions, 3)
	s.Equal("水之石 使用道具", transitions[0].Text)
	s.Equal("雷之石 使用道具", transitions[1].Text)
	s.Equal("火之石 使用道具", transitions[2].Text)
	s.Equal("use-item", transitions[1].Requirements[0].Trigger.Name)
	s.Equal("使用道具", transitions[1].Requirements[0].Trigger.DisplayName)

	s.Len(output.Lookups, 7)
	s.Empty(s.observed.Fallbacks())
}

func (s *OrchestratorTestSuite) TestItemLookupFailureFallsBack() {
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 10).Return(testutils.PichuChain(), nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 172, "pichu", "皮丘")
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 25, "pikachu", testutils.PikachuZh)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 26, "raichu", testutils.RaichuZh)
	mocks.ExpectNamedResourceError(s.ctx, s.mockClient, *builders.ItemRef(83, "thunder-stone"),
		errors.NewTransportError("https://pokeapi.co/api/v2/item/83/", http.StatusInternalServerError))

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 10})
	s.Require().NoError(err)

	s.Equal(3, output.Tree.Depth())
	pikachu := output.Tree.Transitions[0]
	s.Equal("亲密度≥220 等级提升", pikachu.Text)

	raichu := pikachu.Target.Transitions[0]
	s.Equal("thunder-stone", raichu.Requirements[0].Item.Label())
	s.Equal("thunder-stone 使用道具", raichu.Text)
	s.Equal(testutils.RaichuZh, raichu.Target.Species.DisplayName)

	fallbacks := s.observed.Fallbacks()
	s.Require().Len(fallbacks, 1)
	s.Equal(lookup.KindItem, fallbacks[0].Kind)
	s.Equal(83, fallbacks[0].ResourceID)
	s.Equal(output.TraversalID, fallbacks[0].TraversalID)
}

func (s *OrchestratorTestSuite) TestSpeciesLookupFailureFallsBack() {
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 1).Return(testutils.BulbasaurChain(), nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 1, "bulbasaur", testutils.BulbasaurZh)
	mocks.ExpectNamedResourceError(s.ctx, s.mockClient, builders.SpeciesRef(2, "ivysaur"),
		errors.NewTransportError("https://pokeapi.co/api/v2/pokemon-species/2/", http.StatusTooManyRequests))
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 3, "venusaur", testutils.VenusaurZh)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1})
	s.Require().NoError(err)
	s.Equal([]string{testutils.BulbasaurZh, "ivysaur", testutils.VenusaurZh}, speciesOrder(output.Tree))
}

func (s *OrchestratorTestSuite) TestRepeatedItemFetchedOnce() {
	chain := builders.NewChainLink(133, "eevee").
		EvolvesTo(
			builders.NewChainLink(134, "vaporeon").WithDetail(pokeapi.EvolutionDetail{Item: builders.ItemRef(84, "water-stone")}),
			builders.NewChainLink(9999, "wetmon").WithDetail(pokeapi.EvolutionDetail{Item: builders.ItemRef(84, "water-stone")}),
		).
		BuildChain(500)

	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 500).Return(chain, nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 133, "eevee", testutils.EeveeZh)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 134, "vaporeon", testutils.VaporeonZh)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 9999, "wetmon", "湿湿兽")
	mocks.ExpectItemName(s.ctx, s.mockClient, 84, "water-stone", "水之石").Times(1)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 500})
	s.Require().NoError(err)

	s.Equal("水之石", output.Tree.Transitions[0].Text)
	s.Equal("水之石", output.Tree.Transitions[1].Text)
	s.Len(output.Lookups, 4)
}

func (s *OrchestratorTestSuite) TestRootNotFound() {
	notFound := errors.NewTransportError("https://pokeapi.co/api/v2/evolution-chain/99999/", http.StatusNotFound)
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 99999).Return(nil, notFound)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 99999})

	s.Nil(output)
	transportErr, ok := errors.AsTransport(err)
	s.Require().True(ok)
	s.Equal(http.StatusNotFound, transportErr.StatusCode)
	s.True(errors.IsNotFound(err))
	s.Empty(s.observed.Outcomes())
}

func (s *OrchestratorTestSuite) TestCycleAborts() {
	chain := builders.NewChainLink(1, "bulbasaur").
		EvolvesTo(
			builders.NewChainLink(2, "ivysaur").AtLevel(16).
				EvolvesTo(builders.NewChainLink(1, "bulbasaur").AtLevel(32)),
		).
		BuildChain(1)

	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 1).Return(chain, nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 1, "bulbasaur", testutils.BulbasaurZh)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 2, "ivysaur", testutils.IvysaurZh)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1})

	s.Nil(output)
	s.True(errors.IsAborted(err))
}

func (s *OrchestratorTestSuite) TestSameSpeciesOnSiblingBranchesIsNotACycle() {
	chain := builders.NewChainLink(265, "wurmple").
		EvolvesTo(
			builders.NewChainLink(266, "silcoon").AtLevel(7),
			builders.NewChainLink(266, "silcoon").AtLevel(7),
		).
		BuildChain(135)

	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 135).Return(chain, nil)
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 265, "wurmple", "刺尾虫")
	mocks.ExpectSpeciesName(s.ctx, s.mockClient, 266, "silcoon", "甲壳茧").Times(1)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 135})
	s.Require().NoError(err)
	s.Len(output.Tree.Transitions, 2)
}

func (s *OrchestratorTestSuite) TestInvalidChainID() {
	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{ChainID: 0})
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))

	output, err = s.orchestrator.BuildEvolutionTree(s.ctx, nil)
	s.Nil(output)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockClient.EXPECT().GetEvolutionChain(ctx, 1).Return(testutils.BulbasaurChain(), nil)

	output, err := s.orchestrator.BuildEvolutionTree(ctx, &evolution.BuildEvolutionTreeInput{ChainID: 1})
	s.Nil(output)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestEnglishLocales() {
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, 10).Return(testutils.PichuChain(), nil)
	s.mockClient.EXPECT().
		GetNamedResource(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, ref pokeapi.ResourceRef) (*pokeapi.NamedResource, error) {
			return &pokeapi.NamedResource{
				ID:    ref.ID,
				Name:  ref.Name,
				Names: []pokeapi.Name{{Name: "EN:" + ref.Name, Language: pokeapi.ResourceRef{Name: "en"}}},
			}, nil
		}).
		Times(4)

	output, err := s.orchestrator.BuildEvolutionTree(s.ctx, &evolution.BuildEvolutionTreeInput{
		ChainID: 10,
		Locales: []string{"en"},
	})
	s.Require().NoError(err)

	s.Equal("EN:pichu", output.Tree.Species.DisplayName)
	s.Equal("Happiness≥220 Level up", output.Tree.Transitions[0].Text)
	s.Equal("EN:thunder-stone Use item", output.Tree.Transitions[0].Target.Transitions[0].Text)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := evolution.NewOrchestrator(&evolution.Config{})
	s.True(errors.IsInvalidArgument(err))
}
