package client

import (
	"fmt"
	"log"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
)

var (
	treeJSONOutput bool
)

var getEvolutionTreeCmd = &cobra.Command{
	Use:   "get-evolution-tree [chain-id]",
	Short: "Get a localized evolution tree",
	Long: `Get the decorated evolution tree for an evolution chain id.
Each stage shows its localized name and the requirement text of the edge leading to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runGetEvolutionTree,
}

func init() {
	getEvolutionTreeCmd.Flags().BoolVar(&treeJSONOutput, "json", false, "Output as JSON")
}

func runGetEvolutionTree(_ *cobra.Command, args []string) error {
	chainID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("chain id must be numeric: %w", err)
	}

	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	log.Printf("Requesting evolution chain %d from %s...", chainID, serverAddr())

	resp, err := client.GetEvolutionTree(ctx, wrapperspb.Int64(chainID))
	if err != nil {
		return fmt.Errorf("failed to get evolution tree: %w", err)
	}

	var view v1alpha1.EvolutionTreeResponseView
	if err := v1alpha1.FromStruct(resp, &view); err != nil {
		return err
	}

	if treeJSONOutput {
		return printJSON(&view)
	}

	pterm.DefaultSection.Printf("Evolution chain %d", view.ChainID)
	if view.Tree != nil {
		renderTree(view.Tree)
	}
	renderFallbacks(view.Fallbacks)
	pterm.Info.Printf("traversal %s\n", view.TraversalID)
	return nil
}

func renderTree(tree *v1alpha1.EvolutionTreeView) {
	root := pterm.TreeNode{Children: []pterm.TreeNode{evolutionTreeNode(tree)}}
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		log.Printf("failed to render tree: %v", err)
	}
}
