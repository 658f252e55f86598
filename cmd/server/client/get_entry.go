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
	entryJSONOutput bool
)

var getEntryCmd = &cobra.Command{
	Use:   "get-entry [entry-id]",
	Short: "Get the detail page for an entry",
	Long:  `Get stats, abilities, species text and the evolution tree of one entry by its numeric id.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGetEntry,
}

func init() {
	getEntryCmd.Flags().BoolVar(&entryJSONOutput, "json", false, "Output as JSON")
}

func runGetEntry(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("entry id must be numeric: %w", err)
	}

	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	log.Printf("Requesting entry %d from %s...", id, serverAddr())

	resp, err := client.GetEntry(ctx, wrapperspb.Int64(id))
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	var view v1alpha1.EntryDetailView
	if err := v1alpha1.FromStruct(resp, &view); err != nil {
		return err
	}

	if entryJSONOutput {
		return printJSON(&view)
	}

	renderEntry(&view)
	return nil
}

func renderEntry(view *v1alpha1.EntryDetailView) {
	title := view.Name
	if view.Species != nil && view.Species.DisplayName != "" {
		title = view.Species.DisplayName
	}
	pterm.DefaultHeader.Printf("#%04d %s", view.ID, title)

	fmt.Printf("Types: %s\n", typeBadges(view.Types))
	fmt.Printf("Height: %.1f m  Weight: %.1f kg\n", float64(view.Height)/10, float64(view.Weight)/10)
	fmt.Printf("Image: %s\n", view.ImageURL)

	if sp := view.Species; sp != nil {
		if sp.Genus != "" {
			fmt.Printf("Genus: %s\n", sp.Genus)
		}
		if sp.Habitat != nil {
			fmt.Printf("Habitat: %s\n", labelOf(sp.Habitat))
		}
		fmt.Printf("Capture rate: %d\n", sp.CaptureRate)
		if sp.FlavorText != "" {
			fmt.Printf("\n%s\n", sp.FlavorText)
		}
	}

	if len(view.Stats) > 0 {
		pterm.DefaultSection.Println("Base stats")
		bars := make(pterm.Bars, 0, len(view.Stats))
		for _, s := range view.Stats {
			bars = append(bars, pterm.Bar{Label: s.DisplayName, Value: s.BaseStat})
		}
		if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render(); err != nil {
			log.Printf("failed to render stats: %v", err)
		}
	}

	if len(view.Abilities) > 0 {
		pterm.DefaultSection.Println("Abilities")
		for _, a := range view.Abilities {
			if a.Hidden {
				fmt.Printf("  - %s %s\n", a.DisplayName, pterm.Gray("(hidden)"))
			} else {
				fmt.Printf("  - %s\n", a.DisplayName)
			}
		}
	}

	if view.Evolution != nil {
		pterm.DefaultSection.Println("Evolution")
		renderTree(view.Evolution)
	}

	renderFallbacks(view.Fallbacks)
}

func labelOf(v *v1alpha1.NamedView) string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return v.Name
}
