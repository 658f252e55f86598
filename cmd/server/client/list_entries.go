package client

import (
	"fmt"
	"log"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
)

var (
	listLimit      int
	listOffset     int
	listPages      int
	listJSONOutput bool
)

var listEntriesCmd = &cobra.Command{
	Use:   "list-entries",
	Short: "List entries page by page",
	Long: `List Pokedex entries with localized names and types.
Use --pages to follow the next offset across several pages.`,
	RunE: runListEntries,
}

func init() {
	listEntriesCmd.Flags().IntVar(&listLimit, "limit", 20, "Entries per page (1-100)")
	listEntriesCmd.Flags().IntVar(&listOffset, "offset", 0, "Offset of the first entry")
	listEntriesCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to fetch")
	listEntriesCmd.Flags().BoolVar(&listJSONOutput, "json", false, "Output as JSON")
}

func runListEntries(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	log.Printf("Requesting entries from %s...", serverAddr())

	var pages []v1alpha1.ListEntriesView
	offset := listOffset
	for i := 0; i < listPages; i++ {
		req, err := structpb.NewStruct(map[string]interface{}{
			"limit":  listLimit,
			"offset": offset,
		})
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := client.ListEntries(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		var page v1alpha1.ListEntriesView
		if err := v1alpha1.FromStruct(resp, &page); err != nil {
			return err
		}
		pages = append(pages, page)

		if !page.HasMore {
			break
		}
		offset = page.NextOffset
	}

	merged := mergePages(pages)
	if listJSONOutput {
		return printJSON(merged)
	}

	renderEntries(merged)
	return nil
}

// mergePages concatenates pages in order, dropping entries already seen.
// Upstream paging is offset based, so an entry can repeat if the listing
// shifts between requests.
func mergePages(pages []v1alpha1.ListEntriesView) v1alpha1.ListEntriesView {
	if len(pages) == 0 {
		return v1alpha1.ListEntriesView{}
	}

	last := pages[len(pages)-1]
	entries := lo.FlatMap(pages, func(p v1alpha1.ListEntriesView, _ int) []v1alpha1.EntrySummaryView {
		return p.Entries
	})

	return v1alpha1.ListEntriesView{
		Entries: lo.UniqBy(entries, func(e v1alpha1.EntrySummaryView) int {
			return e.ID
		}),
		Total:      last.Total,
		NextOffset: last.NextOffset,
		HasMore:    last.HasMore,
	}
}

func renderEntries(view v1alpha1.ListEntriesView) {
	pterm.DefaultSection.Printf("%d of %d entries", len(view.Entries), view.Total)

	data := pterm.TableData{{"#", "Name", "Types"}}
	for _, e := range view.Entries {
		data = append(data, []string{fmt.Sprintf("%04d", e.ID), e.Label(), typeBadges(e.Types)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Printf("failed to render table: %v", err)
	}

	degraded := lo.CountBy(view.Entries, func(e v1alpha1.EntrySummaryView) bool { return !e.Annotated })
	if degraded > 0 {
		pterm.Warning.Printf("%d entries could not be annotated and show their canonical name\n", degraded)
	}
	if view.HasMore {
		pterm.Info.Printf("More results available. Next offset: %d\n", view.NextOffset)
	}
}
