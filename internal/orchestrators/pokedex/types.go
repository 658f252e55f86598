package pokedex

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
)

// ListEntriesInput defines the request for one listing page
type ListEntriesInput struct {
	// Limit is the page size; 0 means the configured default
	Limit  int
	Offset int
	// Locales are the preferred upstream locales; empty means localization.DefaultLocales
	Locales []string
}

// ListEntriesOutput defines the response for one listing page
type ListEntriesOutput struct {
	Entries []*pokedex.EntrySummary
	// Total is the upstream count of all entries
	Total      int
	NextOffset int
	HasMore    bool
}

// GetEntryInput defines the request for an entry's detail page
type GetEntryInput struct {
	ID      int
	Locales []string
}

// GetEntryOutput defines the response for an entry's detail page
type GetEntryOutput struct {
	Entry *pokedex.EntryDetail
	// Lookups holds the detail page's own lookups followed by the evolution tree's
	Lookups []lookup.Outcome
}
