package client

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
)

func TestMergePages(t *testing.T) {
	pages := []v1alpha1.ListEntriesView{
		{
			Entries: []v1alpha1.EntrySummaryView{{ID: 1, Name: "bulbasaur"}, {ID: 2, Name: "ivysaur"}},
			Total:   1302, NextOffset: 2, HasMore: true,
		},
		{
			// listing shifted between requests; ivysaur shows up again
			Entries: []v1alpha1.EntrySummaryView{{ID: 2, Name: "ivysaur"}, {ID: 3, Name: "venusaur"}},
			Total:   1302, NextOffset: 4, HasMore: true,
		},
	}

	merged := mergePages(pages)

	require.Len(t, merged.Entries, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{merged.Entries[0].ID, merged.Entries[1].ID, merged.Entries[2].ID})
	assert.Equal(t, 4, merged.NextOffset)
	assert.True(t, merged.HasMore)
	assert.Equal(t, 1302, merged.Total)
}

func TestMergePagesEmpty(t *testing.T) {
	assert.Empty(t, mergePages(nil).Entries)
}

func TestEvolutionTreeNode(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tree := &v1alpha1.EvolutionTreeView{
		Species: v1alpha1.NamedView{ID: 133, Name: "eevee", DisplayName: "伊布"},
		Transitions: []v1alpha1.TransitionView{
			{
				Text:   "雷之石",
				Target: &v1alpha1.EvolutionTreeView{Species: v1alpha1.NamedView{ID: 135, Name: "jolteon", DisplayName: "雷伊布"}},
			},
			{
				Text:   "",
				Target: &v1alpha1.EvolutionTreeView{Species: v1alpha1.NamedView{ID: 136, Name: "flareon"}},
			},
			{Text: "dangling"},
		},
	}

	node := evolutionTreeNode(tree)

	assert.Equal(t, "#133 伊布 eevee", node.Text)
	require.Len(t, node.Children, 2)
	assert.Equal(t, "(雷之石) #135 雷伊布 jolteon", node.Children[0].Text)
	assert.Equal(t, "#136 flareon", node.Children[1].Text)
}

func TestTypeBadgesFallsBackOnBadColor(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	badges := typeBadges([]v1alpha1.TypeView{
		{Name: "grass", DisplayName: "草", Color: "#78C850"},
		{Name: "poison", DisplayName: "毒", Color: "not-a-color"},
	})

	assert.Contains(t, badges, "草")
	assert.Contains(t, badges, " 毒")
}

func TestParseHexColor(t *testing.T) {
	rgb, ok := parseHexColor("#78C850")
	require.True(t, ok)
	assert.Equal(t, pterm.NewRGB(0x78, 0xC8, 0x50), rgb)

	for _, bad := range []string{"", "78C850", "#78C85", "#GGGGGG", "not-a-color"} {
		_, ok := parseHexColor(bad)
		assert.False(t, ok, bad)
	}
}
