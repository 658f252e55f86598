package evolution

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/localization"
)

const (
	fragmentSeparator    = " "
	alternativeSeparator = ", "
)

// FormatRequirement renders the conditions of r that are present, always in
// the same order: level, item, held item, happiness, beauty, affection, time
// of day, location, known move, known move type, party species, party type,
// weather, trigger. An empty requirement renders as "".
func FormatRequirement(r pokedex.Requirement, c *localization.Catalog) string {
	if c == nil {
		c = localization.Default()
	}
	p := c.Phrases

	var fragments []string
	add := func(s string) {
		if s != "" {
			fragments = append(fragments, s)
		}
	}

	if r.MinLevel > 0 {
		add(fmt.Sprintf(p.Level, r.MinLevel))
	}
	if r.Item != nil {
		add(r.Item.Label())
	}
	if r.HeldItem != nil {
		add(fmt.Sprintf(p.HeldItem, r.HeldItem.Label()))
	}
	if r.MinHappiness > 0 {
		add(fmt.Sprintf(p.Happiness, r.MinHappiness))
	}
	if r.MinBeauty > 0 {
		add(fmt.Sprintf(p.Beauty, r.MinBeauty))
	}
	if r.MinAffection > 0 {
		add(fmt.Sprintf(p.Affection, r.MinAffection))
	}
	if r.TimeOfDay != "" {
		add(c.TimeOfDay(r.TimeOfDay))
	}
	if r.Location != nil {
		add(fmt.Sprintf(p.Location, r.Location.Label()))
	}
	if r.KnownMove != nil {
		add(fmt.Sprintf(p.KnownMove, r.KnownMove.Label()))
	}
	if r.KnownMoveType != nil {
		add(fmt.Sprintf(p.KnownMoveType, c.TypeName(r.KnownMoveType.Name)))
	}
	if r.PartySpecies != nil {
		add(fmt.Sprintf(p.PartySpecies, r.PartySpecies.Label()))
	}
	if r.PartyType != nil {
		add(fmt.Sprintf(p.PartyType, c.TypeName(r.PartyType.Name)))
	}
	if r.NeedsOverworldRain {
		add(p.Rain)
	}
	if r.Trigger != nil {
		add(c.TriggerName(r.Trigger.Name))
	}

	return strings.Join(fragments, fragmentSeparator)
}

// FormatTransition renders each alternative and joins the non-empty ones
func FormatTransition(requirements []pokedex.Requirement, c *localization.Catalog) string {
	texts := make([]string, 0, len(requirements))
	for _, r := range requirements {
		if text := FormatRequirement(r, c); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, alternativeSeparator)
}
