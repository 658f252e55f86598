// Package localization holds the static display tables and the resolver that
// picks a locale variant out of an upstream names array.
package localization

import (
	"golang.org/x/text/language"
)

// Phrases are the fmt templates used when rendering evolution requirements
type Phrases struct {
	Level         string // %d
	HeldItem      string // %s
	Happiness     string // %d
	Beauty        string // %d
	Affection     string // %d
	Location      string // %s
	KnownMove     string // %s
	KnownMoveType string // %s
	PartySpecies  string // %s
	PartyType     string // %s
	Rain          string
}

// Catalog maps canonical upstream identifiers to display strings for one locale.
// Lookups never fail: unknown identifiers come back unchanged.
type Catalog struct {
	Tag        language.Tag
	Types      map[string]string
	Stats      map[string]string
	Triggers   map[string]string
	TimesOfDay map[string]string
	Phrases    Phrases
}

// TypeName translates an elemental type such as "fire"
func (c *Catalog) TypeName(name string) string {
	return lookup(c.Types, name)
}

// StatName translates a stat such as "special-attack"
func (c *Catalog) StatName(name string) string {
	return lookup(c.Stats, name)
}

// TriggerName translates an evolution trigger such as "level-up"
func (c *Catalog) TriggerName(name string) string {
	return lookup(c.Triggers, name)
}

// TimeOfDay translates "day" and "night"; other values pass through
func (c *Catalog) TimeOfDay(value string) string {
	return lookup(c.TimesOfDay, value)
}

func lookup(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

var (
	catalogs = []*Catalog{SimplifiedChinese, English}
	matcher  = language.NewMatcher([]language.Tag{SimplifiedChinese.Tag, English.Tag})
)

// Default is the catalog used when nothing else matches
func Default() *Catalog {
	return SimplifiedChinese
}

// Match picks the catalog best suited to the preferred locales, in order.
// Unparseable locales are skipped; no usable match yields Default.
func Match(preferred []string) *Catalog {
	tags := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		tag, err := language.Parse(p)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return Default()
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return catalogs[idx]
}

var typeColors = map[string]string{
	"normal":   "#A8A878",
	"fire":     "#F08030",
	"water":    "#6890F0",
	"electric": "#F8D030",
	"grass":    "#78C850",
	"ice":      "#98D8D8",
	"fighting": "#C03028",
	"poison":   "#A040A0",
	"ground":   "#E0C068",
	"flying":   "#A890F0",
	"psychic":  "#F85888",
	"bug":      "#A8B820",
	"rock":     "#B8A038",
	"ghost":    "#705898",
	"dark":     "#705848",
	"dragon":   "#7038F8",
	"steel":    "#B8B8D0",
	"fairy":    "#EE99AC",
}

// TypeColor returns the badge color for a type, defaulting to the normal-type color
func TypeColor(name string) string {
	if c, ok := typeColors[name]; ok {
		return c
	}
	return typeColors["normal"]
}
