package localization

import "golang.org/x/text/language"

// English renders identifiers as plain English labels
var English = &Catalog{
	Tag: language.English,
	Types: map[string]string{
		"normal":   "Normal",
		"fire":     "Fire",
		"water":    "Water",
		"electric": "Electric",
		"grass":    "Grass",
		"ice":      "Ice",
		"fighting": "Fighting",
		"poison":   "Poison",
		"ground":   "Ground",
		"flying":   "Flying",
		"psychic":  "Psychic",
		"bug":      "Bug",
		"rock":     "Rock",
		"ghost":    "Ghost",
		"dark":     "Dark",
		"dragon":   "Dragon",
		"steel":    "Steel",
		"fairy":    "Fairy",
	},
	Stats: map[string]string{
		"hp":              "HP",
		"attack":          "Attack",
		"defense":         "Defense",
		"special-attack":  "Sp. Atk",
		"special-defense": "Sp. Def",
		"speed":           "Speed",
	},
	Triggers: map[string]string{
		"level-up":            "Level up",
		"use-item":            "Use item",
		"trade":               "Trade",
		"shed":                "Shed",
		"spin":                "Spin",
		"tower-of-darkness":   "Tower of Darkness",
		"tower-of-waters":     "Tower of Waters",
		"three-critical-hits": "Three critical hits",
		"take-damage":         "Take damage",
		"other":               "Other",
		"agile-style-move":    "Agile style move",
		"strong-style-move":   "Strong style move",
		"recoil-damage":       "Recoil damage",
	},
	TimesOfDay: map[string]string{
		"day":   "Daytime",
		"night": "Nighttime",
	},
	Phrases: Phrases{
		Level:         "Lv.%d",
		HeldItem:      "holding %s",
		Happiness:     "Happiness≥%d",
		Beauty:        "Beauty≥%d",
		Affection:     "Affection≥%d",
		Location:      "at %s",
		KnownMove:     "knows %s",
		KnownMoveType: "knows a %s move",
		PartySpecies:  "with %s in party",
		PartyType:     "with a %s type in party",
		Rain:          "while raining",
	},
}
