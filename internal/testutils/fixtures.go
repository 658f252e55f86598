// Package testutils holds upstream fixtures shared by orchestrator and handler tests
package testutils

import (
	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/builders"
)

// Simplified Chinese names used across fixtures
const (
	BulbasaurZh = "妙蛙种子"
	IvysaurZh   = "妙蛙草"
	VenusaurZh  = "妙蛙花"
	EeveeZh     = "伊布"
	VaporeonZh  = "水伊布"
	JolteonZh   = "雷伊布"
	FlareonZh   = "火伊布"
	PikachuZh   = "皮卡丘"
	RaichuZh    = "雷丘"
)

// BulbasaurChain is chain 1: three stages, level requirements only
func BulbasaurChain() *pokeapi.EvolutionChain {
	return builders.NewChainLink(1, "bulbasaur").
		EvolvesTo(
			builders.NewChainLink(2, "ivysaur").AtLevel(16).
				EvolvesTo(builders.NewChainLink(3, "venusaur").AtLevel(32)),
		).
		BuildChain(1)
}

// EeveeChain is chain 67 trimmed to three stone branches, in upstream order
func EeveeChain() *pokeapi.EvolutionChain {
	useItem := func(id int, name string) pokeapi.EvolutionDetail {
		return pokeapi.EvolutionDetail{
			Item:    builders.ItemRef(id, name),
			Trigger: builders.TriggerRef(2, "use-item"),
		}
	}

	return builders.NewChainLink(133, "eevee").
		EvolvesTo(
			builders.NewChainLink(134, "vaporeon").WithDetail(useItem(84, "water-stone")),
			builders.NewChainLink(135, "jolteon").WithDetail(useItem(83, "thunder-stone")),
			builders.NewChainLink(136, "flareon").WithDetail(useItem(82, "fire-stone")),
		).
		BuildChain(67)
}

// PichuChain is chain 10: baby, happiness at day, then a stone
func PichuChain() *pokeapi.EvolutionChain {
	return builders.NewChainLink(172, "pichu").
		EvolvesTo(
			builders.NewChainLink(25, "pikachu").
				WithDetail(pokeapi.EvolutionDetail{
					MinHappiness: builders.IntPtr(220),
					Trigger:      builders.TriggerRef(1, "level-up"),
				}).
				EvolvesTo(
					builders.NewChainLink(26, "raichu").
						WithDetail(pokeapi.EvolutionDetail{
							Item:    builders.ItemRef(83, "thunder-stone"),
							Trigger: builders.TriggerRef(2, "use-item"),
						}),
				),
		).
		BuildChain(10)
}

// ZhNamed returns a resource whose names carry the given zh-Hans value
func ZhNamed(id int, name, zh string) *pokeapi.NamedResource {
	return &pokeapi.NamedResource{
		ID:   id,
		Name: name,
		Names: []pokeapi.Name{
			{Name: name, Language: pokeapi.ResourceRef{Name: "en"}},
			{Name: zh, Language: pokeapi.ResourceRef{Name: "zh-Hans"}},
		},
	}
}

// Entry builds a /pokemon/{id} resource with the given types, in slot order
func Entry(id int, name string, types ...string) *pokeapi.Entry {
	entry := &pokeapi.Entry{
		ID:      id,
		Name:    name,
		Species: builders.SpeciesRef(id, name),
	}
	for i, t := range types {
		entry.Types = append(entry.Types, pokeapi.TypeSlot{Slot: i + 1, Type: *builders.TypeRef(0, t)})
	}
	return entry
}

// Species builds a /pokemon-species/{id} resource named zh in zh-Hans
func Species(id int, name, zh string, chainID int) *pokeapi.Species {
	species := &pokeapi.Species{
		ID:   id,
		Name: name,
		Names: []pokeapi.Name{
			{Name: name, Language: pokeapi.ResourceRef{Name: "en"}},
			{Name: zh, Language: pokeapi.ResourceRef{Name: "zh-Hans"}},
		},
	}
	if chainID > 0 {
		species.EvolutionChain = &pokeapi.ResourceRef{Kind: "evolution-chain", ID: chainID}
	}
	return species
}

// BulbasaurEntry is /pokemon/1 with abilities and stats filled in
func BulbasaurEntry() *pokeapi.Entry {
	entry := Entry(1, "bulbasaur", "grass", "poison")
	entry.Height = 7
	entry.Weight = 69
	entry.Abilities = []pokeapi.AbilitySlot{
		{Ability: pokeapi.ResourceRef{Kind: "ability", ID: 65, Name: "overgrow"}, Slot: 1},
		{Ability: pokeapi.ResourceRef{Kind: "ability", ID: 34, Name: "chlorophyll"}, IsHidden: true, Slot: 3},
	}
	entry.Stats = []pokeapi.StatValue{
		{BaseStat: 45, Stat: pokeapi.ResourceRef{Kind: "stat", ID: 1, Name: "hp"}},
		{BaseStat: 65, Effort: 1, Stat: pokeapi.ResourceRef{Kind: "stat", ID: 4, Name: "special-attack"}},
	}
	return entry
}

// BulbasaurSpecies is /pokemon-species/1 with flavor text, genus and habitat
func BulbasaurSpecies() *pokeapi.Species {
	species := Species(1, "bulbasaur", BulbasaurZh, 1)
	species.CaptureRate = 45
	species.Habitat = &pokeapi.ResourceRef{Kind: "pokemon-habitat", ID: 3, Name: "grassland"}
	species.Genera = []pokeapi.Genus{
		{Genus: "Seed Pokémon", Language: pokeapi.ResourceRef{Name: "en"}},
		{Genus: "种子宝可梦", Language: pokeapi.ResourceRef{Name: "zh-Hans"}},
	}
	species.FlavorTextEntries = []pokeapi.FlavorText{
		{FlavorText: "A strange seed was\nplanted on its\fback at birth.", Language: pokeapi.ResourceRef{Name: "en"}},
		{FlavorText: "出生的时候\n背上就种着\f一颗奇怪的种子。", Language: pokeapi.ResourceRef{Name: "zh-Hant"}},
	}
	return species
}
