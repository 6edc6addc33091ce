// Package dex holds the pure derivations behind the card and detail views:
// rarity tiers, evolution walks, stat totals, move lists and display formatting.
package dex

import "github.com/qyinm/pokedextui/types"

// Rarity is a display-only classification of a species
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Legendary
	Mythical
)

const (
	rareBSTThreshold         = 600
	uncommonCaptureThreshold = 45
)

// Label returns the human readable tier name
func (r Rarity) Label() string {
	switch r {
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Rare:
		return "Rare"
	case Legendary:
		return "Legendary"
	case Mythical:
		return "Mythical"
	default:
		return "Unknown"
	}
}

// Symbol returns the TCG style rarity mark:
// ● common, ◆ uncommon, ★ rare, ★★ legendary, ✦ mythical
func (r Rarity) Symbol() string {
	switch r {
	case Common:
		return "●"
	case Uncommon:
		return "◆"
	case Rare:
		return "★"
	case Legendary:
		return "★★"
	case Mythical:
		return "✦"
	default:
		return "?"
	}
}

func (r Rarity) String() string { return r.Label() }

// RarityTier classifies a species by priority: mythical, legendary,
// base stat total >= 600, capture rate <= 45, otherwise common.
func RarityTier(species types.Species, pokemon types.Pokemon) Rarity {
	switch {
	case species.IsMythical:
		return Mythical
	case species.IsLegendary:
		return Legendary
	case BaseStatTotal(pokemon) >= rareBSTThreshold:
		return Rare
	case species.CaptureRate != nil && *species.CaptureRate <= uncommonCaptureThreshold:
		return Uncommon
	default:
		return Common
	}
}
