package dex

import (
	"strings"

	"github.com/qyinm/pokedextui/types"
)

// MaxStatValue is the scale used for stat bars
const MaxStatValue = 255

var statShortNames = map[string]string{
	"hp":              "HP",
	"attack":          "ATK",
	"defense":         "DEF",
	"special-attack":  "SP.ATK",
	"special-defense": "SP.DEF",
	"speed":           "SPD",
}

// BaseStatTotal sums every base stat of the pokemon
func BaseStatTotal(p types.Pokemon) int {
	total := 0
	for _, s := range p.Stats {
		total += s.BaseStat
	}
	return total
}

// StatShortName abbreviates a PokeAPI stat key, passing unknown keys through
func StatShortName(key string) string {
	if short, ok := statShortNames[key]; ok {
		return short
	}
	return key
}

// StatRatio returns value/255 clamped into [0, 1]
func StatRatio(value int) float64 {
	if value <= 0 {
		return 0
	}
	r := float64(value) / MaxStatValue
	if r > 1 {
		return 1
	}
	return r
}

// StatBar draws a width-cell bar proportional to value/255
func StatBar(value, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(StatRatio(value)*float64(width) + 0.5)
	if value > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
