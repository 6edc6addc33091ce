package types

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
)

// Generation represents a release cohort of Pokémon
type Generation int

const (
	GenI Generation = iota + 1
	GenII
	GenIII
	GenIV
	GenV
	GenVI
	GenVII
	GenVIII
	GenIX
)

var generationRanges = map[Generation][2]int{
	GenI:    {1, 151},
	GenII:   {152, 251},
	GenIII:  {252, 386},
	GenIV:   {387, 493},
	GenV:    {494, 649},
	GenVI:   {650, 721},
	GenVII:  {722, 809},
	GenVIII: {810, 905},
	GenIX:   {906, 1025},
}

var generationNumerals = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}

// AllGenerations lists the selectable generations in order
var AllGenerations = []Generation{GenI, GenII, GenIII, GenIV, GenV, GenVI, GenVII, GenVIII, GenIX}

// String returns the picker label, e.g. "GEN IV"
func (g Generation) String() string {
	if !g.Valid() {
		return fmt.Sprintf("GEN %d", int(g))
	}
	return "GEN " + generationNumerals[g]
}

// Valid reports whether g is one of the known generations
func (g Generation) Valid() bool {
	_, ok := generationRanges[g]
	return ok
}

// Range returns the inclusive national dex id bounds of the generation.
// GEN I: 1-151, GEN II: 152-251, ... GEN IX: 906-1025
func (g Generation) Range() (start, end int) {
	r, ok := generationRanges[g]
	if !ok {
		return 0, 0
	}
	return r[0], r[1]
}

// Size returns the number of entries in the generation
func (g Generation) Size() int {
	start, end := g.Range()
	if end < start {
		return 0
	}
	return end - start + 1
}

// list.Item interface implementation, used by the generation picker
func (g Generation) Title() string { return g.String() }
func (g Generation) Description() string {
	start, end := g.Range()
	return fmt.Sprintf("#%03d - #%03d", start, end)
}
func (g Generation) FilterValue() string { return g.String() }

// Compile-time check that Generation implements list.Item
var _ list.Item = Generation(0)

// CatalogEntry is one row of a generation's roster
type CatalogEntry struct {
	ID   int
	Name string
}

// PokemonSource is the core abstraction for data access.
// Sync methods only, no bubbletea dependency; the TUI wraps them in commands
// and the MCP server calls them directly.
type PokemonSource interface {
	GetRoster(ctx context.Context, start, end int) ([]CatalogEntry, error)
	GetPokemon(ctx context.Context, idOrName string) (Pokemon, error)
	GetSpecies(ctx context.Context, id int) (Species, error)
	GetEvolutionChain(ctx context.Context, url string) (EvolutionChain, error)
}
