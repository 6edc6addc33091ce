package view

import (
	"strconv"
	"strings"

	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/types"
)

const (
	noFlavorText = "No data available."
	noMoves      = "No level-up moves found."
	noEvolutions = "No evolutions"
	unknown      = "Unknown"
)

// Field is a label/value row
type Field struct {
	Label string
	Value string
}

// StatRow is one bar of the stats tab
type StatRow struct {
	Key   string
	Name  string
	Value int
	Ratio float64
}

// MoveRow is one line of the moves tab
type MoveRow struct {
	Level string
	Name  string
}

// EvolutionStage is one step of the displayed evolution line
type EvolutionStage struct {
	ID      int
	Name    string
	Current bool
}

// Evolution is the chain panel of the about tab. Loaded is false until the
// chain arrives, and stays false when it fails to load.
type Evolution struct {
	Loaded bool
	Stages []EvolutionStage
	Note   string
}

// Detail is the four-tab detail panel
type Detail struct {
	ID     int
	Name   string
	Number string

	Info   []Field
	Flavor string

	Stats []StatRow
	Total int

	Moves      []MoveRow
	MovesEmpty string

	About     []Field
	Evolution Evolution
}

// TabLabels returns the tab captions in cycle order
func TabLabels() []string {
	labels := make([]string, 0, len(catalog.Tabs))
	for _, t := range catalog.Tabs {
		labels = append(labels, strings.ToUpper(t.String()))
	}
	return labels
}

// BuildDetail describes the detail panel. chain may be nil while the
// evolution chain is loading or after it failed.
func BuildDetail(p types.Pokemon, s types.Species, chain *types.EvolutionChain) Detail {
	d := Detail{
		ID:     p.ID,
		Name:   dex.Capitalize(p.Name),
		Number: dex.PadID(p.ID),
		Info: []Field{
			{"Height", dex.Height(p.Height)},
			{"Weight", dex.Weight(p.Weight)},
			{"Ability", orPlaceholder(dex.MainAbility(p))},
			{"Hidden", orPlaceholder(dex.HiddenAbility(p))},
			{"Base Exp", orPlaceholder(dex.BaseExperience(p))},
			{"Catch Rate", orPlaceholder(dex.CatchRate(s))},
			{"Growth", orPlaceholder(dex.GrowthRate(s))},
			{"Rarity", dex.RarityTier(s, p).Label()},
		},
		Flavor: or(noFlavorText)(dex.FlavorText(s)),
		Total:  dex.BaseStatTotal(p),
		About: []Field{
			{"Egg Groups", orPlaceholder(dex.EggGroups(s))},
			{"Gender", dex.GenderRatio(s)},
			{"Habitat", or(unknown)(dex.Habitat(s))},
			{"Happiness", orPlaceholder(dex.Happiness(s))},
			{"Hatch", orPlaceholder(dex.HatchSteps(s))},
			{"Shape", orPlaceholder(dex.Shape(s))},
			{"Color", orPlaceholder(dex.Color(s))},
			{"Generation", orPlaceholder(dex.GenerationLabel(s))},
		},
	}

	for _, st := range p.Stats {
		d.Stats = append(d.Stats, StatRow{
			Key:   st.Stat.Name,
			Name:  dex.StatShortName(st.Stat.Name),
			Value: st.BaseStat,
			Ratio: dex.StatRatio(st.BaseStat),
		})
	}

	for _, m := range dex.LevelUpMoves(p, dex.MaxLevelMoves) {
		d.Moves = append(d.Moves, MoveRow{
			Level: "Lv." + strconv.Itoa(m.Level),
			Name:  strings.ReplaceAll(m.Name, "-", " "),
		})
	}
	if len(d.Moves) == 0 {
		d.MovesEmpty = noMoves
	}

	if chain != nil {
		d.Evolution = BuildEvolution(*chain, p.ID)
	}
	return d
}

// BuildEvolution walks the first branch of chain and marks currentID
func BuildEvolution(chain types.EvolutionChain, currentID int) Evolution {
	ev := Evolution{Loaded: true}
	stages := dex.WalkEvolutionChain(chain.Chain)
	if len(stages) <= 1 {
		ev.Note = noEvolutions
		return ev
	}
	for _, st := range stages {
		ev.Stages = append(ev.Stages, EvolutionStage{
			ID:      st.ID,
			Name:    st.Name,
			Current: st.ID == currentID,
		})
	}
	return ev
}

func orPlaceholder(v string, err error) string {
	return or(dex.Placeholder)(v, err)
}

func or(fallback string) func(string, error) string {
	return func(v string, err error) string {
		if err != nil {
			return fallback
		}
		return v
	}
}
