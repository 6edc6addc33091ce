package dto

import (
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
)

func FromGeneration(g types.Generation) Generation {
	start, end := g.Range()
	return Generation{
		ID:    int(g),
		Name:  g.String(),
		Range: g.Description(),
		Start: start,
		End:   end,
		Size:  g.Size(),
	}
}

func FromGenerations(gens []types.Generation) []Generation {
	out := make([]Generation, 0, len(gens))
	for _, g := range gens {
		out = append(out, FromGeneration(g))
	}
	return out
}

func FromRosterEntry(e types.CatalogEntry) RosterEntry {
	out := RosterEntry{
		ID:     e.ID,
		Number: dex.PadID(e.ID),
		Name:   e.Name,
	}
	if badge, rarity, ok := dex.GridBadge(e.ID); ok {
		out.Badge = badge
		out.Rarity = rarity.Label()
	}
	return out
}

func FromRosterEntries(entries []types.CatalogEntry) []RosterEntry {
	out := make([]RosterEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromRosterEntry(e))
	}
	return out
}

func FromAssets(a pokeapi.Assets, id int) Assets {
	return Assets{
		Artwork:  a.OfficialArtwork(id),
		Shiny:    a.ShinyArtwork(id),
		Sprite:   a.PixelSprite(id),
		Animated: a.AnimatedSprite(id),
		Fallback: a.SpriteChain(id),
		Cry:      a.Cry(id),
	}
}

func FromPokemon(p types.Pokemon, s types.Species, a pokeapi.Assets) PokemonDetail {
	rarity := dex.RarityTier(s, p)

	stats := make([]Stat, 0, len(p.Stats))
	for _, st := range p.Stats {
		stats = append(stats, Stat{Key: st.Stat.Name, Name: dex.StatShortName(st.Stat.Name), Value: st.BaseStat})
	}

	abilities := make([]Ability, 0, len(p.Abilities))
	for _, ab := range p.Abilities {
		abilities = append(abilities, Ability{Name: ab.Ability.Name, Hidden: ab.IsHidden})
	}

	levelMoves := dex.LevelUpMoves(p, 0)
	moves := make([]Move, 0, len(levelMoves))
	for _, m := range levelMoves {
		moves = append(moves, Move{Level: m.Level, Name: m.Name})
	}

	eggGroups := make([]string, 0, len(s.EggGroups))
	for _, g := range s.EggGroups {
		eggGroups = append(eggGroups, g.Name)
	}

	return PokemonDetail{
		ID:             p.ID,
		Name:           p.Name,
		Number:         dex.PadID(p.ID),
		Genus:          optional(dex.Genus(s)),
		Types:          p.TypeNames(),
		Stage:          dex.StageLabel(s),
		Rarity:         rarity.Label(),
		RaritySymbol:   rarity.Symbol(),
		HeightM:        dex.Metres(p.Height),
		WeightKg:       dex.Kilograms(p.Weight),
		BaseExperience: p.BaseExperience,
		CaptureRate:    s.CaptureRate,
		GrowthRate:     optional(dex.GrowthRate(s)),
		Habitat:        optional(dex.Habitat(s)),
		EggGroups:      eggGroups,
		Gender:         dex.GenderRatio(s),
		Generation:     optional(dex.GenerationLabel(s)),
		Stats:          stats,
		BaseStatTotal:  dex.BaseStatTotal(p),
		Abilities:      abilities,
		Moves:          moves,
		FlavorText:     optional(dex.FlavorText(s)),
		Assets:         FromAssets(a, p.ID),
	}
}

func FromEvolution(chain types.EvolutionChain, currentID int) []EvolutionStage {
	stages := dex.WalkEvolutionChain(chain.Chain)
	out := make([]EvolutionStage, 0, len(stages))
	for _, st := range stages {
		out = append(out, EvolutionStage{ID: st.ID, Name: st.Name, Current: st.ID == currentID})
	}
	return out
}

// optional drops a missing-field error; the JSON omits the empty value
func optional(v string, err error) string {
	if err != nil {
		return ""
	}
	return v
}
