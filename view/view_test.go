package view

import (
	"os"
	"testing"

	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/types"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string, v any) {
	t.Helper()
	b, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func bulbasaur(t *testing.T) (types.Pokemon, types.Species) {
	t.Helper()
	var p types.Pokemon
	var s types.Species
	loadFixture(t, "pokemon_1.json", &p)
	loadFixture(t, "species_1.json", &s)
	return p, s
}

func genOneState(t *testing.T) *catalog.State {
	t.Helper()
	s := catalog.New()
	require.NoError(t, s.BeginGeneration(types.GenI))
	entries := make([]types.CatalogEntry, 0, 151)
	for id := 1; id <= 151; id++ {
		entries = append(entries, types.CatalogEntry{ID: id, Name: "entry"})
	}
	s.SetRoster(entries)
	return s
}

func TestBuildGridFirstPage(t *testing.T) {
	s := genOneState(t)
	require.True(t, s.Commit(s.Select(1)))

	g := BuildGrid(s, nil)
	require.Len(t, g.Cells, catalog.PageSize)
	assert.Equal(t, "GEN I", g.Generation)
	assert.Equal(t, "1 / 8", g.PageLabel)
	assert.False(t, g.HasPrev)
	assert.True(t, g.HasNext)
	assert.Equal(t, 151, g.Matches)

	first := g.Cells[0]
	assert.Equal(t, "#001", first.Number)
	assert.True(t, first.Selected)
	assert.True(t, first.Cursor)
	assert.Empty(t, first.Badge)
	assert.False(t, g.Cells[1].Selected)

	rows := g.Rows()
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], catalog.Columns)
}

func TestBuildGridBadges(t *testing.T) {
	s := genOneState(t)
	for s.SetPage(1) {
	}

	g := BuildGrid(s, nil)
	assert.Equal(t, "8 / 8", g.PageLabel)
	assert.True(t, g.HasPrev)
	assert.False(t, g.HasNext)
	require.Len(t, g.Cells, 11)

	byID := map[int]Cell{}
	for _, c := range g.Cells {
		byID[c.ID] = c
	}
	assert.Equal(t, "★", byID[144].Badge)
	assert.Equal(t, dex.Legendary, byID[150].Rarity)
	assert.Equal(t, "✦", byID[151].Badge)
	assert.Equal(t, dex.Mythical, byID[151].Rarity)
	assert.Empty(t, byID[141].Badge)

	assert.Len(t, g.Rows(), 3)
}

func TestBuildGridBadgesFromSpecies(t *testing.T) {
	s := genOneState(t)
	for s.SetPage(1) {
	}

	known := map[int]types.Species{
		150: {},
		149: {IsLegendary: true},
	}
	g := BuildGrid(s, func(id int) (types.Species, bool) {
		sp, ok := known[id]
		return sp, ok
	})

	byID := map[int]Cell{}
	for _, c := range g.Cells {
		byID[c.ID] = c
	}
	assert.Empty(t, byID[150].Badge)
	assert.Equal(t, "★", byID[149].Badge)
	assert.Equal(t, dex.Legendary, byID[149].Rarity)
	assert.Equal(t, "✦", byID[151].Badge)
}

func TestBuildGridEmptySearch(t *testing.T) {
	s := genOneState(t)
	s.SetSearchTerm("nothing-matches")

	g := BuildGrid(s, nil)
	assert.True(t, g.Empty())
	assert.Equal(t, "1 / 1", g.PageLabel)
	assert.Equal(t, "nothing-matches", g.Search)
}

func TestBuildCard(t *testing.T) {
	p, s := bulbasaur(t)
	c := BuildCard(p, s)

	assert.Equal(t, "Bulbasaur", c.Name)
	assert.Equal(t, "#001", c.Number)
	assert.Equal(t, "grass", c.PrimaryType)
	assert.Equal(t, "🌿", c.TypeSymbol)
	assert.Equal(t, []string{"grass", "poison"}, c.Types)
	assert.Equal(t, dex.Uncommon, c.Rarity)
	assert.Equal(t, "◆", c.RaritySymbol)
	assert.Equal(t, "45", c.HP)
	assert.Equal(t, "0.7 m", c.Height)
	assert.Equal(t, "6.9 kg", c.Weight)
	assert.Equal(t, "Basic", c.Stage)
	assert.Equal(t, "Seed Pokémon", c.Genus)
}

func TestBuildCardMissingHP(t *testing.T) {
	c := BuildCard(types.Pokemon{ID: 9, Name: "blastoise"}, types.Species{})
	assert.Equal(t, "??", c.HP)
	assert.Equal(t, "?", c.TypeSymbol)
	assert.Empty(t, c.Genus)
}

func fieldValue(fields []Field, label string) string {
	for _, f := range fields {
		if f.Label == label {
			return f.Value
		}
	}
	return ""
}

func TestBuildDetail(t *testing.T) {
	p, s := bulbasaur(t)
	var chain types.EvolutionChain
	loadFixture(t, "evolution_chain_1.json", &chain)

	d := BuildDetail(p, s, &chain)

	assert.Equal(t, "0.7m (2.3ft)", fieldValue(d.Info, "Height"))
	assert.Equal(t, "Overgrow", fieldValue(d.Info, "Ability"))
	assert.Equal(t, "Chlorophyll", fieldValue(d.Info, "Hidden"))
	assert.Equal(t, "45 (17.6%)", fieldValue(d.Info, "Catch Rate"))
	assert.Equal(t, "Uncommon", fieldValue(d.Info, "Rarity"))
	assert.Equal(t, "A strange seed was planted on its back at birth.", d.Flavor)

	require.Len(t, d.Stats, 6)
	assert.Equal(t, "HP", d.Stats[0].Name)
	assert.Equal(t, 45, d.Stats[0].Value)
	assert.InDelta(t, 45.0/255, d.Stats[0].Ratio, 1e-9)
	assert.Equal(t, 318, d.Total)

	assert.Equal(t, []MoveRow{
		{Level: "Lv.1", Name: "tackle"},
		{Level: "Lv.13", Name: "vine whip"},
		{Level: "Lv.19", Name: "razor leaf"},
	}, d.Moves)
	assert.Empty(t, d.MovesEmpty)

	assert.Equal(t, "Monster, Plant", fieldValue(d.About, "Egg Groups"))
	assert.Equal(t, "Grassland", fieldValue(d.About, "Habitat"))
	assert.Equal(t, "Gen I", fieldValue(d.About, "Generation"))

	require.True(t, d.Evolution.Loaded)
	require.Len(t, d.Evolution.Stages, 3)
	assert.True(t, d.Evolution.Stages[0].Current)
	assert.False(t, d.Evolution.Stages[2].Current)
}

func TestBuildDetailPlaceholders(t *testing.T) {
	var s types.Species
	loadFixture(t, "species_151.json", &s)
	p := types.Pokemon{ID: 151, Name: "mew"}

	d := BuildDetail(p, s, nil)

	assert.Equal(t, dex.Placeholder, fieldValue(d.Info, "Ability"))
	assert.Equal(t, dex.Placeholder, fieldValue(d.Info, "Base Exp"))
	assert.Equal(t, "Mythical", fieldValue(d.Info, "Rarity"))
	assert.Equal(t, "No data available.", d.Flavor)
	assert.Equal(t, "Unknown", fieldValue(d.About, "Habitat"))
	assert.Equal(t, "Genderless", fieldValue(d.About, "Gender"))
	assert.Empty(t, d.Moves)
	assert.Equal(t, "No level-up moves found.", d.MovesEmpty)
	assert.False(t, d.Evolution.Loaded)
	assert.Empty(t, d.Evolution.Stages)
}

func TestBuildEvolutionSingleStage(t *testing.T) {
	chain := types.EvolutionChain{Chain: types.ChainLink{
		Species: types.NamedResource{Name: "mew", URL: "https://pokeapi.co/api/v2/pokemon-species/151/"},
	}}
	ev := BuildEvolution(chain, 151)
	assert.True(t, ev.Loaded)
	assert.Empty(t, ev.Stages)
	assert.Equal(t, "No evolutions", ev.Note)
}

func TestTabLabels(t *testing.T) {
	assert.Equal(t, []string{"INFO", "STATS", "MOVES", "ABOUT"}, TabLabels())
}
