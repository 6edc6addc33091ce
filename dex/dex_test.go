package dex

import (
	"os"
	"testing"

	"github.com/qyinm/pokedextui/types"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

// statsSumming builds a pokemon whose six base stats add up to total.
func statsSumming(total int) types.Pokemon {
	keys := []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}
	p := types.Pokemon{}
	each := total / len(keys)
	for i, k := range keys {
		v := each
		if i == 0 {
			v += total - each*len(keys)
		}
		p.Stats = append(p.Stats, types.StatSlot{BaseStat: v, Stat: types.NamedResource{Name: k}})
	}
	return p
}

func loadFixture(t *testing.T, name string, v any) {
	t.Helper()
	b, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestRarityTier(t *testing.T) {
	tests := []struct {
		name    string
		species types.Species
		pokemon types.Pokemon
		want    Rarity
	}{
		{
			name:    "mythical wins over everything",
			species: types.Species{IsMythical: true, IsLegendary: true, CaptureRate: intPtr(255)},
			pokemon: statsSumming(300),
			want:    Mythical,
		},
		{
			name:    "mythical with 680 bst",
			species: types.Species{IsMythical: true, CaptureRate: intPtr(3)},
			pokemon: statsSumming(680),
			want:    Mythical,
		},
		{
			name:    "legendary",
			species: types.Species{IsLegendary: true, CaptureRate: intPtr(3)},
			pokemon: statsSumming(680),
			want:    Legendary,
		},
		{
			name:    "bst exactly 600 is rare",
			species: types.Species{CaptureRate: intPtr(45)},
			pokemon: statsSumming(600),
			want:    Rare,
		},
		{
			name:    "bst 599 capture 45 is uncommon",
			species: types.Species{CaptureRate: intPtr(45)},
			pokemon: statsSumming(599),
			want:    Uncommon,
		},
		{
			name:    "capture 46 is common",
			species: types.Species{CaptureRate: intPtr(46)},
			pokemon: statsSumming(500),
			want:    Common,
		},
		{
			name:    "missing capture rate is common",
			species: types.Species{},
			pokemon: statsSumming(318),
			want:    Common,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RarityTier(tt.species, tt.pokemon))
		})
	}
}

func TestRarityLabelsAndSymbols(t *testing.T) {
	assert.Equal(t, "Mythical", Mythical.Label())
	assert.Equal(t, "✦", Mythical.Symbol())
	assert.Equal(t, "★★", Legendary.Symbol())
	assert.Equal(t, "★", Rare.Symbol())
	assert.Equal(t, "◆", Uncommon.Symbol())
	assert.Equal(t, "●", Common.Symbol())
	assert.Equal(t, "Uncommon", Uncommon.String())
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "Basic", StageLabel(types.Species{}))
	assert.Equal(t, "Stage 1+", StageLabel(types.Species{EvolvesFromSpecies: &types.NamedResource{Name: "ivysaur"}}))
}

func TestBaseStatTotal(t *testing.T) {
	var p types.Pokemon
	loadFixture(t, "pokemon_1.json", &p)
	assert.Equal(t, 318, BaseStatTotal(p))
	assert.Equal(t, 0, BaseStatTotal(types.Pokemon{}))
}

func TestWalkEvolutionChainLinear(t *testing.T) {
	var chain types.EvolutionChain
	loadFixture(t, "evolution_chain_1.json", &chain)

	stages := WalkEvolutionChain(chain.Chain)
	require.Len(t, stages, 3)
	assert.Equal(t, []ChainStage{
		{ID: 1, Name: "bulbasaur"},
		{ID: 2, Name: "ivysaur"},
		{ID: 3, Name: "venusaur"},
	}, stages)
}

func TestWalkEvolutionChainBranchingTakesFirst(t *testing.T) {
	var chain types.EvolutionChain
	loadFixture(t, "evolution_chain_67.json", &chain)

	stages := WalkEvolutionChain(chain.Chain)
	require.Len(t, stages, 2)
	assert.Equal(t, "eevee", stages[0].Name)
	assert.Equal(t, "vaporeon", stages[1].Name)
	assert.Equal(t, 134, stages[1].ID)
}

func TestWalkEvolutionChainRestartable(t *testing.T) {
	var chain types.EvolutionChain
	loadFixture(t, "evolution_chain_1.json", &chain)

	first := WalkEvolutionChain(chain.Chain)
	second := WalkEvolutionChain(chain.Chain)
	assert.Equal(t, first, second)
}

func TestWalkEvolutionChainSingle(t *testing.T) {
	stages := WalkEvolutionChain(types.ChainLink{
		Species: types.NamedResource{Name: "tauros", URL: "https://pokeapi.co/api/v2/pokemon-species/128/"},
	})
	assert.Equal(t, []ChainStage{{ID: 128, Name: "tauros"}}, stages)
}

func TestLevelUpMoves(t *testing.T) {
	var p types.Pokemon
	loadFixture(t, "pokemon_1.json", &p)

	moves := LevelUpMoves(p, 0)
	assert.Equal(t, []LevelMove{
		{Name: "tackle", Level: 1},
		{Name: "vine-whip", Level: 13},
		{Name: "razor-leaf", Level: 19},
	}, moves)
}

func TestLevelUpMovesCap(t *testing.T) {
	p := types.Pokemon{}
	for i := 40; i > 0; i-- {
		p.Moves = append(p.Moves, types.MoveSlot{
			Move: types.NamedResource{Name: "move"},
			VersionGroupDetails: []types.MoveVersionDetail{{
				LevelLearnedAt:  i,
				MoveLearnMethod: types.NamedResource{Name: "level-up"},
			}},
		})
	}
	moves := LevelUpMoves(p, MaxLevelMoves)
	require.Len(t, moves, 30)
	assert.Equal(t, 1, moves[0].Level)
	assert.Equal(t, 30, moves[29].Level)
}

func TestStatHelpers(t *testing.T) {
	assert.Equal(t, "SP.ATK", StatShortName("special-attack"))
	assert.Equal(t, "accuracy", StatShortName("accuracy"))
	assert.InDelta(t, 1.0, StatRatio(300), 1e-9)
	assert.InDelta(t, 0.2, StatRatio(51), 1e-9)
	assert.Equal(t, 0.0, StatRatio(-1))
	assert.Equal(t, "██████████", StatBar(255, 10))
	assert.Equal(t, "░░░░░░░░░░", StatBar(0, 10))
	assert.Equal(t, "█░░░░░░░░░", StatBar(1, 10))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "#001", PadID(1))
	assert.Equal(t, "#025", PadID(25))
	assert.Equal(t, "#1025", PadID(1025))
	assert.Equal(t, "Medium Slow", TitleWords("medium-slow"))
	assert.Equal(t, "Solar Power", TitleWords("solar power"))
	assert.Equal(t, "🔥", TypeSymbol("fire"))
	assert.Equal(t, "?", TypeSymbol("stellar"))
	assert.Equal(t, "0.7 m", CardHeight(7))
	assert.Equal(t, "6.9 kg", CardWeight(69))
	assert.Equal(t, "0.7m (2.3ft)", Height(7))
	assert.Equal(t, "6.9kg (15.2lb)", Weight(69))
}

func TestSpeciesFields(t *testing.T) {
	var s types.Species
	loadFixture(t, "species_1.json", &s)

	got, err := CatchRate(s)
	require.NoError(t, err)
	assert.Equal(t, "45 (17.6%)", got)

	got, err = GrowthRate(s)
	require.NoError(t, err)
	assert.Equal(t, "Medium Slow", got)

	got, err = EggGroups(s)
	require.NoError(t, err)
	assert.Equal(t, "Monster, Plant", got)

	assert.Equal(t, "♂ 87.5% ♀ 12.5%", GenderRatio(s))

	got, err = HatchSteps(s)
	require.NoError(t, err)
	assert.Equal(t, "5355 steps", got)

	got, err = GenerationLabel(s)
	require.NoError(t, err)
	assert.Equal(t, "Gen I", got)

	got, err = FlavorText(s)
	require.NoError(t, err)
	assert.Equal(t, "A strange seed was planted on its back at birth.", got)

	got, err = Genus(s)
	require.NoError(t, err)
	assert.Equal(t, "Seed Pokémon", got)
}

func TestMissingSpeciesFields(t *testing.T) {
	var s types.Species
	loadFixture(t, "species_151.json", &s)

	assert.Equal(t, "Genderless", GenderRatio(s))

	_, err := Habitat(s)
	var missingErr *MissingDataError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "habitat", missingErr.Field)

	_, err = FlavorText(s)
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "flavor_text", missingErr.Field)

	_, err = Genus(s)
	assert.Error(t, err)
}

func TestAbilities(t *testing.T) {
	var p types.Pokemon
	loadFixture(t, "pokemon_1.json", &p)

	ability, err := MainAbility(p)
	require.NoError(t, err)
	assert.Equal(t, "Overgrow", ability)

	hidden, err := HiddenAbility(p)
	require.NoError(t, err)
	assert.Equal(t, "Chlorophyll", hidden)

	exp, err := BaseExperience(p)
	require.NoError(t, err)
	assert.Equal(t, "64", exp)

	_, err = HiddenAbility(types.Pokemon{})
	assert.Error(t, err)
	_, err = BaseExperience(types.Pokemon{BaseExperience: intPtr(0)})
	assert.Error(t, err)
}

func TestGridBadge(t *testing.T) {
	badge, r, ok := GridBadge(151)
	assert.True(t, ok)
	assert.Equal(t, "✦", badge)
	assert.Equal(t, Mythical, r)

	badge, r, ok = GridBadge(150)
	assert.True(t, ok)
	assert.Equal(t, "★", badge)
	assert.Equal(t, Legendary, r)

	_, _, ok = GridBadge(25)
	assert.False(t, ok)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Bulbasaur", Capitalize("bulbasaur"))
	assert.Equal(t, "Mr-mime", Capitalize("mr-mime"))
	assert.Equal(t, "", Capitalize(""))
}

func TestSpeciesBadge(t *testing.T) {
	badge, r, ok := SpeciesBadge(types.Species{IsMythical: true, IsLegendary: true})
	assert.True(t, ok)
	assert.Equal(t, "✦", badge)
	assert.Equal(t, Mythical, r)

	badge, r, ok = SpeciesBadge(types.Species{IsLegendary: true})
	assert.True(t, ok)
	assert.Equal(t, "★", badge)
	assert.Equal(t, Legendary, r)

	_, _, ok = SpeciesBadge(types.Species{})
	assert.False(t, ok)
}
