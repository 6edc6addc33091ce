package dto

import (
	"os"
	"reflect"
	"testing"

	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
	"github.com/segmentio/encoding/json"
)

func loadFixture(t *testing.T, name string, v any) {
	t.Helper()
	b, err := os.ReadFile("../../testdata/" + name)
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
}

func TestPokemonDetailJSON(t *testing.T) {
	var p types.Pokemon
	var s types.Species
	loadFixture(t, "pokemon_1.json", &p)
	loadFixture(t, "species_1.json", &s)

	detail := FromPokemon(p, s, pokeapi.DefaultAssets)
	b, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal detail dto: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal detail dto: %v", err)
	}

	if got["name"] != "bulbasaur" {
		t.Fatalf("unexpected name: %v", got["name"])
	}
	if got["number"] != "#001" {
		t.Fatalf("unexpected number: %v", got["number"])
	}
	if got["rarity"] != "Uncommon" {
		t.Fatalf("unexpected rarity: %v", got["rarity"])
	}
	if got["stage"] != "Basic" {
		t.Fatalf("unexpected stage: %v", got["stage"])
	}
	if got["base_stat_total"] != float64(318) {
		t.Fatalf("unexpected base_stat_total: %v", got["base_stat_total"])
	}
	if got["height_m"] != 0.7 {
		t.Fatalf("unexpected height_m: %v", got["height_m"])
	}
	if got["growth_rate"] != "Medium Slow" {
		t.Fatalf("unexpected growth_rate: %v", got["growth_rate"])
	}
	if len(detail.Stats) != 6 || detail.Stats[0].Name != "HP" || detail.Stats[0].Value != 45 {
		t.Fatalf("unexpected stats: %+v", detail.Stats)
	}
	if len(detail.Moves) == 0 || detail.Moves[0].Name != "tackle" {
		t.Fatalf("unexpected moves: %+v", detail.Moves)
	}
	if detail.Assets.Artwork != pokeapi.DefaultAssets.OfficialArtwork(1) {
		t.Fatalf("unexpected artwork: %s", detail.Assets.Artwork)
	}
	if len(detail.Assets.Fallback) != 3 {
		t.Fatalf("unexpected fallback chain: %v", detail.Assets.Fallback)
	}
}

func TestPokemonDetailOmitsMissingFields(t *testing.T) {
	var s types.Species
	loadFixture(t, "species_151.json", &s)
	p := types.Pokemon{ID: 151, Name: "mew"}

	b, err := json.Marshal(FromPokemon(p, s, pokeapi.DefaultAssets))
	if err != nil {
		t.Fatalf("marshal detail dto: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal detail dto: %v", err)
	}

	for _, key := range []string{"habitat", "flavor_text", "genus", "base_experience"} {
		if _, ok := got[key]; ok {
			t.Fatalf("expected %s to be omitted, got %v", key, got[key])
		}
	}
	if got["rarity"] != "Mythical" {
		t.Fatalf("unexpected rarity: %v", got["rarity"])
	}
	if got["gender"] != "Genderless" {
		t.Fatalf("unexpected gender: %v", got["gender"])
	}
}

func TestRosterEntryBadges(t *testing.T) {
	entries := FromRosterEntries([]types.CatalogEntry{
		{ID: 1, Name: "bulbasaur"},
		{ID: 150, Name: "mewtwo"},
		{ID: 151, Name: "mew"},
	})
	if entries[0].Badge != "" || entries[0].Rarity != "" {
		t.Fatalf("bulbasaur should carry no badge: %+v", entries[0])
	}
	if entries[1].Badge != "★" || entries[1].Rarity != "Legendary" {
		t.Fatalf("unexpected mewtwo badge: %+v", entries[1])
	}
	if entries[2].Badge != "✦" || entries[2].Rarity != "Mythical" {
		t.Fatalf("unexpected mew badge: %+v", entries[2])
	}
}

func TestGenerationDTO(t *testing.T) {
	g := FromGeneration(types.GenIV)
	if g.Name != "GEN IV" || g.Start != 387 || g.End != 493 || g.Size != 107 {
		t.Fatalf("unexpected generation dto: %+v", g)
	}
	if got := len(FromGenerations(types.AllGenerations)); got != 9 {
		t.Fatalf("expected 9 generations, got %d", got)
	}
}

func TestEvolutionDTO(t *testing.T) {
	var chain types.EvolutionChain
	loadFixture(t, "evolution_chain_1.json", &chain)

	stages := FromEvolution(chain, 2)
	if len(stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(stages))
	}
	if stages[0].Current || !stages[1].Current || stages[2].Current {
		t.Fatalf("expected only ivysaur to be current: %+v", stages)
	}
}

func TestDTOFields(t *testing.T) {
	assertNoInterfaceFields(t, reflect.TypeOf(Generation{}))
	assertNoInterfaceFields(t, reflect.TypeOf(RosterEntry{}))
	assertNoInterfaceFields(t, reflect.TypeOf(PokemonDetail{}))
	assertNoInterfaceFields(t, reflect.TypeOf(EvolutionStage{}))
}

func assertNoInterfaceFields(t *testing.T, typ reflect.Type) {
	t.Helper()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		switch fieldType.Kind() {
		case reflect.Interface:
			t.Fatalf("field %s in %s must not be interface type", field.Name, typ.Name())
		case reflect.Struct:
			assertNoInterfaceFields(t, fieldType)
		case reflect.Slice, reflect.Array:
			if fieldType.Elem().Kind() == reflect.Interface {
				t.Fatalf("field %s in %s must not contain interface elements", field.Name, typ.Name())
			}
			if fieldType.Elem().Kind() == reflect.Struct {
				assertNoInterfaceFields(t, fieldType.Elem())
			}
		}
	}
}
