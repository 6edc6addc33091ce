package view

import (
	"strconv"

	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/types"
)

// Card is the trading card summary of the selected pokemon
type Card struct {
	ID           int
	Name         string
	Number       string
	PrimaryType  string
	TypeSymbol   string
	Types        []string
	Rarity       dex.Rarity
	RarityLabel  string
	RaritySymbol string
	HP           string
	Height       string
	Weight       string
	Stage        string
	Genus        string
}

// BuildCard describes the card for a fetched pokemon and its species
func BuildCard(p types.Pokemon, s types.Species) Card {
	rarity := dex.RarityTier(s, p)
	primary := p.PrimaryType()

	hp := "??"
	if v, ok := p.Stat("hp"); ok {
		hp = strconv.Itoa(v)
	}

	genus, err := dex.Genus(s)
	if err != nil {
		genus = ""
	}

	return Card{
		ID:           p.ID,
		Name:         dex.Capitalize(p.Name),
		Number:       dex.PadID(p.ID),
		PrimaryType:  primary,
		TypeSymbol:   dex.TypeSymbol(primary),
		Types:        p.TypeNames(),
		Rarity:       rarity,
		RarityLabel:  rarity.Label(),
		RaritySymbol: rarity.Symbol(),
		HP:           hp,
		Height:       dex.CardHeight(p.Height),
		Weight:       dex.CardWeight(p.Weight),
		Stage:        dex.StageLabel(s),
		Genus:        genus,
	}
}
