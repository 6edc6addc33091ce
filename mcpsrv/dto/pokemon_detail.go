package dto

type PokemonDetail struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Number         string    `json:"number"`
	Genus          string    `json:"genus,omitempty"`
	Types          []string  `json:"types"`
	Stage          string    `json:"stage"`
	Rarity         string    `json:"rarity"`
	RaritySymbol   string    `json:"rarity_symbol"`
	HeightM        float64   `json:"height_m"`
	WeightKg       float64   `json:"weight_kg"`
	BaseExperience *int      `json:"base_experience,omitempty"`
	CaptureRate    *int      `json:"capture_rate,omitempty"`
	GrowthRate     string    `json:"growth_rate,omitempty"`
	Habitat        string    `json:"habitat,omitempty"`
	EggGroups      []string  `json:"egg_groups"`
	Gender         string    `json:"gender"`
	Generation     string    `json:"generation,omitempty"`
	Stats          []Stat    `json:"stats"`
	BaseStatTotal  int       `json:"base_stat_total"`
	Abilities      []Ability `json:"abilities"`
	Moves          []Move    `json:"moves"`
	FlavorText     string    `json:"flavor_text,omitempty"`
	Assets         Assets    `json:"assets"`
}

type EvolutionStage struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Current bool   `json:"current"`
}
