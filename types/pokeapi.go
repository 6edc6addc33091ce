package types

import (
	"strconv"
	"strings"
)

// NamedResource is PokeAPI's {name, url} reference
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ID returns the numeric id at the end of the resource url, or 0
func (r NamedResource) ID() int { return ParseID(r.URL) }

// ParseID extracts the trailing numeric id from a resource url such as
// https://pokeapi.co/api/v2/pokemon-species/25/. Returns 0 on failure.
func ParseID(url string) int {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	n, err := strconv.Atoi(url[strings.LastIndex(url, "/")+1:])
	if err != nil {
		return 0
	}
	return n
}

// Resource is PokeAPI's bare {url} reference
type Resource struct {
	URL string `json:"url"`
}

// RosterPage is the body of GET /pokemon?limit=&offset=
type RosterPage struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// Pokemon is the body of GET /pokemon/{id or name}
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience *int          `json:"base_experience"`
	Stats          []StatSlot    `json:"stats"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Moves          []MoveSlot    `json:"moves"`
}

type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type MoveSlot struct {
	Move                NamedResource       `json:"move"`
	VersionGroupDetails []MoveVersionDetail `json:"version_group_details"`
}

type MoveVersionDetail struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

// TypeNames returns the type labels in slot order
func (p Pokemon) TypeNames() []string {
	out := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		out = append(out, t.Type.Name)
	}
	return out
}

// PrimaryType returns the first type label, or "" if none
func (p Pokemon) PrimaryType() string {
	if len(p.Types) == 0 {
		return ""
	}
	return p.Types[0].Type.Name
}

// Stat returns the base value of the named stat
func (p Pokemon) Stat(name string) (int, bool) {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat, true
		}
	}
	return 0, false
}

// Species is the body of GET /pokemon-species/{id}
type Species struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	IsLegendary        bool              `json:"is_legendary"`
	IsMythical         bool              `json:"is_mythical"`
	CaptureRate        *int              `json:"capture_rate"`
	BaseHappiness      *int              `json:"base_happiness"`
	HatchCounter       *int              `json:"hatch_counter"`
	GenderRate         int               `json:"gender_rate"`
	GrowthRate         *NamedResource    `json:"growth_rate"`
	EggGroups          []NamedResource   `json:"egg_groups"`
	Habitat            *NamedResource    `json:"habitat"`
	Shape              *NamedResource    `json:"shape"`
	Color              *NamedResource    `json:"color"`
	Generation         *NamedResource    `json:"generation"`
	EvolvesFromSpecies *NamedResource    `json:"evolves_from_species"`
	EvolutionChain     *Resource         `json:"evolution_chain"`
	FlavorTextEntries  []FlavorTextEntry `json:"flavor_text_entries"`
	Genera             []Genus           `json:"genera"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// EvolutionChain is the body of GET /evolution-chain/{id}
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the evolution tree
type ChainLink struct {
	Species   NamedResource `json:"species"`
	EvolvesTo []ChainLink   `json:"evolves_to"`
}
