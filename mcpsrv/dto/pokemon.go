package dto

type Generation struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Range string `json:"range"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Size  int    `json:"size"`
}

type RosterEntry struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
	Badge  string `json:"badge,omitempty"`
	Rarity string `json:"rarity,omitempty"`
}

type Stat struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type Move struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
}

type Assets struct {
	Artwork  string   `json:"artwork"`
	Shiny    string   `json:"shiny"`
	Sprite   string   `json:"sprite"`
	Animated string   `json:"animated"`
	Fallback []string `json:"fallback"`
	Cry      string   `json:"cry"`
}
