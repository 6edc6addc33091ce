// Package view turns catalog state and fetched payloads into plain view
// descriptions. Nothing here draws; the ui package paints the results.
package view

import (
	"fmt"

	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/types"
)

// Cell is one grid entry
type Cell struct {
	Index    int
	ID       int
	Number   string
	Name     string
	Selected bool
	Cursor   bool
	Badge    string
	Rarity   dex.Rarity
}

// Grid describes the visible catalog page
type Grid struct {
	Generation string
	Search     string
	Cells      []Cell
	PageLabel  string
	HasPrev    bool
	HasNext    bool
	Matches    int
}

// Empty reports whether the page has no cells
func (g Grid) Empty() bool { return len(g.Cells) == 0 }

// Rows splits the cells into rows of catalog.Columns
func (g Grid) Rows() [][]Cell {
	var rows [][]Cell
	for i := 0; i < len(g.Cells); i += catalog.Columns {
		end := i + catalog.Columns
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// SpeciesLookup reports species already fetched for an id
type SpeciesLookup func(id int) (types.Species, bool)

// BuildGrid describes the current page of s. Badges come from known species
// when lookup has them and from the static id sets otherwise. lookup may be nil.
func BuildGrid(s *catalog.State, lookup SpeciesLookup) Grid {
	page := s.VisiblePage()

	g := Grid{
		Generation: s.Generation().String(),
		Search:     s.SearchTerm(),
		Cells:      make([]Cell, 0, len(page.Items)),
		PageLabel:  fmt.Sprintf("%d / %d", page.Number+1, page.TotalPages),
		HasPrev:    page.HasPrev(),
		HasNext:    page.HasNext(),
		Matches:    len(s.Filtered()),
	}

	for i, e := range page.Items {
		c := Cell{
			Index:    i,
			ID:       e.ID,
			Number:   dex.PadID(e.ID),
			Name:     e.Name,
			Selected: s.HasSelection() && e.ID == s.SelectedID(),
			Cursor:   i == s.Index(),
		}
		c.Badge, c.Rarity, _ = gridBadge(e.ID, lookup)
		g.Cells = append(g.Cells, c)
	}
	return g
}

func gridBadge(id int, lookup SpeciesLookup) (string, dex.Rarity, bool) {
	if lookup != nil {
		if sp, ok := lookup(id); ok {
			return dex.SpeciesBadge(sp)
		}
	}
	return dex.GridBadge(id)
}
