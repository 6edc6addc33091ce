package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/qyinm/pokedextui/types"
)

// GenerationDelegate renders the rows of the generation picker
type GenerationDelegate struct {
	// Active is the generation currently loaded
	Active types.Generation
	zones  *zone.Manager
}

// Height returns the height of a list item (2 lines)
func (d GenerationDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between list items
func (d GenerationDelegate) Spacing() int {
	return 0
}

// Update handles updates for the delegate (no-op for generations)
func (d GenerationDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single generation row
func (d GenerationDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	gen, ok := item.(types.Generation)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	marker := "  "
	if gen == d.Active {
		marker = "● "
	}

	titleStyle := lipgloss.NewStyle().Foreground(DraculaCyan)
	rangeStyle := lipgloss.NewStyle().Foreground(DraculaComment)
	if isSelected {
		titleStyle = lipgloss.NewStyle().Foreground(DraculaPink).Bold(true)
		rangeStyle = lipgloss.NewStyle().Foreground(DraculaForeground)
	}

	line1 := marker + titleStyle.Render(gen.Title())
	line2 := "    " + rangeStyle.Render(fmt.Sprintf("%s  (%d)", gen.Description(), gen.Size()))

	row := line1 + "\n" + line2
	if d.zones != nil {
		row = d.zones.Mark(genZone(gen), row)
	}
	fmt.Fprint(w, row)
}
