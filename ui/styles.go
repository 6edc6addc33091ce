package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/pokedextui/dex"
)

// 16-color ANSI Dracula palette
var (
	DraculaBackground = lipgloss.AdaptiveColor{Light: "0", Dark: "0"}
	DraculaForeground = lipgloss.AdaptiveColor{Light: "255", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaOrange     = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	DraculaYellow     = lipgloss.AdaptiveColor{Light: "11", Dark: "11"}

	// Tab bar styles
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(DraculaComment).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// Title screen
	LogoStyle = lipgloss.NewStyle().
			Foreground(DraculaRed).
			Bold(true)
	PressStartStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground).
			Blink(true)

	// Grid cells
	CellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	CursorCellStyle = CellStyle.
			BorderForeground(DraculaCyan)
	SelectedCellStyle = CellStyle.
				BorderForeground(DraculaPink).
				Bold(true)
	CellNumberStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	CellNameStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)

	// Pager
	PagerArrowStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Bold(true)
	PagerArrowDimStyle = lipgloss.NewStyle().
				Foreground(DraculaComment)
	PagerLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)

	// Card
	CardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Border(lipgloss.ThickBorder()).
			Padding(0, 1)
	CardNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DraculaForeground)
	CardHPStyle = lipgloss.NewStyle().
			Foreground(DraculaRed).
			Bold(true)
	ArtworkStyle = lipgloss.NewStyle().
			Width(cardWidth-4).
			Height(5).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(DraculaComment)
	ShinyStyle = lipgloss.NewStyle().
			Foreground(DraculaYellow).
			Bold(true)

	// Detail view styles
	DetailTitleStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)
	DetailTaglineStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan).
				Italic(true)
	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Width(12)
	FieldValueStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	StatBarStyle = lipgloss.NewStyle().
			Foreground(DraculaGreen)
	MoveLevelStyle = lipgloss.NewStyle().
			Foreground(DraculaOrange).
			Width(7)
	EvolutionCurrentStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true).
				Underline(true)
	EvolutionStageStyle = lipgloss.NewStyle().
				Foreground(DraculaCyan)

	// Search
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(DraculaPink)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed)

	// Help
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
)

const (
	cellWidth = 14
	cardWidth = 36
)

var typeColors = map[string]lipgloss.AdaptiveColor{
	"fire":     DraculaRed,
	"water":    {Light: "4", Dark: "12"},
	"grass":    DraculaGreen,
	"electric": DraculaYellow,
	"psychic":  DraculaPink,
	"ice":      DraculaCyan,
	"dragon":   DraculaPurple,
	"dark":     {Light: "8", Dark: "8"},
	"fairy":    DraculaPink,
	"fighting": DraculaOrange,
	"poison":   DraculaPurple,
	"ground":   DraculaOrange,
	"flying":   DraculaCyan,
	"bug":      DraculaGreen,
	"rock":     DraculaOrange,
	"ghost":    DraculaPurple,
	"steel":    DraculaComment,
	"normal":   DraculaForeground,
}

// typeColor returns the accent color of a type
func typeColor(name string) lipgloss.AdaptiveColor {
	if c, ok := typeColors[name]; ok {
		return c
	}
	return DraculaComment
}

// rarityColor returns the color of a rarity glyph
func rarityColor(r dex.Rarity) lipgloss.AdaptiveColor {
	switch r {
	case dex.Mythical:
		return DraculaPurple
	case dex.Legendary:
		return DraculaYellow
	case dex.Rare:
		return DraculaOrange
	case dex.Uncommon:
		return DraculaCyan
	default:
		return DraculaForeground
	}
}
