package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/view"
)

// Mouse zone ids
const (
	zoneSearch     = "search"
	zoneGeneration = "generation"
	zonePrevPage   = "page-prev"
	zoneNextPage   = "page-next"
	zoneArtwork    = "artwork"
	zoneButtonA    = "button-a"
	zoneButtonB    = "button-b"
	zoneDpadUp     = "dpad-up"
	zoneDpadDown   = "dpad-down"
	zoneDpadLeft   = "dpad-left"
	zoneDpadRight  = "dpad-right"
)

const logo = `
 ____   ___  _  _______ ____  _______  __
|  _ \ / _ \| |/ / ____|  _ \| ____\ \/ /
| |_) | | | | ' /|  _| | | | |  _|  \  /
|  __/| |_| | . \| |___| |_| | |___ /  \
|_|    \___/|_|\_\_____|____/|_____/_/\_\`

func cellZone(i int) string { return "cell-" + strconv.Itoa(i) }
func tabZone(t catalog.Tab) string { return "tab-" + t.String() }
func evolutionZone(id int) string { return "evo-" + strconv.Itoa(id) }

// View renders the current screen
func (m Model) View() string {
	var out string
	switch {
	case m.screen == TitleScreen:
		out = m.titleView()
	case m.showPicker:
		out = lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.picker.View(), m.footerView())
	default:
		out = lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.bodyView(), m.footerView())
	}
	return m.zones.Scan(out)
}

func (m Model) titleView() string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		LogoStyle.Render(strings.TrimPrefix(logo, "\n")),
		"",
		DetailTaglineStyle.Render("a terminal pokédex"),
		"",
		PressStartStyle.Render("PRESS START"),
		StatusBarStyle.Render("enter / space / click"),
	)
	if m.width > 0 && m.height > 0 {
		block = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
	}
	return block
}

func (m Model) headerView() string {
	title := TitleStyle.Render("POKéDEX")
	gen := m.state.Generation().String()
	if !m.state.Generation().Valid() {
		gen = m.startGen.String()
	}
	genButton := m.zones.Mark(zoneGeneration, ActiveTabStyle.Render("["+gen+" ▾]"))

	search := m.search.View()
	if !m.search.Focused() && m.search.Value() == "" {
		search = StatusBarStyle.Render("/ search")
	}
	search = m.zones.Mark(zoneSearch, search)

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", genButton, "  ", search) + "\n"
}

func (m Model) bodyView() string {
	left := renderGrid(m.zones, view.BuildGrid(m.state, speciesLookup(m.source)))

	var right string
	switch {
	case m.pokemon == nil || m.species == nil:
		right = StatusBarStyle.Render("Select a pokémon")
	case m.state.Mode() == catalog.DetailMode:
		d := m.detail()
		right = lipgloss.JoinVertical(lipgloss.Left,
			DetailTitleStyle.Render(d.Number+" "+d.Name),
			renderTabs(m.zones, m.state.Tab()),
			m.viewport.View(),
		)
	default:
		right = renderCard(m.zones, view.BuildCard(*m.pokemon, *m.species), m.sprite, m.shiny)
	}

	if m.width > 0 && m.width < gridWidth()+cardWidth+4 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m Model) footerView() string {
	var status string
	switch {
	case m.notice != "":
		status = ErrorStyle.Render("✗ " + m.notice)
	case m.loading():
		status = m.spinner.View() + StatusBarStyle.Render(" Loading...")
	default:
		status = StatusBarStyle.Render(m.statusMsg)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderControls(m.zones),
		status,
		m.help.View(m.keys),
	)
}

// renderGrid paints the grid cells and the pager
func renderGrid(z *zone.Manager, g view.Grid) string {
	if g.Empty() {
		empty := StatusBarStyle.Render("No pokémon match \"" + g.Search + "\"")
		if g.Search == "" {
			empty = StatusBarStyle.Render("No pokémon loaded")
		}
		return lipgloss.NewStyle().Width(gridWidth()).Render(empty) + "\n" + renderPager(z, g)
	}

	rows := make([]string, 0, len(g.Rows()))
	for _, row := range g.Rows() {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, z.Mark(cellZone(c.Index), renderCell(c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, renderPager(z, g))...)
}

func renderCell(c view.Cell) string {
	style := CellStyle
	switch {
	case c.Selected:
		style = SelectedCellStyle
	case c.Cursor:
		style = CursorCellStyle
	}

	number := CellNumberStyle.Render(c.Number)
	if c.Badge != "" {
		number += " " + lipgloss.NewStyle().Foreground(rarityColor(c.Rarity)).Render(c.Badge)
	}
	name := truncate(c.Name, cellWidth-2)
	return style.Render(number + "\n" + CellNameStyle.Render(name))
}

func renderPager(z *zone.Manager, g view.Grid) string {
	prev := PagerArrowDimStyle.Render("◀")
	if g.HasPrev {
		prev = PagerArrowStyle.Render("◀")
	}
	next := PagerArrowDimStyle.Render("▶")
	if g.HasNext {
		next = PagerArrowStyle.Render("▶")
	}
	label := PagerLabelStyle.Render(" " + g.PageLabel + " ")
	matches := StatusBarStyle.Render(fmt.Sprintf("  %d found", g.Matches))
	pager := z.Mark(zonePrevPage, prev) + label + z.Mark(zoneNextPage, next) + matches
	return lipgloss.PlaceHorizontal(gridWidth(), lipgloss.Center, pager)
}

// renderCard paints the trading card summary
func renderCard(z *zone.Manager, c view.Card, sprite string, shiny bool) string {
	accent := typeColor(c.PrimaryType)

	hp := CardHPStyle.Render("HP " + c.HP)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		CardNameStyle.Render(c.Name),
		" ",
		hp,
		" ",
		lipgloss.NewStyle().Foreground(accent).Render(c.TypeSymbol),
	)

	stage := StatusBarStyle.Render(c.Stage + "  " + c.Number)

	art := c.TypeSymbol + "\n" + c.Name
	if shiny {
		art = ShinyStyle.Render("✨ shiny ✨") + "\n" + art
	}
	if sprite != "" {
		art += "\n" + StatusBarStyle.Render(truncate(lastPathPart(sprite), cardWidth-8))
	}
	artwork := z.Mark(zoneArtwork, ArtworkStyle.BorderForeground(accent).Render(art))

	types := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		types = append(types, lipgloss.NewStyle().Foreground(typeColor(t)).Render(strings.ToUpper(t)))
	}

	rarity := lipgloss.NewStyle().Foreground(rarityColor(c.Rarity)).Render(c.RaritySymbol + " " + c.RarityLabel)
	footer := StatusBarStyle.Render(c.Height + " · " + c.Weight)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		stage,
		artwork,
		strings.Join(types, " "),
		DetailTaglineStyle.Render(c.Genus),
		rarity,
		footer,
	)
	return CardStyle.BorderForeground(accent).Render(body)
}

// renderTabs paints the detail tab bar
func renderTabs(z *zone.Manager, active catalog.Tab) string {
	labels := view.TabLabels()
	tabs := make([]string, 0, len(catalog.Tabs))
	for i, t := range catalog.Tabs {
		style := InactiveTabStyle
		if t == active {
			style = ActiveTabStyle
		}
		tabs = append(tabs, z.Mark(tabZone(t), style.Render(labels[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTabBody paints the content of the active tab
func renderTabBody(z *zone.Manager, d view.Detail, tab catalog.Tab, width int) string {
	var b strings.Builder
	switch tab {
	case catalog.TabInfo:
		writeFields(&b, d.Info)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(max(width-2, 10)).Render(DetailTaglineStyle.Render(d.Flavor)))
	case catalog.TabStats:
		barWidth := max(min(width-20, 30), 5)
		for _, s := range d.Stats {
			fmt.Fprintf(&b, "%s %s %s\n",
				FieldLabelStyle.Width(7).Render(s.Name),
				FieldValueStyle.Width(4).Render(strconv.Itoa(s.Value)),
				StatBarStyle.Render(dex.StatBar(s.Value, barWidth)))
		}
		fmt.Fprintf(&b, "\n%s %s", FieldLabelStyle.Width(7).Render("TOTAL"), DetailTitleStyle.Render(strconv.Itoa(d.Total)))
	case catalog.TabMoves:
		if d.MovesEmpty != "" {
			b.WriteString(StatusBarStyle.Render(d.MovesEmpty))
			break
		}
		for _, mv := range d.Moves {
			b.WriteString(MoveLevelStyle.Render(mv.Level) + FieldValueStyle.Render(mv.Name) + "\n")
		}
	case catalog.TabAbout:
		writeFields(&b, d.About)
		b.WriteString("\n")
		b.WriteString(FieldLabelStyle.Render("Evolution") + "\n")
		b.WriteString(renderEvolution(z, d.Evolution))
	}
	return b.String()
}

func writeFields(b *strings.Builder, fields []view.Field) {
	for _, f := range fields {
		b.WriteString(FieldLabelStyle.Render(f.Label) + FieldValueStyle.Render(f.Value) + "\n")
	}
}

func renderEvolution(z *zone.Manager, ev view.Evolution) string {
	if !ev.Loaded {
		return ""
	}
	if ev.Note != "" {
		return StatusBarStyle.Render(ev.Note)
	}
	parts := make([]string, 0, len(ev.Stages)*2)
	for i, st := range ev.Stages {
		if i > 0 {
			parts = append(parts, StatusBarStyle.Render(" ► "))
		}
		style := EvolutionStageStyle
		if st.Current {
			style = EvolutionCurrentStyle
		}
		parts = append(parts, z.Mark(evolutionZone(st.ID), style.Render(dex.Capitalize(st.Name))))
	}
	return strings.Join(parts, "")
}

// renderControls paints the on-screen D-pad and A/B buttons
func renderControls(z *zone.Manager) string {
	btn := func(id, label string) string {
		return z.Mark(id, HelpKeyStyle.Render("["+label+"]"))
	}
	return strings.Join([]string{
		btn(zoneDpadUp, "▲"),
		btn(zoneDpadDown, "▼"),
		btn(zoneDpadLeft, "◀"),
		btn(zoneDpadRight, "▶"),
		"  ",
		btn(zoneButtonA, "A"),
		btn(zoneButtonB, "B"),
	}, " ")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func lastPathPart(url string) string {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) >= 2 {
		return parts[len(parts)-2] + "/" + parts[len(parts)-1]
	}
	return url
}
