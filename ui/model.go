package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/qyinm/pokedextui/catalog"
	"github.com/qyinm/pokedextui/dex"
	"github.com/qyinm/pokedextui/logger"
	"github.com/qyinm/pokedextui/pokeapi"
	"github.com/qyinm/pokedextui/types"
	"github.com/qyinm/pokedextui/view"
)

// Screen is the top-level screen
type Screen int

const (
	TitleScreen Screen = iota
	AppScreen
)

// Options configures a Model
type Options struct {
	// Generation is loaded when the app starts. Defaults to GEN I.
	Generation types.Generation
	// Context bounds every fetch. Defaults to context.Background().
	Context context.Context
	// SkipTitle starts directly on the app screen.
	SkipTitle bool
}

// Model is the main TUI model
type Model struct {
	ctx    context.Context
	source types.PokemonSource
	state  *catalog.State
	zones  *zone.Manager

	search   textinput.Model
	picker   list.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	screen     Screen
	startGen   types.Generation
	showPicker bool
	width      int
	height     int

	rosterRequestID  int
	loadingRoster    bool
	loadingSelection bool

	pokemon *types.Pokemon
	species *types.Species
	chain   *types.EvolutionChain
	sprite  string
	shiny   bool

	notice    string
	statusMsg string
}

// NewModel creates a new Model reading from source
func NewModel(source types.PokemonSource, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	gen := opts.Generation
	if !gen.Valid() {
		gen = types.GenI
	}

	zones := zone.New()

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = SearchPromptStyle
	ti.Placeholder = "name or number"
	ti.CharLimit = 24
	ti.Width = 20

	items := make([]list.Item, 0, len(types.AllGenerations))
	for _, g := range types.AllGenerations {
		items = append(items, g)
	}
	l := list.New(items, GenerationDelegate{zones: zones}, 0, 0)
	l.Title = "Select Generation"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = TitleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		source:    source,
		state:     catalog.New(),
		zones:     zones,
		search:    ti,
		picker:    l,
		viewport:  viewport.New(0, 0),
		spinner:   s,
		help:      help.New(),
		keys:      keys,
		screen:    TitleScreen,
		startGen:  gen,
		statusMsg: "Ready",
	}
	if opts.SkipTitle {
		m.screen = AppScreen
		m.rosterRequestID = 1
		m.loadingRoster = true
	}
	return m
}

// Close releases the mouse zone tracker
func (m Model) Close() {
	m.zones.Close()
}

// State exposes the catalog state, mainly for tests
func (m Model) State() *catalog.State { return m.state }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if m.screen == AppScreen {
		return tea.Batch(fetchRoster(m.ctx, m.source, m.startGen, m.rosterRequestID), m.spinner.Tick)
	}
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case rosterMsg:
		return m.handleRoster(msg)

	case selectionMsg:
		return m.handleSelection(msg)

	case evolutionMsg:
		if msg.token != m.state.Committed() {
			logger.Debug("dropping stale evolution chain (token %d)", msg.token)
			return m, nil
		}
		if msg.err != nil {
			logger.Warn("evolution chain: %v", msg.err)
			return m, nil
		}
		m.chain = &msg.chain
		m.refreshDetail()
		return m, nil

	case spriteMsg:
		return m.handleSprite(msg)

	case clipboardMsg:
		if msg.err != nil {
			logger.Warn("clipboard: %v", msg.err)
			m.notice = "Clipboard unavailable"
			return m, nil
		}
		m.statusMsg = "Copied artwork and cry URLs"
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == TitleScreen {
		if key.Matches(msg, m.keys.Start) {
			return m.start()
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showPicker {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.showPicker = false
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			gen, ok := m.picker.SelectedItem().(types.Generation)
			m.showPicker = false
			if !ok {
				return m, nil
			}
			return m, m.loadGeneration(gen)
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if m.search.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.state.SearchTerm() {
			m.state.SetSearchTerm(m.search.Value())
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Generation):
		m.openPicker()
	case key.Matches(msg, m.keys.PrevPage):
		m.state.SetPage(-1)
	case key.Matches(msg, m.keys.NextPage):
		m.state.SetPage(1)
	case key.Matches(msg, m.keys.Up):
		return m.navigate(catalog.Up)
	case key.Matches(msg, m.keys.Down):
		return m.navigate(catalog.Down)
	case key.Matches(msg, m.keys.Left):
		return m.navigate(catalog.Left)
	case key.Matches(msg, m.keys.Right):
		return m.navigate(catalog.Right)
	case key.Matches(msg, m.keys.Confirm):
		m.pressA()
	case key.Matches(msg, m.keys.Cancel):
		m.state.PressB()
	case key.Matches(msg, m.keys.Shiny):
		return m.toggleShiny()
	case key.Matches(msg, m.keys.Copy):
		return m.copyURLs()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen == AppScreen && m.state.Mode() == catalog.DetailMode && !m.showPicker {
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.notice = ""

	if m.screen == TitleScreen {
		return m.start()
	}

	if m.showPicker {
		for _, gen := range types.AllGenerations {
			if m.inZone(genZone(gen), msg) {
				m.showPicker = false
				return m, m.loadGeneration(gen)
			}
		}
		return m, nil
	}

	in := func(id string) bool { return m.inZone(id, msg) }

	switch {
	case in(zoneSearch):
		return m, m.search.Focus()
	case in(zoneGeneration):
		m.openPicker()
		return m, nil
	case in(zonePrevPage):
		m.state.SetPage(-1)
		return m, nil
	case in(zoneNextPage):
		m.state.SetPage(1)
		return m, nil
	case in(zoneArtwork), in(zoneButtonA):
		m.pressA()
		return m, nil
	case in(zoneButtonB):
		m.state.PressB()
		return m, nil
	case in(zoneDpadUp):
		return m.navigate(catalog.Up)
	case in(zoneDpadDown):
		return m.navigate(catalog.Down)
	case in(zoneDpadLeft):
		return m.navigate(catalog.Left)
	case in(zoneDpadRight):
		return m.navigate(catalog.Right)
	}

	for _, tab := range catalog.Tabs {
		if in(tabZone(tab)) {
			m.state.SetTab(tab)
			m.refreshDetail()
			return m, nil
		}
	}

	page := m.state.VisiblePage()
	for i := range page.Items {
		if in(cellZone(i)) {
			if id, ok := m.state.SelectAt(i); ok {
				return m, m.selectEntry(id)
			}
		}
	}

	if d := m.detail(); d != nil {
		for _, st := range d.Evolution.Stages {
			if in(evolutionZone(st.ID)) {
				return m, m.selectEntry(st.ID)
			}
		}
	}
	return m, nil
}

func (m Model) handleRoster(msg rosterMsg) (tea.Model, tea.Cmd) {
	if msg.requestID != m.rosterRequestID {
		logger.Debug("dropping stale roster for %s (request %d)", msg.generation, msg.requestID)
		return m, nil
	}
	m.loadingRoster = false

	if msg.err != nil {
		logger.Error("load %s: %v", msg.generation, msg.err)
		m.notice = fmt.Sprintf("Couldn't load %s", msg.generation)
		return m, nil
	}

	if err := m.state.BeginGeneration(msg.generation); err != nil {
		logger.Error("begin generation: %v", err)
		return m, nil
	}
	m.picker.SetDelegate(GenerationDelegate{Active: msg.generation, zones: m.zones})
	m.search.SetValue("")
	first, ok := m.state.SetRoster(msg.entries)
	logger.Info("loaded %s: %d entries", msg.generation, len(msg.entries))
	m.statusMsg = fmt.Sprintf("%s · %d entries", msg.generation, len(msg.entries))
	if !ok {
		return m, nil
	}
	return m, m.selectEntry(first)
}

func (m Model) handleSelection(msg selectionMsg) (tea.Model, tea.Cmd) {
	if !m.state.IsCurrent(msg.token) {
		logger.Debug("dropping stale selection #%d (token %d)", msg.id, msg.token)
		return m, nil
	}
	m.loadingSelection = false

	if msg.err != nil {
		logger.Error("select #%d: %v", msg.id, msg.err)
		m.notice = fmt.Sprintf("Couldn't load %s", dex.PadID(msg.id))
		return m, nil
	}

	m.state.Commit(msg.token)
	pokemon, species := msg.pokemon, msg.species
	m.pokemon = &pokemon
	m.species = &species
	m.chain = nil
	m.shiny = false
	m.sprite = assetsOf(m.source).OfficialArtwork(pokemon.ID)
	m.refreshDetail()

	cmds := []tea.Cmd{resolveSprite(m.ctx, m.source, pokemon.ID, false, msg.token)}
	if species.EvolutionChain != nil && species.EvolutionChain.URL != "" {
		cmds = append(cmds, fetchEvolution(m.ctx, m.source, species.EvolutionChain.URL, msg.token))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSprite(msg spriteMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.state.Committed() || m.pokemon == nil || msg.id != m.pokemon.ID || msg.shiny != m.shiny {
		return m, nil
	}
	if msg.err != nil {
		if msg.shiny && errors.Is(msg.err, pokeapi.ErrShinyUnavailable) {
			logger.Debug("no shiny artwork for #%d", m.pokemon.ID)
			m.shiny = false
			return m, resolveSprite(m.ctx, m.source, m.pokemon.ID, false, msg.token)
		}
		logger.Warn("sprite #%d: %v", m.pokemon.ID, msg.err)
		m.sprite = ""
		return m, nil
	}
	m.sprite = msg.url
	return m, nil
}

// start leaves the title screen and loads the first generation
func (m Model) start() (tea.Model, tea.Cmd) {
	m.screen = AppScreen
	return m, m.loadGeneration(m.startGen)
}

// loadGeneration fetches the roster of gen. The current roster stays on
// screen until the new one arrives.
func (m *Model) loadGeneration(gen types.Generation) tea.Cmd {
	m.rosterRequestID++
	m.loadingRoster = true
	return tea.Batch(fetchRoster(m.ctx, m.source, gen, m.rosterRequestID), m.spinner.Tick)
}

// selectEntry issues a fresh detail fetch for id under a new token
func (m *Model) selectEntry(id int) tea.Cmd {
	token := m.state.Select(id)
	m.loadingSelection = true
	return tea.Batch(fetchSelection(m.ctx, m.source, id, token), m.spinner.Tick)
}

func (m Model) navigate(dir catalog.Direction) (tea.Model, tea.Cmd) {
	id, ok := m.state.Navigate(dir)
	if !ok {
		return m, nil
	}
	return m, m.selectEntry(id)
}

func (m *Model) pressA() {
	wasGrid := m.state.Mode() == catalog.GridMode
	if !m.state.PressA() {
		return
	}
	m.refreshDetail()
	if wasGrid {
		m.viewport.GotoTop()
	}
}

func (m Model) toggleShiny() (tea.Model, tea.Cmd) {
	if m.pokemon == nil {
		return m, nil
	}
	m.shiny = !m.shiny
	return m, resolveSprite(m.ctx, m.source, m.pokemon.ID, m.shiny, m.state.Committed())
}

func (m Model) copyURLs() (tea.Model, tea.Cmd) {
	if m.pokemon == nil {
		return m, nil
	}
	lines := []string{m.sprite, assetsOf(m.source).Cry(m.pokemon.ID)}
	return m, copyToClipboard(strings.TrimSpace(strings.Join(lines, "\n")))
}

func (m *Model) openPicker() {
	m.showPicker = true
	for i, g := range types.AllGenerations {
		if g == m.state.Generation() {
			m.picker.Select(i)
		}
	}
}

func (m Model) loading() bool {
	return m.loadingRoster || m.loadingSelection
}

// detail builds the detail description of the committed selection
func (m Model) detail() *view.Detail {
	if m.pokemon == nil || m.species == nil {
		return nil
	}
	d := view.BuildDetail(*m.pokemon, *m.species, m.chain)
	return &d
}

// refreshDetail re-renders the active tab into the viewport
func (m *Model) refreshDetail() {
	d := m.detail()
	if d == nil {
		return
	}
	m.viewport.SetContent(renderTabBody(m.zones, *d, m.state.Tab(), m.viewport.Width))
}

// resizePanes adjusts the dimensions of picker and viewport based on window size
func (m *Model) resizePanes() {
	headerHeight := 3
	footerHeight := 3
	if m.help.ShowAll {
		footerHeight += 4
	}
	availableHeight := m.height - headerHeight - footerHeight
	if availableHeight < 0 {
		availableHeight = 0
	}

	m.picker.SetSize(m.width, availableHeight)
	m.help.Width = m.width

	m.viewport.Width = max(detailWidth(m.width), 20)
	m.viewport.Height = max(availableHeight-2, 1)
	m.refreshDetail()
}

func detailWidth(total int) int {
	return total - gridWidth() - 2
}

func gridWidth() int {
	return catalog.Columns * (cellWidth + 2)
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

func genZone(g types.Generation) string { return "gen-" + strconv.Itoa(int(g)) }
