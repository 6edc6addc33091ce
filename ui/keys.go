package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Search     key.Binding
	Generation key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Shiny      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
	Start      key.Binding
}

var keys = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
	Confirm:    key.NewBinding(key.WithKeys("enter", "z"), key.WithHelp("enter/z", "A")),
	Cancel:     key.NewBinding(key.WithKeys("esc", "x", "backspace"), key.WithHelp("esc/x", "B")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Generation: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generation")),
	PrevPage:   key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev page")),
	NextPage:   key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next page")),
	Shiny:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "shiny")),
	Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy urls")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Start:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
}

// ShortHelp returns short help key bindings (for help.Model)
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Confirm, k.Cancel, k.Search, k.Generation, k.Help, k.Quit}
}

// FullHelp returns full help key bindings
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Search, k.Generation},
		{k.PrevPage, k.NextPage, k.Shiny, k.Copy},
		{k.Help, k.Quit},
	}
}
