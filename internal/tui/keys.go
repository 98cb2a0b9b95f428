package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	open       key.Binding
	position   key.Binding
	pageUp     key.Binding
	pageDown   key.Binding
	serif      key.Binding
	allura     key.Binding
	cursive    key.Binding
	cycleFont  key.Binding
	toggleList key.Binding
	back       key.Binding
	toggleHelp key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "read"),
		),
		position: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		serif: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "serif"),
		),
		allura: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allura"),
		),
		cursive: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cursive"),
		),
		cycleFont: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "style"),
		),
		toggleList: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "poems"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.open, k.cycleFont, k.toggleList, k.toggleHelp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.open, k.position},
		{k.pageUp, k.pageDown},
		{k.serif, k.allura, k.cursive, k.cycleFont},
		{k.toggleList, k.back, k.toggleHelp, k.quit},
	}
}
