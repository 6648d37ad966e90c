package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the watch view.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Runner  key.Binding
	Theme   key.Binding
	FPS     key.Binding
	Startup key.Binding
}

var keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Runner: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "next runner"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next theme"),
	),
	FPS: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "next fps limit"),
	),
	Startup: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "toggle startup"),
	),
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Runner, k.Theme, k.FPS, k.Startup, k.Help}
}

// FullHelp returns the bindings shown in the expanded help panel.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Runner, k.Theme, k.FPS},
		{k.Startup, k.Help, k.Quit},
	}
}
