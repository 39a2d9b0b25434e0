package app

import (
	"navshell/internal/tui/i18n"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the shell key bindings. Pages receive every key the shell
// does not consume.
type KeyMap struct {
	Toggle key.Binding
	Close  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	About  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default bindings with help text from tr.
func DefaultKeyMap(tr *i18n.I18n) KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+b", "m"),
			key.WithHelp("m", tr.T("help.toggle")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", tr.T("help.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", tr.T("help.down")),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr.T("help.select")),
		),
		About: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T("help.about")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tr.T("help.quit")),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Select, k.About, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Up, k.Down, k.Select},
		{k.About, k.Quit},
	}
}
