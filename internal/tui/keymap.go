package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines global key bindings handled by the host.
type keyMap struct {
	Quit key.Binding
	Help key.Binding

	// control bar bindings, shown alongside ours in the help footer
	control help.KeyMap
}

func newKeyMap(control help.KeyMap) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		control: control,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	out := []key.Binding{}
	if k.control != nil {
		out = append(out, k.control.ShortHelp()...)
	}
	return append(out, k.Help, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	out := [][]key.Binding{}
	if k.control != nil {
		out = append(out, k.control.FullHelp()...)
	}
	return append(out, []key.Binding{k.Help, k.Quit})
}
