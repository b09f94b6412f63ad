package controlbar

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the bindings the control responds to.
type keyMap struct {
	Sort       key.Binding
	Up         key.Binding
	Down       key.Binding
	Pick       key.Binding
	Close      key.Binding
	List       key.Binding
	Grid       key.Binding
	ToggleView key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		List: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "list view"),
		),
		Grid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid view"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v", "tab"),
			key.WithHelp("v/tab", "switch view"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.List, k.Grid, k.ToggleView}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sort, k.Up, k.Down, k.Pick, k.Close},
		{k.List, k.Grid, k.ToggleView},
	}
}
