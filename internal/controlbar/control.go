// Package controlbar renders the candidate list control bar: count badge,
// grouped sort dropdown with a description hint, and the list/grid toggle.
package controlbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
)

// Control is a Bubble Tea sub-model. Selection state lives in Props and is
// owned by the caller; the only local state is the dropdown widget itself.
type Control struct {
	props Props

	// dropdown widget state
	open      bool
	highlight int

	width int
	keys  keyMap
}

// New builds a closed control reflecting p.
func New(p Props) Control {
	return Control{
		props: p,
		keys:  newKeyMap(),
	}
}

// WithProps returns the control re-rendered against new caller state.
func (c Control) WithProps(p Props) Control {
	c.props = p
	return c
}

// Props returns the props the control currently reflects.
func (c Control) Props() Props { return c.props }

// SetWidth sets the width used to right-align the view toggle.
func (c Control) SetWidth(w int) Control {
	c.width = w
	return c
}

// Open reports whether the sort dropdown is expanded. While open the
// control consumes every key.
func (c Control) Open() bool { return c.open }

// Expanded returns a copy with the dropdown open, highlighting the current
// selection.
func (c Control) Expanded() Control {
	c.open = true
	c.highlight = catalog.IndexOf(c.props.SortBy)
	if c.highlight < 0 {
		c.highlight = 0
	}
	return c
}

// KeyMap exposes the control bindings for a help view.
func (c Control) KeyMap() help.KeyMap { return c.keys }

// Init returns no command; the control has nothing to start.
func (c Control) Init() tea.Cmd { return nil }

// Update handles window size and key messages.
func (c Control) Update(msg tea.Msg) (Control, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = x.Width
		return c, nil

	case tea.KeyMsg:
		if c.open {
			return c.handleDropdownKey(x), nil
		}
		return c.handleKey(x), nil
	}
	return c, nil
}

func (c Control) handleKey(msg tea.KeyMsg) Control {
	switch {
	case key.Matches(msg, c.keys.Sort):
		return c.Expanded()

	case key.Matches(msg, c.keys.List):
		c.pressView(ViewList)

	case key.Matches(msg, c.keys.Grid):
		c.pressView(ViewGrid)

	case key.Matches(msg, c.keys.ToggleView):
		c.pressView(c.props.ViewMode.other())
	}
	return c
}

func (c Control) handleDropdownKey(msg tea.KeyMsg) Control {
	switch {
	case key.Matches(msg, c.keys.Close), key.Matches(msg, c.keys.Sort):
		c.open = false

	case key.Matches(msg, c.keys.Up):
		if c.highlight > 0 {
			c.highlight--
		}

	case key.Matches(msg, c.keys.Down):
		if c.highlight < catalog.Len()-1 {
			c.highlight++
		}

	case key.Matches(msg, c.keys.Pick):
		c.open = false
		c.pick(catalog.Options()[c.highlight].Value)
	}
	return c
}

// pick forwards a dropdown choice. Re-choosing the current entry is not a change.
func (c Control) pick(value string) {
	if value == c.props.SortBy || c.props.OnSortChange == nil {
		return
	}
	c.props.OnSortChange(value)
}

// pressView forwards a toggle press, including presses on the active button.
func (c Control) pressView(mode ViewMode) {
	if c.props.OnViewModeChange == nil {
		return
	}
	c.props.OnViewModeChange(mode)
}
