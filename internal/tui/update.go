package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.help.Width = x.Width
		m.control = m.control.SetWidth(m.contentWidth())
		return m, nil

	case CountMsg:
		m.count = x.Count
		m.control = m.control.WithProps(m.props())
		return m, nil

	case tea.KeyMsg:
		// An open dropdown owns the keyboard.
		if !m.control.Open() {
			switch {
			case key.Matches(x, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(x, m.keys.Help):
				m.helpVisible = !m.helpVisible
				m.help.ShowAll = m.helpVisible
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.control, cmd = m.control.Update(x)
		m.applySelection()
		return m, cmd
	}

	return m, nil
}

// applySelection re-passes props after callbacks ran and persists changes.
func (m *Model) applySelection() {
	m.control = m.control.WithProps(m.props())
	if !m.sel.dirty {
		return
	}
	m.sel.dirty = false
	if m.store == nil {
		return
	}
	m.store.Data.SortBy = m.sel.sortBy
	m.store.Data.ViewMode = string(m.sel.viewMode)
	m.saveErr = m.store.Save()
	if m.saveErr != nil {
		logrus.Warnf("saving preferences: %v", m.saveErr)
	}
}

// contentWidth is the width available to the control bar.
func (m Model) contentWidth() int {
	w := m.width - horizontalPadding
	if w > contentMaxWidth {
		w = contentMaxWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}
