package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
	"github.com/ensigniasec/candidate-controls/internal/controlbar"
	"github.com/ensigniasec/candidate-controls/internal/storage"
)

// selection is the state the control bar reflects. It is shared by pointer
// so the callbacks handed to the control can record requests while the
// Model itself is passed by value through the update loop.
type selection struct {
	sortBy   string
	viewMode controlbar.ViewMode
	dirty    bool
}

// Model is the root Bubble Tea model hosting the control bar.
type Model struct {
	sel     *selection
	count   int
	control controlbar.Control

	// nil disables persistence
	store   *storage.Storage
	saveErr error

	help        help.Model
	helpVisible bool
	keys        keyMap

	width    int
	height   int
	quitting bool
}

// NewModel constructs a Model seeded from stored preferences (or defaults
// when st is nil).
func NewModel(st *storage.Storage, count int) Model {
	sel := &selection{sortBy: catalog.DefaultSort, viewMode: controlbar.ViewList}
	if st != nil {
		sel.sortBy = st.Data.SortBy
		// Storage self-heals invalid modes; fall back anyway for hand-built Data.
		if mode, err := controlbar.ParseViewMode(st.Data.ViewMode); err == nil {
			sel.viewMode = mode
		}
	}

	m := Model{
		sel:   sel,
		count: count,
		store: st,
		help:  help.New(),
	}
	m.control = controlbar.New(m.props())
	m.keys = newKeyMap(m.control.KeyMap())
	return m
}

// props builds the control bar props from host state.
func (m Model) props() controlbar.Props {
	sel := m.sel
	return controlbar.Props{
		SortBy: sel.sortBy,
		OnSortChange: func(value string) {
			logrus.WithFields(logrus.Fields{"from": sel.sortBy, "to": value}).Debug("sort changed")
			sel.sortBy = value
			sel.dirty = true
		},
		ViewMode: sel.viewMode,
		OnViewModeChange: func(mode controlbar.ViewMode) {
			logrus.WithFields(logrus.Fields{"from": sel.viewMode, "to": mode}).Debug("view mode changed")
			if sel.viewMode != mode {
				sel.viewMode = mode
				sel.dirty = true
			}
		},
		CandidateCount: m.count,
	}
}

// SortBy returns the host's current sort identifier.
func (m Model) SortBy() string { return m.sel.sortBy }

// ViewMode returns the host's current view mode.
func (m Model) ViewMode() controlbar.ViewMode { return m.sel.viewMode }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.control.Init()
}
