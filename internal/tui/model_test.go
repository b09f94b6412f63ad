package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
	"github.com/ensigniasec/candidate-controls/internal/controlbar"
	"github.com/ensigniasec/candidate-controls/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newStore(t *testing.T) *storage.Storage {
	t.Helper()
	st, err := storage.NewOrExistingStorage(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	return st
}

func TestModel_DefaultsWithoutStore(t *testing.T) {
	m := NewModel(nil, 3)
	assert.Equal(t, catalog.DefaultSort, m.SortBy())
	assert.Equal(t, controlbar.ViewList, m.ViewMode())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, appTitle)
	assert.Contains(t, out, "3 candidates")
	assert.Contains(t, out, "Most qualified candidates based on comprehensive AI assessment")
}

func TestModel_SeedsFromStore(t *testing.T) {
	st := newStore(t)
	st.Data.SortBy = "nameAsc"
	st.Data.ViewMode = "grid"

	m := NewModel(st, 0)
	assert.Equal(t, "nameAsc", m.SortBy())
	assert.Equal(t, controlbar.ViewGrid, m.ViewMode())
	assert.Contains(t, ansi.Strip(m.View()), "[▦ Grid]")
}

func TestModel_GridToggleUpdatesHostAndPersists(t *testing.T) {
	st := newStore(t)
	m := NewModel(st, 5)

	m = send(t, m, runes("g"))
	assert.Equal(t, controlbar.ViewGrid, m.ViewMode())
	assert.Contains(t, ansi.Strip(m.View()), "[▦ Grid]")

	reloaded, err := storage.NewStorage(st.Path)
	require.NoError(t, err)
	assert.Equal(t, "grid", reloaded.Data.ViewMode)
}

func TestModel_SortPickUpdatesHostAndPersists(t *testing.T) {
	st := newStore(t)
	m := NewModel(st, 5)

	msgs := []tea.Msg{runes("s")}
	for i := 0; i < catalog.IndexOf("nameAsc"); i++ {
		msgs = append(msgs, runes("j"))
	}
	msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, msgs...)

	assert.Equal(t, "nameAsc", m.SortBy())
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Alphabetical by candidate name")
	assert.Contains(t, out, "ordered by Name (A-Z)")

	reloaded, err := storage.NewStorage(st.Path)
	require.NoError(t, err)
	assert.Equal(t, "nameAsc", reloaded.Data.SortBy)
}

func TestModel_QuitIgnoredWhileDropdownOpen(t *testing.T) {
	m := NewModel(nil, 1)
	m = send(t, m, runes("s"))

	next, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).quitting)

	m = send(t, next.(Model), tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CountMsg(t *testing.T) {
	m := send(t, NewModel(nil, 1), CountMsg{Count: 0})
	assert.Contains(t, ansi.Strip(m.View()), "0 candidates")
}

func TestModel_HelpToggle(t *testing.T) {
	m := NewModel(nil, 1)
	short := ansi.Strip(m.View())
	assert.NotContains(t, short, "choose")

	m = send(t, m, runes("?"))
	assert.Contains(t, ansi.Strip(m.View()), "choose")
}

func TestModel_WindowSizeCapsWidth(t *testing.T) {
	m := send(t, NewModel(nil, 1), tea.WindowSizeMsg{Width: 300, Height: 40})
	assert.Equal(t, contentMaxWidth, m.contentWidth())

	m = send(t, m, tea.WindowSizeMsg{Width: 1, Height: 40})
	assert.Equal(t, 0, m.contentWidth())
}
