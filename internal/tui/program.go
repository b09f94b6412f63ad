package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/candidate-controls/internal/storage"
)

// Run starts the Bubble Tea program hosting the control bar. Preferences
// changed in the UI are written back through st when it is non-nil.
func Run(ctx context.Context, st *storage.Storage, count int) error {
	model := NewModel(st, count)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	final, err := p.Run()
	logrus.SetOutput(prevOut)

	if m, ok := final.(Model); ok {
		logrus.WithFields(logrus.Fields{
			"sort_by":   m.SortBy(),
			"view_mode": m.ViewMode(),
		}).Debug("tui exited")
	}
	return err
}
