package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
	"github.com/ensigniasec/candidate-controls/internal/controlbar"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var b strings.Builder
	b.WriteString(renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.control.View())
	b.WriteString("\n\n")
	b.WriteString(renderStatus(m.sel.sortBy, m.sel.viewMode, m.count))
	b.WriteString("\n")
	if m.saveErr != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("⚠ preferences not saved: " + m.saveErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().PaddingLeft(horizontalPadding / 2).Render(b.String())
}

func renderHeader() string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")).Render(appTitle)
}

// renderStatus summarizes what the host would hand to the candidate view.
func renderStatus(sortBy string, mode controlbar.ViewMode, count int) string {
	label := sortBy
	if opt, ok := catalog.Lookup(sortBy); ok {
		label = opt.Label
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(
		fmt.Sprintf("Showing %d candidates in %s view, ordered by %s", count, mode, label),
	)
}
