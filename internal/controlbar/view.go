package controlbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/candidate-controls/internal/catalog"
)

const (
	sortGlyph = "⇅"
	listGlyph = "☰"
	gridGlyph = "▦"
	caret     = "▾"
	checkMark = "✓"

	toggleGap = 2
)

//nolint:gochecknoglobals // Shared styles.
var (
	badgeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("69")).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	fieldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).PaddingLeft(2)
	groupStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	menuStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeButton   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	inactiveButton = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View renders the control bar.
func (c Control) View() string {
	var b strings.Builder

	top := renderBadge(c.props.CandidateCount)
	toggles := renderToggles(c.props.ViewMode)
	pad := toggleGap
	if c.width > 0 {
		if avail := c.width - lipgloss.Width(top) - lipgloss.Width(toggles); avail > pad {
			pad = avail
		}
	}
	b.WriteString(top)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(toggles)
	b.WriteString("\n")

	b.WriteString(renderSortField(c.props.SortBy, c.open))
	if c.open {
		b.WriteString("\n")
		b.WriteString(renderMenu(c.props.SortBy, c.highlight))
	}
	if hint := renderHint(c.props.SortBy); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
	}
	return b.String()
}

// Render is a one-shot render of p with the dropdown closed.
func Render(p Props, width int) string {
	return New(p).SetWidth(width).View()
}

func renderBadge(count int) string {
	return badgeStyle.Render(fmt.Sprintf("%d candidates", count)) + " " + mutedStyle.Render("found")
}

func renderSortField(sortBy string, open bool) string {
	current := sortBy
	if opt, ok := catalog.Lookup(sortBy); ok {
		current = opt.Label
	}
	arrow := caret
	if open {
		arrow = "▴"
	}
	return fmt.Sprintf("%s %s %s", mutedStyle.Render(sortGlyph), mutedStyle.Render("Sort by:"), fieldStyle.Render(current+" "+arrow))
}

// renderHint is empty when sortBy is not in the catalog.
func renderHint(sortBy string) string {
	opt, ok := catalog.Lookup(sortBy)
	if !ok {
		return ""
	}
	return hintStyle.Render(opt.Description)
}

func renderMenu(sortBy string, highlight int) string {
	lines := make([]string, 0, catalog.Len()+len(catalog.Groups()))
	i := 0
	for _, g := range catalog.Groups() {
		lines = append(lines, groupStyle.Render(g.Label))
		for _, opt := range g.Options {
			cursor := "  "
			mark := " "
			if opt.Value == sortBy {
				mark = checkMark
			}
			label := opt.Label
			if i == highlight {
				cursor = "> "
				label = highlightStyle.Render(label)
			}
			lines = append(lines, fmt.Sprintf("%s%s %s", cursor, mark, label))
			i++
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func renderToggles(mode ViewMode) string {
	return renderButton(listGlyph+" List", mode == ViewList) + " " + renderButton(gridGlyph+" Grid", mode == ViewGrid)
}

// renderButton brackets the active button; color alone is lost on plain terminals.
func renderButton(label string, active bool) string {
	if active {
		return activeButton.Render("[" + label + "]")
	}
	return inactiveButton.Render(" " + label + " ")
}
