package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/pkg/utils"
	statusbar "github.com/ionut-t/sift/ui/status-bar"
	"github.com/ionut-t/sift/ui/styles"
)

func (m model) renderMain() string {
	width, _ := m.contentSize()

	var sections []string

	if m.state.Error != "" {
		sections = append(sections, m.renderError(width))
	}

	sections = append(sections, m.content.View(), m.renderInput(width))

	main := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.state.SidebarOpen {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	}

	bottom := m.renderStatusBar()
	if m.notification != "" {
		bottom = m.notification
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, bottom)
}

func (m model) renderError(width int) string {
	return styles.Error.Width(width).Render(utils.Truncate("✗ "+m.state.Error, width))
}

func (m model) renderInput(width int) string {
	border := styles.InactiveBorder
	if m.focused == focusedInput {
		border = styles.ActiveBorder
	}

	line := m.input.View()
	if m.state.Loading {
		line = m.spinner.View() + " " + styles.Subtext0.Render("Generating…") + "  " + line
	}

	return border.Width(max(1, width-2)).Render(line)
}

func (m model) renderSidebar() string {
	inner := sidebarWidth - 4
	var sb strings.Builder

	sb.WriteString(styles.PanelTitle.Render("Tables"))
	sb.WriteString("\n")

	switch {
	case m.state.Uploading:
		sb.WriteString(m.spinner.View() + " " + styles.Subtext0.Render("Uploading…"))
	case len(m.state.Schemas) == 0:
		sb.WriteString(styles.Placeholder.Render(styles.Wrap(inner, "Nothing uploaded yet. Press ctrl+o to upload files.")))
	default:
		for _, schema := range m.state.Schemas {
			sb.WriteString(styles.Text.Render(styles.Wrap(inner, "• "+schema)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(styles.PanelTitle.Render("Recent questions"))
	sb.WriteString("\n")

	entries := m.state.History.Entries()
	if len(entries) == 0 {
		sb.WriteString(styles.Placeholder.Render("No questions yet."))
	}

	for i, e := range entries {
		if i == sidebarHistory {
			sb.WriteString(styles.Subtext0.Render(fmt.Sprintf("+%d more (ctrl+r)", len(entries)-i)))
			break
		}

		sb.WriteString(styles.Subtext1.Render(utils.Truncate(fmt.Sprintf("%d) %s", i+1, e.Question), inner)))
		sb.WriteString("\n")
	}

	_, height := m.availableSize()

	return styles.InactiveBorder.
		Width(sidebarWidth - 2).
		Height(max(1, height-2)).
		Padding(0, 1).
		Render(strings.TrimRight(sb.String(), "\n"))
}

func (m model) renderStatusBar() string {
	var busy []string
	if m.state.Uploading {
		busy = append(busy, "uploading")
	}
	if m.state.Loading {
		busy = append(busy, "generating")
	}

	return statusbar.StatusBarView(statusbar.Info{
		BaseURL: m.backend.BaseURL(),
		Schemas: len(m.state.Schemas),
		Theme:   m.state.Theme.String(),
		Busy:    strings.Join(busy, ", "),
	}, m.width)
}

// availableSize is the area above the status bar.
func (m model) availableSize() (int, int) {
	return m.width, max(1, m.height-statusBarHeight)
}

// contentSize is the area of the results panel.
func (m model) contentSize() (int, int) {
	width, height := m.availableSize()

	if m.state.SidebarOpen {
		width -= sidebarWidth
	}

	height -= inputHeight
	if m.state.Error != "" {
		height--
	}

	return max(20, width), max(minContentHeight, height)
}
