package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/ui/styles"
)

// Section is a titled group of key bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

type Model struct {
	viewport viewport.Model
}

func New() Model {
	vp := viewport.New(0, 0)

	return Model{
		viewport: vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

func (m *Model) SetContent(helpText string) {
	m.viewport.SetContent(lipgloss.NewStyle().Padding(1, 1).Render(helpText))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp

	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// RenderSections renders every section under its title.
func RenderSections(width int, sections []Section) string {
	var parts []string

	for _, s := range sections {
		body := RenderHelpView(width, s.Bindings)
		if body == "" {
			continue
		}

		parts = append(parts, styles.PanelTitle.Render(s.Title)+"\n"+body)
	}

	return strings.Join(parts, "\n\n")
}

// RenderHelpView renders a help view for key bindings with their descriptions.
func RenderHelpView(width int, keys []key.Binding) string {
	var sb strings.Builder

	enabledBindings := make([]key.Binding, 0)
	maxKeyWidth := 0

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabledBindings = append(enabledBindings, binding)
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(binding.Help().Key))
	}

	if len(enabledBindings) == 0 {
		return ""
	}

	for _, binding := range enabledBindings {
		keyText := binding.Help().Key
		renderedKey := styles.Info.Render(keyText)
		gap := maxKeyWidth - lipgloss.Width(keyText) + 2
		indent := strings.Repeat(" ", 2+maxKeyWidth+2)

		var desc strings.Builder
		for i, line := range strings.Split(binding.Help().Desc, "\n") {
			if i != 0 {
				desc.WriteString("\n" + indent)
			}

			desc.WriteString(styles.Text.Render(strings.TrimSpace(line)))
		}

		fmt.Fprintf(&sb, "• %s%s%s\n", renderedKey, strings.Repeat(" ", gap), desc.String())
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Trim(sb.String(), "\n"))
}
