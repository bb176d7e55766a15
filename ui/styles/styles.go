package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ViewPadding  = lipgloss.NewStyle().Padding(1, 1)
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary.GetForeground())
	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay0.
				GetForeground())

	PanelTitle = Primary.Bold(true)

	ActiveTab = AccentBackground.
			Bold(true).
			Padding(0, 1)
	InactiveTab = Subtext0.
			Padding(0, 1)

	Placeholder = Overlay0.Italic(true)
)
