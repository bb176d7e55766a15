package styles

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

func ListStyles() list.Styles {
	s := list.DefaultStyles()

	s.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 0)
	s.Title = PanelTitle
	s.FilterPrompt = Accent
	s.FilterCursor = Accent
	s.StatusBar = Overlay1.Padding(0, 0, 1, 0)
	s.StatusEmpty = Overlay0
	s.StatusBarActiveFilter = Primary
	s.StatusBarFilterCount = Overlay0
	s.NoItems = Subtext0
	s.PaginationStyle = lipgloss.NewStyle().PaddingLeft(0)
	s.HelpStyle = lipgloss.NewStyle().Padding(1, 0, 0, 0)

	return s
}

func ListItemStyles() list.DefaultItemStyles {
	s := list.NewDefaultItemStyles()

	s.NormalTitle = Text.Padding(0, 0, 0, 2)
	s.NormalDesc = Overlay0.Padding(0, 0, 0, 2)

	s.SelectedTitle = Primary.
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(Primary.GetForeground()).
		Padding(0, 0, 0, 1)
	s.SelectedDesc = s.SelectedTitle.
		Foreground(Accent.GetForeground())

	return s
}
