package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func TableStyles() table.Styles {
	return table.Styles{
		Header: AccentBackground.
			Bold(true).
			Padding(0, 1),
		Cell: Subtext0.
			Padding(0, 1),
		Selected: Highlight.
			Bold(true),
	}
}

// CLITableStyle styles lipgloss/table output printed outside the TUI.
func CLITableStyle(row, _ int) lipgloss.Style {
	if row == -1 {
		return Accent.Bold(true).Padding(0, 1)
	}

	return Text.Padding(0, 1)
}
