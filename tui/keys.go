package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Key bindings for the TUI application
var (
	changeFocused = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "change focus between the question and the results"),
	)

	toggleSidebar = key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("ctrl+b", "toggle the schemas and history sidebar"),
	)

	toggleTheme = key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "switch between dark and light theme"),
	)

	openUpload = key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "upload CSV or Excel files"),
	)

	viewHistoryEntries = key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "browse and re-ask previous questions"),
	)

	copyCode = key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy the active code tab to the clipboard"),
	)

	exportJSON = key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export the result as JSON"),
	)

	exportCSV = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "export the result as CSV"),
	)

	nextTab = key.NewBinding(
		key.WithKeys("]", "l"),
		key.WithHelp("] / l", "next code tab (results focused)"),
	)

	previousTab = key.NewBinding(
		key.WithKeys("[", "h"),
		key.WithHelp("[ / h", "previous code tab (results focused)"),
	)

	yankRow = key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy the selected table row (results focused)"),
	)
)
