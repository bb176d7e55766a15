package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/sift/internal/keymap"
	"github.com/ionut-t/sift/tui/content"
	"github.com/ionut-t/sift/ui/help"
)

func (m model) renderHelp() string {
	return help.RenderSections(m.width, []help.Section{
		{
			Title: "General",
			Bindings: []key.Binding{
				changeFocused,
				openUpload,
				viewHistoryEntries,
				toggleSidebar,
				toggleTheme,
				copyCode,
				exportJSON,
				exportCSV,
				keymap.Cancel,
				keymap.ForceQuit,
			},
		},
		{
			Title: "Question",
			Bindings: []key.Binding{
				keymap.Submit,
			},
		},
		{
			Title: "Results",
			Bindings: []key.Binding{
				nextTab,
				previousTab,
				content.SwitchSection,
				keymap.Copy,
				yankRow,
				keymap.Help,
				keymap.Quit,
			},
		},
	})
}
