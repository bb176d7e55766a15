package keymap

import "github.com/charmbracelet/bubbles/key"

var Quit = key.NewBinding(
	key.WithKeys("q"),
	key.WithHelp("q", "quit (results focused)"),
)

var ForceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

var Help = key.NewBinding(
	key.WithKeys("?", "f1"),
	key.WithHelp("? / f1", "toggle help view"),
)

var Cancel = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "cancel current operation"),
)

var Submit = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "ask the question"),
)

var Copy = key.NewBinding(
	key.WithKeys("c"),
	key.WithHelp("c", "copy active code tab to clipboard (results focused)"),
)
