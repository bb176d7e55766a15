package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme maps the catppuccin palette onto huh forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	var (
		base     = Base.GetForeground()
		text     = Text.GetForeground()
		subtext1 = Subtext1.GetForeground()
		subtext0 = Subtext0.GetForeground()
		overlay1 = Overlay1.GetForeground()
		overlay0 = Overlay0.GetForeground()
		green    = Success.GetForeground()
		red      = Error.GetForeground()
		accent   = Accent.GetForeground()
		primary  = Primary.GetForeground()
		surface0 = Surface0.GetBackground()
	)

	f := &t.Focused
	f.Base = f.Base.BorderForeground(subtext1)
	f.Title = f.Title.Foreground(primary).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(primary)
	f.Directory = f.Directory.Foreground(primary)
	f.File = f.File.Foreground(text)
	f.Description = f.Description.Foreground(subtext0)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(red)
	f.ErrorMessage = f.ErrorMessage.Foreground(red)
	f.SelectSelector = f.SelectSelector.Foreground(accent)
	f.MultiSelectSelector = f.MultiSelectSelector.Foreground(accent)
	f.SelectedOption = f.SelectedOption.Foreground(green)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(green)
	f.UnselectedOption = f.UnselectedOption.Foreground(text)
	f.UnselectedPrefix = f.UnselectedPrefix.Foreground(text)
	f.FocusedButton = f.FocusedButton.Foreground(base).Background(primary)
	f.BlurredButton = f.BlurredButton.Foreground(text).Background(surface0)

	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(primary)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(overlay0)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Help.ShortKey = t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(overlay1)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(subtext0)
	t.Help.FullKey = t.Help.FullKey.Foreground(subtext0)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(overlay1)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(subtext0)

	return t
}
