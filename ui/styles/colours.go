package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// colour pairs a Latte (light) flavour with its Mocha (dark) counterpart.
func colour(light, dark catppuccin.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light.Hex, Dark: dark.Hex}
}

var (
	latte = catppuccin.Latte
	mocha = catppuccin.Mocha
)

var (
	Base     = lipgloss.NewStyle().Foreground(colour(latte.Base(), mocha.Base()))
	Text     = lipgloss.NewStyle().Foreground(colour(latte.Text(), mocha.Text()))
	Primary  = lipgloss.NewStyle().Foreground(colour(latte.Sapphire(), mocha.Sapphire()))
	Accent   = lipgloss.NewStyle().Foreground(colour(latte.Teal(), mocha.Teal()))
	Success  = lipgloss.NewStyle().Foreground(colour(latte.Green(), mocha.Green()))
	Error    = lipgloss.NewStyle().Foreground(colour(latte.Red(), mocha.Red()))
	Warning  = lipgloss.NewStyle().Foreground(colour(latte.Yellow(), mocha.Yellow()))
	Info     = lipgloss.NewStyle().Foreground(colour(latte.Blue(), mocha.Blue()))
	Mauve    = lipgloss.NewStyle().Foreground(colour(latte.Mauve(), mocha.Mauve()))
	Subtext0 = lipgloss.NewStyle().Foreground(colour(latte.Subtext0(), mocha.Subtext0()))
	Subtext1 = lipgloss.NewStyle().Foreground(colour(latte.Subtext1(), mocha.Subtext1()))
	Overlay0 = lipgloss.NewStyle().Foreground(colour(latte.Overlay0(), mocha.Overlay0()))
	Overlay1 = lipgloss.NewStyle().Foreground(colour(latte.Overlay1(), mocha.Overlay1()))

	Surface0 = lipgloss.NewStyle().Background(colour(latte.Surface0(), mocha.Surface0()))
	Surface1 = lipgloss.NewStyle().Background(colour(latte.Surface1(), mocha.Surface1()))
	Crust    = lipgloss.NewStyle().Background(colour(latte.Crust(), mocha.Crust()))

	Highlight = lipgloss.NewStyle().
			Foreground(colour(latte.Text(), mocha.Text())).
			Background(colour(latte.Surface1(), mocha.Surface1()))

	AccentBackground = lipgloss.NewStyle().
				Foreground(colour(latte.Base(), mocha.Base())).
				Background(colour(latte.Teal(), mocha.Teal()))
)

// SetDark switches every adaptive colour between the Mocha and Latte flavours.
func SetDark(dark bool) {
	lipgloss.SetHasDarkBackground(dark)
}
