package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/ui/styles"
)

// Info is what the status bar shows about the workspace.
type Info struct {
	BaseURL string
	Schemas int
	Theme   string
	Busy    string
}

func StatusBarView(info Info, width int) string {
	bg := styles.Surface0.GetBackground()

	separator := styles.Surface0.Render(" | ")

	backend := styles.Primary.Background(bg).Render(info.BaseURL)

	tables := styles.Accent.Background(bg).Render(pluralise(info.Schemas, "table"))

	theme := styles.Subtext1.Background(bg).Render(info.Theme)

	left := backend + separator + tables + separator + theme
	if info.Busy != "" {
		left += separator + styles.Warning.Background(bg).Render(info.Busy)
	}

	leftInfo := styles.Surface0.Padding(0, 1).Render(left)

	helpText := styles.Info.Background(bg).PaddingRight(1).Render("? Help")

	displayedInfoWidth := width -
		lipgloss.Width(leftInfo) -
		lipgloss.Width(helpText)

	spaces := styles.Surface0.Render(strings.Repeat(" ", max(0, displayedInfoWidth)))

	return styles.Surface0.Width(width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Right,
			leftInfo,
			spaces,
			helpText,
		),
	)
}

func pluralise(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
