package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

type Model struct {
	renderer *glamour.TermRenderer
	error    error
	dark     bool
	width    int
}

// New creates a renderer using glamour's dark or light standard style. A width of 0
// disables word wrapping.
func New(dark bool, width int) Model {
	m := Model{dark: dark, width: width}
	m.renderer, m.error = createGlamourRenderer(dark, width)

	return m
}

// SetTheme rebuilds the renderer when the theme changes.
func (m *Model) SetTheme(dark bool) {
	if m.dark == dark && m.renderer != nil {
		return
	}

	*m = New(dark, m.width)
}

// SetWidth rebuilds the renderer when the wrap width changes.
func (m *Model) SetWidth(width int) {
	if m.width == width && m.renderer != nil {
		return
	}

	*m = New(m.dark, width)
}

// Render renders markdown
func (m Model) Render(markdown string) (string, error) {
	if m.error != nil {
		return "", m.error
	}

	out, err := m.renderer.Render(markdown)
	if err != nil {
		return "", err
	}

	return strings.Trim(out, "\n"), nil
}

// RenderCode renders source as a fenced block highlighted for lang.
func (m Model) RenderCode(lang, source string) (string, error) {
	return m.Render(Fence(lang, source))
}

// Fence wraps source in a markdown code fence.
func Fence(lang, source string) string {
	fence := "```"
	for strings.Contains(source, fence) {
		fence += "`"
	}

	return fmt.Sprintf("%s%s\n%s\n%s", fence, lang, strings.TrimRight(source, "\n"), fence)
}

func createGlamourRenderer(dark bool, width int) (*glamour.TermRenderer, error) {
	style := styles.LightStyle
	if dark {
		style = styles.DarkStyle
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
	}

	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	return glamour.NewTermRenderer(opts...)
}
