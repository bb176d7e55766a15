package upload

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/internal/keymap"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/ui/styles"
)

// SubmittedMsg carries the validated paths to upload.
type SubmittedMsg struct {
	Paths []string
}

type CancelledMsg struct{}

type Model struct {
	width, height int
	form          *huh.Form
	paths         *string

	// set once the form has reported its outcome
	done bool
}

func New(width, height int) Model {
	paths := new(string)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("paths").
				Title("Upload files").
				Description("CSV or Excel files, separated by commas or new lines (alt+enter). Globs such as data/*.csv are expanded.").
				Placeholder("~/data/sales.csv, ~/data/regions.xlsx").
				Lines(5).
				Value(paths).
				Validate(ValidatePaths),
		),
	).
		WithTheme(styles.FormTheme()).
		WithShowHelp(true)

	m := Model{
		form:  form,
		paths: paths,
	}
	m.SetSize(width, height)

	return m
}

// ValidatePaths accepts input naming at least one existing regular file.
func ValidatePaths(input string) error {
	paths := utils.ParsePaths(input)
	if len(paths) == 0 {
		return api.ErrNoFiles
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("%s: file not found", p)
		}

		if info.IsDir() {
			return fmt.Errorf("%s is a directory", p)
		}
	}

	return nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	w, _ := styles.ViewPadding.GetFrameSize()
	m.form = m.form.WithWidth(max(20, min(width-w, 100)))
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keymap.Cancel) {
		m.done = true
		return m, utils.Dispatch(CancelledMsg{})
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		return m, utils.Dispatch(SubmittedMsg{Paths: utils.ParsePaths(*m.paths)})
	case huh.StateAborted:
		m.done = true
		return m, utils.Dispatch(CancelledMsg{})
	}

	return m, cmd
}

func (m Model) View() string {
	return styles.ViewPadding.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.form.View(),
		"",
		styles.Subtext0.Render("esc to cancel"),
	))
}
