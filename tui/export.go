package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/sift/pkg/export"
	"github.com/ionut-t/sift/pkg/utils"
)

type exportFormat int

const (
	formatJSON exportFormat = iota
	formatCSV
)

type exportDoneMsg struct {
	path string
	err  error
}

// exportResult writes the current result into the storage directory, named after the
// question that produced it.
func (m model) exportResult(format exportFormat) tea.Cmd {
	if m.state.Response == nil || len(m.state.Response.Result) == 0 {
		return utils.Dispatch(exportDoneMsg{err: export.ErrNoRows})
	}

	storage := m.config.Storage()
	rows := m.state.Response.Result
	name := exportName(m.state.Response.Question)

	return func() tea.Msg {
		var path string
		var err error

		switch format {
		case formatCSV:
			path, err = export.AsCSV(storage, rows, name)
		default:
			path, err = export.AsJSON(storage, rows, name)
		}

		return exportDoneMsg{path: path, err: err}
	}
}

func (m model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.errorNotification(msg.err)
	}

	m.logger.Info().Str("path", msg.path).Msg("result exported")

	return m, m.successNotification("Exported to " + msg.path)
}

// exportName turns a question into a file name: lower case words joined by dashes.
func exportName(question string) string {
	var sb strings.Builder
	dash := false

	for _, r := range strings.ToLower(question) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}

		if !dash && sb.Len() > 0 {
			sb.WriteRune('-')
			dash = true
		}
	}

	name := strings.Trim(sb.String(), "-")
	if runes := []rune(name); len(runes) > exportNameLength {
		name = strings.TrimRight(string(runes[:exportNameLength]), "-")
	}

	if name == "" {
		return "result"
	}

	return name
}
