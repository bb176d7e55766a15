package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/sift/internal/keymap"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/clipboard"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/pkg/workspace"
	historyView "github.com/ionut-t/sift/tui/history"
	"github.com/ionut-t/sift/tui/upload"
	"github.com/ionut-t/sift/ui/styles"
)

// tryHandleKeyPress processes keyboard input in the main view.
// Returns (model, cmd, handled) - handled=true if key was processed
func (m model) tryHandleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, changeFocused):
		if m.focused == focusedInput {
			return m, m.setFocus(focusedResults), true
		}
		return m, m.setFocus(focusedInput), true

	case key.Matches(msg, toggleSidebar):
		m.state.ToggleSidebar()
		m.updateSize()
		return m, nil, true

	case key.Matches(msg, toggleTheme):
		return m.handleToggleTheme()

	case key.Matches(msg, openUpload):
		m.upload = upload.New(m.width, m.height)
		m.view = viewUpload
		return m, m.upload.Init(), true

	case key.Matches(msg, viewHistoryEntries):
		m.history = historyView.New(m.state.History.Entries(), m.width, m.height)
		m.view = viewHistory
		return m, nil, true

	case key.Matches(msg, copyCode):
		return m.handleCopyCode()

	case key.Matches(msg, exportJSON):
		return m, m.exportResult(formatJSON), true

	case key.Matches(msg, exportCSV):
		return m, m.exportResult(formatCSV), true

	case key.Matches(msg, keymap.Cancel):
		if m.state.Error != "" {
			m.state.ClearError()
			m.updateSize()
			return m, nil, true
		}

		if m.focused == focusedInput {
			return m, m.setFocus(focusedResults), true
		}
	}

	if m.focused == focusedInput {
		if key.Matches(msg, keymap.Submit) {
			updated, cmd := m.submitQuestion(m.input.Value())
			return updated, cmd, true
		}

		if msg.Type == tea.KeyF1 {
			m.view = viewHelp
			return m, nil, true
		}

		return m, nil, false
	}

	switch {
	case key.Matches(msg, keymap.Quit):
		updated, cmd := m.quit()
		return updated, cmd, true

	case key.Matches(msg, keymap.Help):
		m.view = viewHelp
		return m, nil, true

	case key.Matches(msg, nextTab):
		m.state.NextTab()
		m.content.SetTab(m.state.ActiveTab)
		return m, nil, true

	case key.Matches(msg, previousTab):
		m.state.PreviousTab()
		m.content.SetTab(m.state.ActiveTab)
		return m, nil, true

	case key.Matches(msg, keymap.Copy):
		return m.handleCopyCode()

	case key.Matches(msg, yankRow):
		row := m.content.SelectedRow()
		if err := clipboard.Write(clipboard.Row(row)); err != nil {
			return m, m.errorNotification(err), true
		}
		return m, m.successNotification("Row copied to clipboard"), true
	}

	return m, nil, false
}

// submitQuestion starts a generation request. Blank questions are ignored.
func (m model) submitQuestion(question string) (tea.Model, tea.Cmd) {
	question = strings.TrimSpace(question)
	if question == "" {
		return m, nil
	}

	seq := m.state.BeginGenerate()
	m.logger.Info().Uint64("seq", seq).Str("question", question).Msg("question submitted")

	m.updateSize()

	return m, m.generateCmd(seq, question)
}

// submitUpload starts an upload request. Concurrent uploads are allowed; only the
// latest one is applied.
func (m model) submitUpload(paths []string) (tea.Model, tea.Cmd) {
	if len(paths) == 0 {
		m.state.Error = api.Message(api.ErrNoFiles)
		return m, nil
	}

	seq := m.state.BeginUpload()
	m.logger.Info().Uint64("seq", seq).Strs("paths", paths).Msg("upload submitted")

	m.updateSize()

	return m, m.uploadCmd(seq, paths)
}

func (m model) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	if !m.state.FinishUpload(msg.seq, msg.result, msg.err) {
		m.logger.Debug().Uint64("seq", msg.seq).Msg("dropping superseded upload")
		return m, nil
	}

	m.updateSize()

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Uint64("seq", msg.seq).Str("elapsed", utils.Duration(msg.elapsed)).Msg("upload failed")
		return m, nil
	}

	elapsed := utils.Duration(msg.elapsed)
	m.logger.Info().
		Uint64("seq", msg.seq).
		Int("schemas", len(m.state.Schemas)).
		Str("elapsed", elapsed).
		Msg("upload finished")

	message := fmt.Sprintf("Uploaded %d file(s) in %s. %d table(s) available", len(msg.paths), elapsed, len(m.state.Schemas))
	if msg.result != nil && msg.result.Message != "" {
		message = fmt.Sprintf("%s in %s. %d table(s) available", msg.result.Message, elapsed, len(m.state.Schemas))
	}

	return m, m.successNotification(message)
}

func (m model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	if !m.state.FinishGenerate(msg.seq, msg.question, msg.response, msg.err) {
		m.logger.Debug().Uint64("seq", msg.seq).Msg("dropping superseded answer")
		return m, nil
	}

	if m.state.Error != "" {
		err := msg.err
		if err == nil {
			err = errors.New(m.state.Error)
		}

		m.logger.Error().
			Err(err).
			Uint64("seq", msg.seq).
			Str("question", msg.question).
			Str("elapsed", utils.Duration(msg.elapsed)).
			Msg("question failed")
		m.updateSize()

		return m, nil
	}

	elapsed := utils.Duration(msg.elapsed)
	m.logger.Info().
		Uint64("seq", msg.seq).
		Int("rows", len(m.state.Response.Result)).
		Str("elapsed", elapsed).
		Str("chart", m.state.Shape.Chart.String()).
		Msg("answer received")

	m.input.SetValue("")
	m.content.SetResponse(m.state.Response, m.state.Shape)
	m.content.SetTab(m.state.ActiveTab)
	m.saveHistory()
	m.updateSize()

	return m, m.successNotification(fmt.Sprintf("Answered in %s", elapsed))
}

func (m model) handleToggleTheme() (tea.Model, tea.Cmd, bool) {
	m.state.ToggleTheme()

	dark := m.state.Theme == workspace.ThemeDark
	styles.SetDark(dark)
	m.content.SetTheme(dark)

	if err := m.config.SetTheme(m.state.Theme.String()); err != nil {
		m.logger.Warn().Err(err).Msg("failed to save theme")
	}

	return m, nil, true
}

func (m model) handleCopyCode() (tea.Model, tea.Cmd, bool) {
	if err := clipboard.Write(m.state.ActiveCode()); err != nil {
		return m, m.errorNotification(err), true
	}

	return m, m.successNotification(fmt.Sprintf("%s copied to clipboard", m.state.ActiveTab)), true
}

func (m model) saveHistory() {
	if !m.config.PersistHistory() {
		return
	}

	if err := m.state.History.Save(m.config.Storage()); err != nil {
		m.logger.Warn().Err(err).Msg("failed to save history")
	}
}

func (m model) generateCmd(seq uint64, question string) tea.Cmd {
	backend, timeout := m.backend, m.config.RequestTimeout()

	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		start := time.Now()
		res, err := backend.Generate(ctx, question)

		return generateDoneMsg{
			seq:      seq,
			question: question,
			response: res,
			err:      wrapTimeout(err),
			elapsed:  time.Since(start),
		}
	}
}

func (m model) uploadCmd(seq uint64, paths []string) tea.Cmd {
	backend, timeout := m.backend, m.config.RequestTimeout()

	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		start := time.Now()
		res, err := backend.Upload(ctx, paths)

		return uploadDoneMsg{
			seq:     seq,
			paths:   paths,
			result:  res,
			err:     wrapTimeout(err),
			elapsed: time.Since(start),
		}
	}
}

// requestContext bounds a request when a timeout is configured. A zero timeout means
// requests run until the backend answers.
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}

	return context.WithTimeout(context.Background(), timeout)
}

func wrapTimeout(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out", api.ErrTransport)
	}

	return err
}
