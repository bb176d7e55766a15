package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/internal/config"
	"github.com/ionut-t/sift/internal/keymap"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/history"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/pkg/workspace"
	"github.com/ionut-t/sift/tui/content"
	historyView "github.com/ionut-t/sift/tui/history"
	"github.com/ionut-t/sift/tui/upload"
	"github.com/ionut-t/sift/ui/help"
	"github.com/ionut-t/sift/ui/styles"
	"github.com/rs/zerolog"
)

type model struct {
	config  config.Config
	backend api.Backend
	logger  zerolog.Logger

	width, height int
	view          view
	focused       focused

	state workspace.State

	input   textinput.Model
	spinner spinner.Model
	content content.Model
	help    help.Model
	history historyView.Model
	upload  upload.Model

	notification string
}

// New builds the workspace view. History is reloaded from storage when persistence
// is enabled.
func New(cfg config.Config, backend api.Backend, logger zerolog.Logger) model {
	state := workspace.New(cfg.HistoryLimit())
	state.Theme = workspace.ParseTheme(cfg.Theme())

	if cfg.PersistHistory() {
		if h, err := history.Load(cfg.Storage(), cfg.HistoryLimit()); err != nil {
			logger.Warn().Err(err).Msg("failed to load history")
		} else {
			state.History = h
		}
	}

	dark := state.Theme == workspace.ThemeDark
	styles.SetDark(dark)

	input := textinput.New()
	input.Placeholder = "Ask a question about your data, e.g. total sales by region"
	input.Prompt = "❯ "
	input.PromptStyle = styles.Accent
	input.Cursor.Style = styles.Primary
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	return model{
		config:  cfg,
		backend: backend,
		logger:  logger,
		state:   state,
		input:   input,
		spinner: sp,
		content: content.New(0, 0, cfg.ChartHeight(), dark),
		help:    help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sift"),
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSize()

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case utils.ClearMsg:
		m.notification = ""
		return m, nil

	case uploadDoneMsg:
		return m.handleUploadDone(msg)

	case generateDoneMsg:
		return m.handleGenerateDone(msg)

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case upload.SubmittedMsg:
		m.view = viewMain
		return m.submitUpload(msg.Paths)

	case upload.CancelledMsg:
		m.view = viewMain
		return m, nil

	case historyView.SelectedMsg:
		m.view = viewMain
		return m.submitQuestion(msg.Question)

	case historyView.ClosedMsg:
		m.view = viewMain
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keymap.ForceQuit) {
			return m.quit()
		}

		switch m.view {
		case viewHelp:
			if key.Matches(msg, keymap.Quit, keymap.Cancel, keymap.Help) {
				m.view = viewMain
				return m, nil
			}
		case viewMain:
			if updated, cmd, handled := m.tryHandleKeyPress(msg); handled {
				return updated, cmd
			}
		}
	}

	return m.updateChildren(msg)
}

func (m model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.view {
	case viewHelp:
		var h tea.Model
		h, cmd = m.help.Update(msg)
		m.help = h.(help.Model)

	case viewHistory:
		var h tea.Model
		h, cmd = m.history.Update(msg)
		m.history = h.(historyView.Model)

	case viewUpload:
		var u tea.Model
		u, cmd = m.upload.Update(msg)
		m.upload = u.(upload.Model)

	case viewMain:
		if m.focused == focusedInput {
			m.input, cmd = m.input.Update(msg)
			m.state.Input = m.input.Value()
			break
		}

		var c tea.Model
		c, cmd = m.content.Update(msg)
		m.content = c.(content.Model)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.view {
	case viewHelp:
		return m.help.View()
	case viewHistory:
		return m.history.View()
	case viewUpload:
		return m.upload.View()
	}

	return m.renderMain()
}

func (m *model) updateSize() {
	width, height := m.contentSize()
	m.content.SetSize(width, height)

	m.input.Width = max(10, width-lipgloss.Width(m.input.Prompt)-4)

	m.help.SetSize(m.width, m.height)
	m.help.SetContent(m.renderHelp())

	switch m.view {
	case viewHistory:
		m.history.SetSize(m.width, m.height)
	case viewUpload:
		m.upload.SetSize(m.width, m.height)
	}
}

func (m *model) setFocus(f focused) tea.Cmd {
	m.focused = f

	if f == focusedInput {
		m.content.SetActive(false)
		return m.input.Focus()
	}

	m.input.Blur()
	m.content.SetActive(true)

	return nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.saveHistory()
	return m, tea.Quit
}
