package history

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/internal/keymap"
	"github.com/ionut-t/sift/pkg/history"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/ui/styles"
)

// SelectedMsg asks the workspace to submit the question again.
type SelectedMsg struct {
	Question string
}

type ClosedMsg struct{}

type focused int

const (
	focusedList focused = iota
	focusedViewport
)

var changeFocus = key.NewBinding(
	key.WithKeys("tab"),
	key.WithHelp("tab", "switch between list and preview"),
)

type Model struct {
	width, height int
	list          list.Model
	viewport      viewport.Model
	focused       focused
}

type item struct {
	entry history.Entry
}

func (i item) Title() string       { return i.entry.Question }
func (i item) Description() string { return i.entry.Time.Format("02/01/2006 15:04:05") }
func (i item) FilterValue() string { return i.entry.Question }

type itemDelegate struct {
	styles list.DefaultItemStyles
	width  int
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 1 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := utils.Truncate(fmt.Sprintf("%d) %s", index+1, i.entry.Question), max(1, m.Width()-3))

	fn := d.styles.NormalTitle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return d.styles.SelectedTitle.Render(s...)
		}
	}

	fmt.Fprint(w, fn(str))
}

// New lists the entries most recent first.
func New(entries []history.Entry, width, height int) Model {
	delegate := itemDelegate{
		styles: styles.ListItemStyles(),
	}

	ls := list.New(processEntries(entries), delegate, 0, 0)
	ls.Title = "History"
	ls.Styles = styles.ListStyles()
	ls.SetShowStatusBar(false)
	ls.DisableQuitKeybindings()

	ls.FilterInput.PromptStyle = styles.Accent
	ls.FilterInput.Cursor.Style = styles.Accent
	ls.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "ask again"),
			),
		}
	}

	m := Model{
		list:     ls,
		viewport: viewport.New(0, 0),
	}

	m.SetSize(width, height)
	m.setPreview()

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	w, h := m.getAvailableSizes()
	lsWidth := max(30, w/2)

	m.list.SetSize(lsWidth, h)

	m.viewport.Width = max(1, w-lsWidth-styles.ViewPadding.GetHorizontalFrameSize()-2)
	m.viewport.Height = max(1, h)
	m.setPreview()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, keymap.Submit):
			if selected, ok := m.list.SelectedItem().(item); ok {
				return m, utils.Dispatch(SelectedMsg{
					Question: selected.entry.Question,
				})
			}

		case key.Matches(msg, keymap.Quit), key.Matches(msg, keymap.Cancel):
			return m, utils.Dispatch(ClosedMsg{})

		case key.Matches(msg, changeFocus):
			if m.focused == focusedList {
				m.focused = focusedViewport
			} else {
				m.focused = focusedList
			}
			return m, nil
		}
	}

	switch m.focused {
	case focusedList:
		ls, cmd := m.list.Update(msg)
		m.list = ls
		cmds = append(cmds, cmd)
		m.setPreview()
	case focusedViewport:
		vp, cmd := m.viewport.Update(msg)
		m.viewport = vp
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return styles.ViewPadding.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				styles.Primary.Render("No questions asked yet."),
				"\n",
				styles.Subtext0.Render("Press 'q' to go back."),
			),
		)
	}

	listBorder := styles.ActiveBorder
	vpBorder := styles.InactiveBorder

	if m.focused != focusedList {
		listBorder = styles.InactiveBorder
		vpBorder = styles.ActiveBorder
	}

	return styles.ViewPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Left,
		listBorder.Width(m.list.Width()).Render(m.list.View()),
		" ",
		vpBorder.Width(m.viewport.Width).Render(m.viewport.View()),
	))
}

func (m *Model) setPreview() {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		m.viewport.SetContent("")
		return
	}

	m.viewport.SetContent(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Subtext0.Render(selected.Description()),
		"",
		styles.Text.Render(styles.Wrap(max(10, m.viewport.Width-1), selected.entry.Question)),
	))
	m.viewport.GotoTop()
}

func processEntries(entries []history.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = item{entry: entry}
	}
	return items
}

func (m *Model) getAvailableSizes() (int, int) {
	h, v := styles.ViewPadding.GetFrameSize()

	availableHeight := m.height - v - styles.ActiveBorder.GetBorderBottomSize()*2
	availableWidth := m.width - h

	return availableWidth, availableHeight
}
