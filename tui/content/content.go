package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/chart"
	"github.com/ionut-t/sift/pkg/result"
	"github.com/ionut-t/sift/pkg/utils"
	"github.com/ionut-t/sift/pkg/workspace"
	"github.com/ionut-t/sift/ui/markdown"
	"github.com/ionut-t/sift/ui/styles"
)

const (
	NoData        = "No data"
	noChart       = "No chart for this result"
	noResponse    = "Ask a question to generate SQL, Python and PySpark."
	maxColumnSize = 32
	minColumnSize = 4
)

type section int

const (
	sectionCode section = iota
	sectionTable
)

// SwitchSection moves focus between the code panel and the result table.
var SwitchSection = key.NewBinding(
	key.WithKeys("ctrl+w"),
	key.WithHelp("ctrl+w", "switch between code and table (results focused)"),
)

// Model renders one response: the code tabs with the explanation, the chart and the
// result table.
type Model struct {
	width, height int
	chartHeight   int

	response *api.QueryResponse
	shape    result.Shape
	tab      workspace.Tab
	focused  section
	active   bool

	markdown markdown.Model
	viewport viewport.Model
	table    table.Model
}

func New(width, height, chartHeight int, dark bool) Model {
	t := table.New(
		table.WithFocused(false),
		table.WithStyles(styles.TableStyles()),
	)

	m := Model{
		chartHeight: chartHeight,
		tab:         workspace.TabSQL,
		shape:       result.Infer(nil),
		markdown:    markdown.New(dark, 0),
		viewport:    viewport.New(0, 0),
		table:       t,
	}

	m.SetSize(width, height)

	return m
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	top, bottom := m.heights()
	left, _ := m.widths()

	m.viewport.Width = max(1, left-2)
	m.viewport.Height = max(1, top-3)

	m.table.SetWidth(max(1, width-2))
	m.table.SetHeight(max(2, bottom-2))

	m.markdown.SetWidth(max(20, left-4))
	m.renderCode()
}

// SetResponse replaces the displayed response. The shape must be the one inferred
// for the response rows.
func (m *Model) SetResponse(res *api.QueryResponse, shape result.Shape) {
	m.response = res
	m.shape = shape

	m.setTable()
	m.renderCode()
	m.viewport.GotoTop()
}

func (m *Model) SetTab(tab workspace.Tab) {
	m.tab = tab
	m.renderCode()
	m.viewport.GotoTop()
}

func (m *Model) SetTheme(dark bool) {
	m.markdown.SetTheme(dark)
	m.table.SetStyles(styles.TableStyles())
	m.renderCode()
}

// SetActive marks the results area as focused. The table only takes key presses while
// the area is active and the table section is selected.
func (m *Model) SetActive(active bool) {
	m.active = active

	if active && m.focused == sectionTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// SelectedRow returns the stringified cells of the highlighted table row.
func (m Model) SelectedRow() []string {
	if m.shape.Empty || len(m.table.Rows()) == 0 {
		return nil
	}

	return m.table.SelectedRow()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, SwitchSection) {
		if m.focused == sectionCode {
			m.focused = sectionTable
		} else {
			m.focused = sectionCode
		}

		m.SetActive(m.active)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focused {
	case sectionCode:
		m.viewport, cmd = m.viewport.Update(msg)
	case sectionTable:
		m.table, cmd = m.table.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	top, bottom := m.heights()
	left, right := m.widths()

	codeBorder, tableBorder := styles.InactiveBorder, styles.InactiveBorder
	if m.active {
		if m.focused == sectionCode {
			codeBorder = styles.ActiveBorder
		} else {
			tableBorder = styles.ActiveBorder
		}
	}

	code := codeBorder.
		Width(max(1, left-2)).
		Height(max(1, top-2)).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.viewport.View()))

	graph := styles.InactiveBorder.
		Width(max(1, right-2)).
		Height(max(1, top-2)).
		Render(m.renderChart(right-2, top-2))

	tbl := tableBorder.
		Width(max(1, m.width-2)).
		Height(max(1, bottom-2)).
		Render(m.renderTable(m.width-2, bottom-2))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, code, graph),
		tbl,
	)
}

func (m Model) heights() (int, int) {
	top := max(6, m.height/2)
	return top, max(4, m.height-top)
}

func (m Model) widths() (int, int) {
	left := max(10, m.width/2)
	return left, max(10, m.width-left)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(workspace.Tabs))

	for _, tab := range workspace.Tabs {
		if tab == m.tab {
			tabs = append(tabs, styles.ActiveTab.Render(string(tab)))
		} else {
			tabs = append(tabs, styles.InactiveTab.Render(string(tab)))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderCode() {
	if m.response == nil {
		m.viewport.SetContent(styles.Placeholder.Render(noResponse))
		return
	}

	var sb strings.Builder

	code := m.response.Code(string(m.tab))
	if strings.TrimSpace(code) == "" {
		sb.WriteString(styles.Placeholder.Render(fmt.Sprintf("No %s code was generated.", m.tab)))
	} else if out, err := m.markdown.RenderCode(language(m.tab), code); err != nil {
		sb.WriteString(code)
	} else {
		sb.WriteString(out)
	}

	width := max(10, m.viewport.Width-1)

	if m.response.Explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.PanelTitle.Render("Explanation"))
		sb.WriteString("\n")
		sb.WriteString(styles.Text.Render(styles.Wrap(width, m.response.Explanation)))
	}

	if m.response.Warning != "" {
		sb.WriteString("\n\n")
		sb.WriteString(styles.Warning.Render(styles.Wrap(width, "⚠ "+m.response.Warning)))
	}

	m.viewport.SetContent(sb.String())
}

func (m Model) renderChart(width, height int) string {
	if m.shape.Empty {
		return placeholder(width, height, NoData)
	}

	if !m.shape.HasChart() {
		return placeholder(width, height, noChart)
	}

	opts := chart.DefaultOptions(width-1, max(2, min(m.chartHeight, height-3)))
	opts.BarStyle = styles.Accent
	opts.LineStyle = styles.Primary
	opts.LabelStyle = styles.Subtext0

	return chart.Render(m.shape, m.response.Result, opts)
}

func (m Model) renderTable(width, height int) string {
	if m.shape.Empty {
		return placeholder(width, height, NoData)
	}

	return m.table.View()
}

func (m *Model) setTable() {
	m.table.SetRows(nil)

	if m.shape.Empty || m.response == nil {
		m.table.SetColumns(nil)
		return
	}

	rows := m.response.Result.Table(m.shape.Columns)
	columns := make([]table.Column, len(m.shape.Columns))

	for i, name := range m.shape.Columns {
		width := lipgloss.Width(name)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}

		columns[i] = table.Column{
			Title: utils.Truncate(name, maxColumnSize),
			Width: min(max(width, minColumnSize), maxColumnSize),
		}
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	m.table.SetColumns(columns)
	m.table.SetRows(tableRows)
	m.table.SetCursor(0)
}

func placeholder(width, height int, text string) string {
	return lipgloss.NewStyle().
		Width(max(1, width)).
		Height(max(1, height)).
		AlignHorizontal(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(styles.Placeholder.Render(text))
}

func language(tab workspace.Tab) string {
	if tab == workspace.TabSQL {
		return "sql"
	}

	return "python"
}
