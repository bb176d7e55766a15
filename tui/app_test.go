package tui

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/sift/internal/config"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/history"
	"github.com/ionut-t/sift/pkg/result"
	"github.com/ionut-t/sift/pkg/workspace"
	"github.com/ionut-t/sift/tui/content"
	historyView "github.com/ionut-t/sift/tui/history"
	"github.com/ionut-t/sift/tui/upload"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu        sync.Mutex
	responses map[string]*api.QueryResponse
	errs      map[string]error
	upload    *api.UploadResult
	uploadErr error
	asked     []string
}

func (f *fakeBackend) Upload(_ context.Context, paths []string) (*api.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	return f.upload, nil
}

func (f *fakeBackend) Generate(_ context.Context, question string) (*api.QueryResponse, error) {
	f.mu.Lock()
	f.asked = append(f.asked, question)
	f.mu.Unlock()

	if err := f.errs[question]; err != nil {
		return nil, err
	}

	res := *f.responses[question]
	res.Question = question

	return &res, nil
}

func (f *fakeBackend) BaseURL() string {
	return "http://localhost:8000"
}

func rows(t *testing.T, raw string) result.Rows {
	t.Helper()

	parsed, err := result.ParseJSON([]byte(raw))
	require.NoError(t, err)

	return parsed
}

func newTestModel(t *testing.T, backend *fakeBackend, persist bool) model {
	t.Helper()

	return newModelAt(t, filepath.Join(t.TempDir(), "config.toml"), backend, persist)
}

func newModelAt(t *testing.T, path string, backend *fakeBackend, persist bool) model {
	t.Helper()

	if persist {
		require.NoError(t, os.WriteFile(path, []byte("[history]\npersist = true\n"), 0o644))
	}

	cfg, err := config.NewFromFile(path)
	require.NoError(t, err)

	m := New(cfg, backend, zerolog.Nop())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 48})

	return updated.(model)
}

func newBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{
		responses: map[string]*api.QueryResponse{
			"sales by region": {
				SQL:    "SELECT region, SUM(sales) AS sales FROM sales GROUP BY region",
				Result: rows(t, `[{"region":"West","sales":200},{"region":"East","sales":150}]`),
			},
			"monthly totals": {
				SQL:    "SELECT month, SUM(total) AS total FROM sales GROUP BY month",
				Result: rows(t, `[{"month":"2024-01","total":120},{"month":"2024-02","total":95}]`),
			},
			"failing": {
				Error:   "could not parse the model output",
				Details: "unexpected token",
			},
		},
		errs: map[string]error{},
	}
}

// ask types the question and presses enter, returning the completion message.
func ask(t *testing.T, m model, question string) (model, tea.Msg) {
	t.Helper()

	m.input.SetValue(question)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	return updated.(model), cmd()
}

func apply(m model, msg tea.Msg) model {
	updated, _ := m.Update(msg)
	return updated.(model)
}

func TestAsk_Success(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, msg := ask(t, m, "sales by region")
	assert.True(t, m.state.Loading)

	m = apply(m, msg)

	assert.False(t, m.state.Loading)
	assert.Empty(t, m.state.Error)
	require.NotNil(t, m.state.Response)
	assert.Equal(t, result.ChartBar, m.state.Shape.Chart)
	assert.Equal(t, "sales", m.state.Shape.Numeric)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"sales by region"}, questions(m.state.History.Entries()))
	assert.Contains(t, m.View(), "West")
}

func TestAsk_LineChartForDates(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, msg := ask(t, m, "monthly totals")
	m = apply(m, msg)

	assert.Equal(t, result.ChartLine, m.state.Shape.Chart)
	assert.Equal(t, "month", m.state.Shape.Category)
}

func TestAsk_BlankQuestionSendsNothing(t *testing.T) {
	backend := newBackend(t)
	m := newTestModel(t, backend, false)

	m.input.SetValue("   ")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, updated.(model).state.Loading)
	assert.Empty(t, backend.asked)
}

func TestAsk_FailureKeepsPreviousState(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, msg := ask(t, m, "sales by region")
	m = apply(m, msg)
	previous := m.state.Response

	m, msg = ask(t, m, "failing")
	m = apply(m, msg)

	assert.NotEmpty(t, m.state.Error)
	assert.Contains(t, m.state.Error, "could not parse the model output")
	assert.Same(t, previous, m.state.Response)
	assert.Equal(t, "failing", m.input.Value())
	assert.Equal(t, []string{"sales by region"}, questions(m.state.History.Entries()))
	assert.Contains(t, m.View(), "could not parse the model output")
}

func TestAsk_TransportFailure(t *testing.T) {
	backend := newBackend(t)
	backend.errs["sales by region"] = api.ErrTransport
	m := newTestModel(t, backend, false)

	m, msg := ask(t, m, "sales by region")
	m = apply(m, msg)

	assert.Equal(t, api.Message(api.ErrTransport), m.state.Error)
	assert.Nil(t, m.state.Response)
	assert.Equal(t, 0, m.state.History.Len())
}

func TestAsk_StaleCompletionIsDropped(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, first := ask(t, m, "sales by region")
	m, second := ask(t, m, "monthly totals")

	m = apply(m, second)
	require.NotNil(t, m.state.Response)
	assert.Equal(t, "monthly totals", m.state.Response.Question)

	m = apply(m, first)
	assert.Equal(t, "monthly totals", m.state.Response.Question)
	assert.Equal(t, []string{"monthly totals"}, questions(m.state.History.Entries()))
}

func TestHistorySelectionResubmits(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, msg := ask(t, m, "sales by region")
	m = apply(m, msg)
	m, msg = ask(t, m, "monthly totals")
	m = apply(m, msg)

	updated, cmd := m.Update(historyView.SelectedMsg{Question: "sales by region"})
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.Equal(t, viewMain, m.view)

	m = apply(m, cmd())
	assert.Equal(t, []string{"sales by region", "monthly totals"}, questions(m.state.History.Entries()))
}

func TestUpload(t *testing.T) {
	backend := newBackend(t)
	backend.upload = &api.UploadResult{Message: "Files uploaded", Schemas: []string{"sales(region, sales)"}}
	m := newTestModel(t, backend, false)

	updated, cmd := m.Update(upload.SubmittedMsg{Paths: []string{"sales.csv"}})
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.state.Uploading)

	m = apply(m, cmd())
	assert.False(t, m.state.Uploading)
	assert.Equal(t, []string{"sales(region, sales)"}, m.state.Schemas)
	assert.Contains(t, m.notification, "Files uploaded")
}

func TestUpload_FailureKeepsSchemas(t *testing.T) {
	backend := newBackend(t)
	backend.upload = &api.UploadResult{Schemas: []string{"sales(region, sales)"}}
	m := newTestModel(t, backend, false)

	updated, cmd := m.Update(upload.SubmittedMsg{Paths: []string{"sales.csv"}})
	m = apply(updated.(model), cmd())

	backend.uploadErr = &api.StatusError{StatusCode: 400, Detail: "Unsupported file type"}
	updated, cmd = m.Update(upload.SubmittedMsg{Paths: []string{"notes.txt"}})
	m = apply(updated.(model), cmd())

	assert.Equal(t, "Unsupported file type", m.state.Error)
	assert.Equal(t, []string{"sales(region, sales)"}, m.state.Schemas)
}

func TestUpload_StaleCompletionIsDropped(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	first := m.state.BeginUpload()
	second := m.state.BeginUpload()

	m = apply(m, uploadDoneMsg{seq: second, result: &api.UploadResult{Schemas: []string{"new(a)"}}})
	m = apply(m, uploadDoneMsg{seq: first, result: &api.UploadResult{Schemas: []string{"old(a)"}}})

	assert.Equal(t, []string{"new(a)"}, m.state.Schemas)
}

func TestCompletion_ReportsElapsed(t *testing.T) {
	backend := newBackend(t)
	m := newTestModel(t, backend, false)

	seq := m.state.BeginUpload()
	m = apply(m, uploadDoneMsg{
		seq:     seq,
		paths:   []string{"sales.csv"},
		result:  &api.UploadResult{Message: "Files uploaded", Schemas: []string{"sales(region, sales)"}},
		elapsed: 1500 * time.Millisecond,
	})
	assert.Contains(t, m.notification, "Files uploaded in 1.500s")

	res, err := backend.Generate(context.Background(), "sales by region")
	require.NoError(t, err)

	seq = m.state.BeginGenerate()
	m = apply(m, generateDoneMsg{seq: seq, question: "sales by region", response: res, elapsed: 42 * time.Millisecond})
	assert.Contains(t, m.notification, "Answered in 42ms")
}

func TestKeys_TabsAndSidebar(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m = apply(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	assert.True(t, m.state.SidebarOpen)
	assert.Contains(t, m.View(), "Recent questions")

	m = apply(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusedResults, m.focused)

	m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	assert.Equal(t, workspace.TabPython, m.state.ActiveTab)

	m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
	m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
	assert.Equal(t, workspace.TabPySpark, m.state.ActiveTab)

	m, msg := ask(t, apply(m, tea.KeyMsg{Type: tea.KeyTab}), "sales by region")
	m = apply(m, msg)
	assert.False(t, m.state.SidebarOpen)
}

func TestHelp_ListsResultBindings(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)
	m = apply(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.renderHelp()
	assert.Contains(t, out, content.SwitchSection.Help().Desc)
	assert.Contains(t, out, yankRow.Help().Desc)
}

func TestKeys_TypingDoesNotTriggerShortcuts(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = apply(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})

	assert.Equal(t, "q]", m.input.Value())
	assert.Equal(t, "q]", m.state.Input)
	assert.Equal(t, workspace.TabSQL, m.state.ActiveTab)
}

func TestKeys_ThemeToggle(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)
	assert.Equal(t, workspace.ThemeDark, m.state.Theme)

	m = apply(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, workspace.ThemeLight, m.state.Theme)
	assert.Equal(t, "light", m.config.Theme())
}

func TestEscClearsError(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)
	m.state.Error = "boom"

	m = apply(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.state.Error)
}

func TestExport_NoResult(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NotNil(t, cmd)

	m = apply(m, cmd())
	assert.Contains(t, m.notification, "no result to export")
}

func TestExport_WritesFile(t *testing.T) {
	m := newTestModel(t, newBackend(t), false)

	m, msg := ask(t, m, "sales by region")
	m = apply(m, msg)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	done, ok := cmd().(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, "sales-by-region.csv", filepath.Base(done.path))
}

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	m := newModelAt(t, path, newBackend(t), true)
	m, msg := ask(t, m, "sales by region")
	m = apply(m, msg)
	m, msg = ask(t, m, "monthly totals")
	apply(m, msg)

	reloaded := newModelAt(t, path, newBackend(t), false)
	assert.Equal(t, []string{"monthly totals", "sales by region"}, questions(reloaded.state.History.Entries()))
}

func TestHistoryNotPersistedByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	m := newModelAt(t, path, newBackend(t), false)
	m, msg := ask(t, m, "sales by region")
	apply(m, msg)

	reloaded := newModelAt(t, path, newBackend(t), false)
	assert.Equal(t, 0, reloaded.state.History.Len())
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "total-sales-by-region", exportName("Total sales, by region?"))
	assert.Equal(t, "result", exportName("???"))
	assert.LessOrEqual(t, len(exportName("a very long question that keeps going well beyond the limit")), exportNameLength)
}

func questions(entries []history.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Question
	}
	return out
}
