package workspace

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/history"
	"github.com/ionut-t/sift/pkg/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(t *testing.T, rows string) *api.QueryResponse {
	t.Helper()

	parsed, err := result.ParseJSON([]byte(rows))
	require.NoError(t, err)

	return &api.QueryResponse{SQL: "SELECT 1", Python: "py", PySpark: "spark", Result: parsed}
}

func historyQuestions(s State) []string {
	var out []string
	for _, e := range s.History.Entries() {
		out = append(out, e.Question)
	}
	return out
}

func TestFinishGenerate_Success(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)
	s.Input = "total by month"
	s.SidebarOpen = true

	seq := s.BeginGenerate()
	assert.True(t, s.Loading)

	res := response(t, `[{"month": "2024-01", "total": 120}, {"month": "2024-02", "total": 95}]`)
	applied := s.FinishGenerate(seq, "total by month", res, nil)

	assert.True(t, applied)
	assert.False(t, s.Loading)
	assert.Same(t, res, s.Response)
	assert.Equal(t, result.ChartLine, s.Shape.Chart)
	assert.Equal(t, "month", s.Shape.Category)
	assert.Equal(t, "total", s.Shape.Numeric)
	assert.Equal(t, []string{"total by month"}, historyQuestions(s))
	assert.Empty(t, s.Input)
	assert.False(t, s.SidebarOpen)
	assert.Empty(t, s.Error)
}

func TestFinishGenerate_FailureKeepsPreviousState(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	seq := s.BeginGenerate()
	first := response(t, `[{"region": "West", "sales": 200}]`)
	s.FinishGenerate(seq, "sales by region", first, nil)

	s.Input = "broken question"
	s.SidebarOpen = true

	seq = s.BeginGenerate()
	applied := s.FinishGenerate(seq, "broken question", nil, api.ErrTransport)

	assert.True(t, applied)
	assert.Same(t, first, s.Response)
	assert.Equal(t, result.ChartBar, s.Shape.Chart)
	assert.Equal(t, []string{"sales by region"}, historyQuestions(s))
	assert.Equal(t, "broken question", s.Input)
	assert.True(t, s.SidebarOpen)
	assert.NotEmpty(t, s.Error)
	assert.False(t, s.Loading)
}

func TestFinishGenerate_PayloadErrorIsFailure(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)
	s.Input = "q"

	seq := s.BeginGenerate()
	applied := s.FinishGenerate(seq, "q", &api.QueryResponse{Error: "could not parse model output"}, nil)

	assert.True(t, applied)
	assert.Nil(t, s.Response)
	assert.Equal(t, "could not parse model output", s.Error)
	assert.Equal(t, 0, s.History.Len())
	assert.Equal(t, "q", s.Input)
}

func TestFinishGenerate_NilResponse(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)
	seq := s.BeginGenerate()
	s.FinishGenerate(seq, "q", nil, nil)

	assert.NotEmpty(t, s.Error)
	assert.Nil(t, s.Response)
}

func TestFinishGenerate_StaleResponseIsDropped(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	slow := s.BeginGenerate()
	fast := s.BeginGenerate()

	fastRes := response(t, `[{"region": "West", "sales": 200}]`)
	assert.True(t, s.FinishGenerate(fast, "fast", fastRes, nil))

	slowRes := response(t, `[{"month": "2024-01", "total": 1}]`)
	assert.False(t, s.FinishGenerate(slow, "slow", slowRes, nil))

	assert.Same(t, fastRes, s.Response)
	assert.Equal(t, []string{"fast"}, historyQuestions(s))
}

func TestFinishGenerate_StaleKeepsLoading(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	first := s.BeginGenerate()
	s.BeginGenerate()

	s.FinishGenerate(first, "first", nil, errors.New("boom"))

	assert.True(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestHistoryThroughGenerate(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	submit := func(q string) {
		seq := s.BeginGenerate()
		s.FinishGenerate(seq, q, response(t, `[]`), nil)
	}

	submit("a")
	submit("b")
	submit("a")
	assert.Equal(t, []string{"a", "b"}, historyQuestions(s))

	for i := range 21 {
		submit(fmt.Sprintf("q%d", i))
	}

	assert.Equal(t, 20, s.History.Len())
	assert.Equal(t, "q20", historyQuestions(s)[0])
	assert.Equal(t, "q1", historyQuestions(s)[19])
}

func TestFinishUpload(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	seq := s.BeginUpload()
	assert.True(t, s.Uploading)

	assert.True(t, s.FinishUpload(seq, &api.UploadResult{Schemas: []string{"city(name)"}}, nil))
	assert.False(t, s.Uploading)
	assert.Equal(t, []string{"city(name)"}, s.Schemas)

	seq = s.BeginUpload()
	s.FinishUpload(seq, nil, &api.StatusError{StatusCode: 400, Detail: "unsupported file"})
	assert.Equal(t, []string{"city(name)"}, s.Schemas)
	assert.Equal(t, "unsupported file", s.Error)

	seq = s.BeginUpload()
	assert.Empty(t, s.Error)
	s.FinishUpload(seq, &api.UploadResult{}, nil)
	assert.Equal(t, []string{}, s.Schemas)
}

func TestFinishUpload_Stale(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	old := s.BeginUpload()
	latest := s.BeginUpload()

	assert.True(t, s.FinishUpload(latest, &api.UploadResult{Schemas: []string{"new"}}, nil))
	assert.False(t, s.FinishUpload(old, &api.UploadResult{Schemas: []string{"old"}}, nil))
	assert.Equal(t, []string{"new"}, s.Schemas)
}

func TestUploadAndGenerateSequencesAreIndependent(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)

	gen := s.BeginGenerate()
	up := s.BeginUpload()

	assert.True(t, s.FinishUpload(up, &api.UploadResult{Schemas: []string{"t"}}, nil))
	assert.True(t, s.FinishGenerate(gen, "q", response(t, `[]`), nil))
}

func TestTabs(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)
	assert.Equal(t, TabSQL, s.ActiveTab)
	assert.Empty(t, s.ActiveCode())

	s.NextTab()
	assert.Equal(t, TabPython, s.ActiveTab)
	s.NextTab()
	assert.Equal(t, TabPySpark, s.ActiveTab)
	s.NextTab()
	assert.Equal(t, TabSQL, s.ActiveTab)
	s.PreviousTab()
	assert.Equal(t, TabPySpark, s.ActiveTab)

	seq := s.BeginGenerate()
	s.FinishGenerate(seq, "q", response(t, `[]`), nil)
	assert.Equal(t, "spark", s.ActiveCode())

	assert.Equal(t, TabPython, ParseTab("PYTHON"))
	assert.Equal(t, TabSQL, ParseTab("unknown"))
}

func TestThemeAndSidebar(t *testing.T) {
	t.Parallel()

	s := New(history.DefaultLimit)
	assert.Equal(t, ThemeDark, s.Theme)

	s.ToggleTheme()
	assert.Equal(t, ThemeLight, s.Theme)
	assert.Equal(t, "light", s.Theme.String())
	s.ToggleTheme()
	assert.Equal(t, "dark", s.Theme.String())

	assert.Equal(t, ThemeLight, ParseTheme("Light"))
	assert.Equal(t, ThemeDark, ParseTheme(""))

	s.ToggleSidebar()
	assert.True(t, s.SidebarOpen)
	s.ToggleSidebar()
	assert.False(t, s.SidebarOpen)
}
