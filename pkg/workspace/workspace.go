package workspace

import (
	"slices"
	"strings"

	"github.com/ionut-t/sift/pkg/api"
	"github.com/ionut-t/sift/pkg/history"
	"github.com/ionut-t/sift/pkg/result"
)

type Tab string

const (
	TabSQL     Tab = "sql"
	TabPython  Tab = "python"
	TabPySpark Tab = "pyspark"
)

var Tabs = []Tab{TabSQL, TabPython, TabPySpark}

// ParseTab returns the tab with the given name, defaulting to sql.
func ParseTab(name string) Tab {
	for _, t := range Tabs {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t
		}
	}

	return TabSQL
}

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}

	return "dark"
}

func ParseTheme(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "light") {
		return ThemeLight
	}

	return ThemeDark
}

// State is the view state of the workspace. It is owned by a single controller and
// only changes through its methods.
type State struct {
	Schemas  []string
	Response *api.QueryResponse
	Shape    result.Shape
	History  history.History

	Input       string
	ActiveTab   Tab
	Theme       Theme
	SidebarOpen bool
	Loading     bool
	Uploading   bool
	Error       string

	uploadSeq   uint64
	generateSeq uint64
}

func New(historyLimit int) State {
	return State{
		History:   history.New(historyLimit),
		ActiveTab: TabSQL,
		Shape:     result.Infer(nil),
	}
}

// BeginUpload marks an upload as in flight and returns its sequence number.
func (s *State) BeginUpload() uint64 {
	s.uploadSeq++
	s.Uploading = true
	s.Error = ""

	return s.uploadSeq
}

// FinishUpload applies an upload completion. Completions of superseded uploads are
// dropped and false is returned.
func (s *State) FinishUpload(seq uint64, res *api.UploadResult, err error) bool {
	if seq != s.uploadSeq {
		return false
	}

	s.Uploading = false

	if err != nil {
		s.Error = api.Message(err)
		return true
	}

	if res == nil || res.Schemas == nil {
		s.Schemas = []string{}
	} else {
		s.Schemas = slices.Clone(res.Schemas)
	}

	return true
}

// BeginGenerate marks a question as in flight and returns its sequence number.
func (s *State) BeginGenerate() uint64 {
	s.generateSeq++
	s.Loading = true
	s.Error = ""

	return s.generateSeq
}

// FinishGenerate applies a generation completion for the given question. On success
// the response and its shape are stored, the question moves to the front of history,
// the input is cleared and the sidebar closes. On failure only the error changes.
func (s *State) FinishGenerate(seq uint64, question string, res *api.QueryResponse, err error) bool {
	if seq != s.generateSeq {
		return false
	}

	s.Loading = false

	if err == nil && res == nil {
		err = api.ErrMalformedResponse
	}

	if err == nil && res.Error != "" {
		err = &api.AppError{Message: res.Error, Details: res.Details}
	}

	if err != nil {
		s.Error = api.Message(err)
		return true
	}

	s.Response = res
	s.Shape = result.Infer(res.Result)
	s.History.Push(question)
	s.Input = ""
	s.SidebarOpen = false

	return true
}

func (s *State) NextTab() {
	i := slices.Index(Tabs, s.ActiveTab)
	s.ActiveTab = Tabs[(i+1)%len(Tabs)]
}

func (s *State) PreviousTab() {
	i := slices.Index(Tabs, s.ActiveTab)
	if i <= 0 {
		s.ActiveTab = Tabs[len(Tabs)-1]
		return
	}
	s.ActiveTab = Tabs[i-1]
}

func (s *State) ToggleTheme() {
	if s.Theme == ThemeDark {
		s.Theme = ThemeLight
	} else {
		s.Theme = ThemeDark
	}
}

func (s *State) ToggleSidebar() {
	s.SidebarOpen = !s.SidebarOpen
}

func (s *State) ClearError() {
	s.Error = ""
}

// ActiveCode returns the artifact for the active tab, or an empty string when there is
// no response yet.
func (s State) ActiveCode() string {
	if s.Response == nil {
		return ""
	}

	return s.Response.Code(string(s.ActiveTab))
}
