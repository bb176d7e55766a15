package upload

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ionut-t/sift/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(file, []byte("region,sales\n"), 0o644))

	assert.NoError(t, ValidatePaths(file))
	assert.ErrorIs(t, ValidatePaths(" , \n"), api.ErrNoFiles)
	assert.ErrorContains(t, ValidatePaths(filepath.Join(dir, "missing.csv")), "file not found")
	assert.ErrorContains(t, ValidatePaths(dir), "is a directory")
	assert.ErrorContains(t, ValidatePaths(file+", "+filepath.Join(dir, "missing.csv")), "missing.csv")
}

func TestEscCancels(t *testing.T) {
	m := New(80, 24)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelledMsg{}, cmd())
}

func TestCompletedFormSubmitsOnce(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(file, []byte("region,sales\n"), 0o644))

	m := New(80, 24)
	*m.paths = file
	m.form.State = huh.StateCompleted

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	assert.Equal(t, SubmittedMsg{Paths: []string{file}}, cmd())

	_, cmd = updated.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
}

func TestView(t *testing.T) {
	m := New(80, 24)
	m.Init()

	assert.Contains(t, m.View(), "Upload files")
}
