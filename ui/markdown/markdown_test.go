package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFence(t *testing.T) {
	assert.Equal(t, "```sql\nSELECT 1\n```", Fence("sql", "SELECT 1\n"))
	assert.Equal(t, "````md\n```x```\n````", Fence("md", "```x```"))
}

func TestRenderCode(t *testing.T) {
	m := New(true, 80)

	out, err := m.RenderCode("sql", "SELECT region FROM sales")
	require.NoError(t, err)
	assert.Contains(t, out, "region")
}

func TestSetTheme(t *testing.T) {
	m := New(true, 40)
	m.SetTheme(false)

	assert.False(t, m.dark)
	assert.Equal(t, 40, m.width)

	out, err := m.Render("**total**")
	require.NoError(t, err)
	assert.Contains(t, out, "total")
}
