package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		text     string
		expected string
	}{
		{"fits", 30, "total sales by region", "total sales by region"},
		{"breaks on words", 10, "total sales by region", "total\nsales by\nregion"},
		{"keeps line breaks", 40, "first\nsecond", "first\nsecond"},
		{"long word on its own line", 4, "a verylongword b", "a\nverylongword\nb"},
		{"zero width", 0, "unchanged text", "unchanged text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wrap(tt.width, tt.text))
		})
	}
}
