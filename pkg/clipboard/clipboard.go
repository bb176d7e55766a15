package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrNothingToCopy = errors.New("nothing to copy")

func Write(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNothingToCopy
	}

	return clipboard.WriteAll(text)
}

// Row formats cells as a tab separated line so it pastes into spreadsheets as one row.
func Row(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.NewReplacer("\t", " ", "\n", " ").Replace(c)
	}

	return strings.Join(escaped, "\t")
}
