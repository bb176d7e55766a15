package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type ClearMsg struct{}

// ParsePaths splits raw input into file paths. Entries are separated by comma, tab or
// newline so that paths containing spaces survive. A leading ~ expands to the home
// directory and glob patterns expand to their matches. The result is deduplicated
// and keeps input order.
func ParsePaths(input string) []string {
	paths := []string{}
	seen := make(map[string]bool)

	add := func(p string) {
		if !seen[p] {
			paths = append(paths, p)
			seen[p] = true
		}
	}

	for _, entry := range strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '\t' || r == '\n'
	}) {
		entry = expandHome(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}

		if strings.ContainsAny(entry, "*?[") {
			if matches, err := filepath.Glob(entry); err == nil && len(matches) > 0 {
				for _, m := range matches {
					add(m)
				}
				continue
			}
		}

		add(entry)
	}

	return paths
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ClearAfter returns a command that triggers a notification clear after a specified duration.
func ClearAfter(duration time.Duration) tea.Cmd {
	return tea.Tick(
		duration,
		func(t time.Time) tea.Msg {
			return ClearMsg{}
		},
	)
}

func Dispatch(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func Duration(duration time.Duration) string {
	switch {
	case duration < time.Millisecond:
		return fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		return fmt.Sprintf("%dms", duration.Milliseconds())
	default:
		return fmt.Sprintf("%.3fs", duration.Seconds())
	}
}

// Truncate shortens text to width runes, marking the cut with an ellipsis.
func Truncate(text string, width int) string {
	runes := []rune(text)
	if width <= 0 {
		return ""
	}

	if len(runes) <= width {
		return text
	}

	if width == 1 {
		return "…"
	}

	return string(runes[:width-1]) + "…"
}
