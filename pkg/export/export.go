package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ionut-t/sift/pkg/result"
)

const exportsDir = "exports"

var ErrNoRows = errors.New("there is no result to export")

// AsJSON writes the rows as an indented JSON array into the exports directory of the
// storage and returns the file path. Column order is preserved.
func AsJSON(storage string, rows result.Rows, name string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}

	return write(storage, name, ".json", data)
}

// AsCSV writes the rows as CSV using the first row's columns as the header.
func AsCSV(storage string, rows result.Rows, name string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	columns := rows.Columns()
	if err := w.Write(columns); err != nil {
		return "", err
	}

	if err := w.WriteAll(rows.Table(columns)); err != nil {
		return "", err
	}

	return write(storage, name, ".csv", []byte(sb.String()))
}

func write(storage, name, ext string, data []byte) (string, error) {
	dir := filepath.Join(storage, exportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(strings.TrimSpace(name)), filepath.Ext(name))
	if base == "" || base == "." {
		base = "result"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var names []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}

	path := filepath.Join(dir, generateUniqueName(base, names)+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return path, nil
}

func generateUniqueName(name string, names []string) string {
	taken := make(map[string]bool, len(names))
	for _, n := range names {
		taken[n] = true
	}

	if !taken[name] {
		return name
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", name, i)
		if !taken[candidate] {
			return candidate
		}
	}
}
