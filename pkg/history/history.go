package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLimit    = 20
	historyFileName = "history"
	timeLayout      = `"2006-01-02T15:04:05Z07:00"`
	blockDelimiter  = "---"
)

type Entry struct {
	Question string
	Time     time.Time
}

// History is a most-recent-first list of questions. Pushing an existing question moves
// it to the front and the list never grows past its limit.
type History struct {
	entries []Entry
	limit   int
}

func New(limit int) History {
	if limit <= 0 {
		limit = DefaultLimit
	}

	return History{limit: limit}
}

// Push adds the question at position 0 and returns the updated entries.
func (h *History) Push(question string) []Entry {
	return h.push(Entry{Question: question, Time: time.Now()})
}

func (h *History) push(entry Entry) []Entry {
	entry.Question = strings.TrimSpace(entry.Question)
	if entry.Question == "" {
		return h.Entries()
	}

	if h.limit <= 0 {
		h.limit = DefaultLimit
	}

	// always build a new slice so copies of the model never share a backing array
	next := make([]Entry, 0, min(len(h.entries)+1, h.limit))
	next = append(next, entry)

	for _, e := range h.entries {
		if len(next) == h.limit {
			break
		}
		if e.Question == entry.Question {
			continue
		}
		next = append(next, e)
	}

	h.entries = next

	return h.Entries()
}

func (h History) Entries() []Entry {
	return slices.Clone(h.entries)
}

func (h History) Len() int {
	return len(h.entries)
}

func (h History) Limit() int {
	return h.limit
}

// Load reads a persisted history from the storage directory. A missing file yields an
// empty history.
func Load(storage string, limit int) (History, error) {
	h := New(limit)

	path := filepath.Join(storage, historyFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return h, err
	}

	entries, err := readEntries(path)
	if err != nil {
		return h, err
	}

	// the file is newest first; entries saved within the same second keep that order
	slices.Reverse(entries)
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Time.Compare(b.Time)
	})

	for _, e := range entries {
		h.push(e)
	}

	return h, nil
}

// Save writes the history to the storage directory, newest first.
func (h History) Save(storage string) error {
	if err := os.MkdirAll(storage, 0o755); err != nil {
		return err
	}

	var data []byte
	for _, e := range h.entries {
		data = append(data, []byte(blockDelimiter+"\n")...)
		data = append(data, []byte("time: "+e.Time.Format(timeLayout)+"\n")...)
		data = append(data, []byte("question: "+strconv.Quote(e.Question)+"\n")...)
		data = append(data, []byte(blockDelimiter+"\n")...)
	}

	path := filepath.Join(storage, historyFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	return nil
}

func readEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var (
		entries []Entry
		entry   Entry
	)

	flush := func() {
		if !entry.Time.IsZero() && entry.Question != "" {
			entries = append(entries, entry)
		}
		entry = Entry{}
	}

	for line := range bytes.SplitSeq(data, []byte("\n")) {
		line = bytes.TrimSpace(line)

		switch {
		case string(line) == blockDelimiter:
			flush()
		case bytes.HasPrefix(line, []byte("time:")):
			t := bytes.TrimSpace(bytes.TrimPrefix(line, []byte("time:")))
			if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
				entry.Time = parsed
			}
		case bytes.HasPrefix(line, []byte("question:")):
			entry.Question = parseQuestion(bytes.TrimSpace(bytes.TrimPrefix(line, []byte("question:"))))
		}
	}
	flush()

	return entries, nil
}

// parseQuestion reads a quoted question. Unquoted values are taken as written.
func parseQuestion(raw []byte) string {
	if q, err := strconv.Unquote(string(raw)); err == nil {
		return strings.TrimSpace(q)
	}

	return string(raw)
}
