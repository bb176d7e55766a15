package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ionut-t/sift/internal/constants"
	"github.com/rs/zerolog"
)

// New returns a JSON logger appending to sift.log in the storage directory. The
// terminal belongs to the UI, so nothing is written to stdout or stderr.
func New(storage, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(storage, 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	f, err := os.OpenFile(filepath.Join(storage, constants.LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	return NewWithWriter(f, level), f, nil
}

// NewWithWriter builds the logger on an arbitrary writer.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("app", constants.AppName).
		Logger()
}

// ParseLevel maps a configured level to zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}

	return parsed
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
