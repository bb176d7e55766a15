package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoFiles           = errors.New("no files selected")
	ErrBlankQuestion     = errors.New("question is empty")
	ErrTransport         = errors.New("backend unreachable")
	ErrMalformedResponse = errors.New("malformed response from backend")
)

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}

	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// AppError is an error reported inside an otherwise successful payload.
type AppError struct {
	Message string
	Details string
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Message + " (" + e.Details + ")"
	}

	return e.Message
}

// Message collapses any submission error into the single line shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return strings.TrimSpace(appErr.Error())
	}

	switch {
	case errors.Is(err, ErrTransport):
		return "Could not reach the backend. Check that it is running and try again."
	case errors.Is(err, ErrMalformedResponse):
		return "The backend returned a response that could not be read."
	}

	return err.Error()
}
