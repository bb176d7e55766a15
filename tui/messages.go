package tui

import (
	"time"

	"github.com/ionut-t/sift/pkg/api"
)

// Request completion messages carry the sequence number issued when the request
// started so that superseded completions can be dropped, and how long the backend
// took to answer.
type uploadDoneMsg struct {
	seq     uint64
	paths   []string
	result  *api.UploadResult
	err     error
	elapsed time.Duration
}

type generateDoneMsg struct {
	seq      uint64
	question string
	response *api.QueryResponse
	err      error
	elapsed  time.Duration
}
