package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	uploadPath   = "/upload"
	generatePath = "/generate-sql"

	requestIDHeader = "X-Request-ID"
)

// Backend is the NL-to-SQL service the workspace talks to.
type Backend interface {
	Upload(ctx context.Context, paths []string) (*UploadResult, error)
	Generate(ctx context.Context, question string) (*QueryResponse, error)
	BaseURL() string
}

// Client is the HTTP implementation of Backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Upload sends the files as a multipart form with a repeated "files" part.
func (c *Client) Upload(ctx context.Context, paths []string) (*UploadResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	files := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		files = append(files, f)
	}

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		defer closeAll()

		for _, f := range files {
			part, err := form.CreateFormFile("files", filepath.Base(f.Name()))
			if err != nil {
				_ = pw.CloseWithError(err)
				return
			}

			if _, err := io.Copy(part, f); err != nil {
				_ = pw.CloseWithError(err)
				return
			}
		}

		_ = pw.CloseWithError(form.Close())
	}()

	body, err := c.post(ctx, uploadPath, form.FormDataContentType(), pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		return nil, err
	}

	return parseUploadResult(body)
}

// Generate submits a question and returns the generated artifacts.
func (c *Client) Generate(ctx context.Context, question string) (*QueryResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrBlankQuestion
	}

	var buf strings.Builder
	form := multipart.NewWriter(&buf)

	if err := form.WriteField("question", question); err != nil {
		return nil, err
	}

	if err := form.Close(); err != nil {
		return nil, err
	}

	body, err := c.post(ctx, generatePath, form.FormDataContentType(), strings.NewReader(buf.String()))
	if err != nil {
		return nil, err
	}

	res, err := parseQueryResponse(body)
	if err != nil {
		return nil, err
	}

	if res.Error != "" {
		return nil, &AppError{Message: res.Error, Details: res.Details}
	}

	res.Question = question

	return res, nil
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	logger := c.logger.With().
		Str("request_id", requestID).
		Str("path", path).
		Logger()

	start := time.Now()
	logger.Debug().Msg("request started")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Dur("duration", time.Since(start)).Msg("request failed")

		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	//nolint:errcheck
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read response body")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	logger.Info().
		Int("status", resp.StatusCode).
		Int("size", len(data)).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(data),
		}
	}

	return data, nil
}

// extractDetail pulls a human readable message out of an error body, e.g. FastAPI's
// {"detail": "..."} or {"detail": [{"msg": "..."}]}.
func extractDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	doc := gjson.ParseBytes(body)

	detail := doc.Get("detail")
	if detail.IsArray() {
		var msgs []string
		for _, m := range detail.Get("#.msg").Array() {
			if s := strings.TrimSpace(m.String()); s != "" {
				msgs = append(msgs, s)
			}
		}
		return strings.Join(msgs, "; ")
	}

	for _, key := range []string{"detail", "message", "error"} {
		if v := doc.Get(key); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}

	return ""
}
