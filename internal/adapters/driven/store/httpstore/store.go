// Package httpstore provides a driven.DocumentStore backed by a haste
// paste server over HTTP.
package httpstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/custodia-labs/haste-cli/internal/core/domain"
	"github.com/custodia-labs/haste-cli/internal/core/ports/driven"
	"github.com/custodia-labs/haste-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 16 << 20

// ErrResponseTooLarge is returned for bodies over the read limit.
var ErrResponseTooLarge = errors.New("response body too large")

// Config holds configuration for the HTTP document store.
type Config struct {
	// BaseURL is the paste server URL (default: domain.DefaultServerURL).
	BaseURL string

	// Timeout bounds each request (default: domain.DefaultTimeout).
	Timeout time.Duration

	// RequestsPerSecond throttles requests client-side. Zero disables it.
	RequestsPerSecond float64

	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client

	// Clock drives the rate limiter backoff (default: real clock).
	Clock clockwork.Clock
}

// ConfigFromSettings maps server settings to a store config.
func ConfigFromSettings(s domain.ServerSettings) Config {
	return Config{
		BaseURL:           s.URL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
	}
}

// Store talks to the paste server's document API.
type Store struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
	maxBody int64
}

// documentResponse is the GET /documents/{key} response format.
type documentResponse struct {
	Data string `json:"data"`
}

// createRequest is the POST /documents request format.
type createRequest struct {
	Data string `json:"data"`
}

// createResponse is the POST /documents response format. Message is set
// instead of Key when the server refuses the document.
type createResponse struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// New creates an HTTP document store.
func New(cfg Config) *Store {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultServerURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = domain.DefaultTimeout
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Store{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Clock),
		maxBody: maxBodySize,
	}
}

// BaseURL returns the server URL without a trailing slash.
func (s *Store) BaseURL() string {
	return s.baseURL
}

// Get fetches the document stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	resp, body, err := s.do(ctx, http.MethodGet, "/documents/"+url.PathEscape(key), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	if !isSuccess(resp.StatusCode) {
		return "", fmt.Errorf("%w: %s: status %d", domain.ErrNotFound, key, resp.StatusCode)
	}

	var doc documentResponse
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", domain.ErrNotFound, err)
	}
	return doc.Data, nil
}

// Create submits content and returns the key the server assigned.
// Refusals are returned as *domain.SaveError.
func (s *Store) Create(ctx context.Context, content string) (string, error) {
	payload, err := json.Marshal(createRequest{Data: content})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resp, body, err := s.do(ctx, http.MethodPost, "/documents", payload)
	if err != nil {
		return "", err
	}

	var created createResponse
	decodeErr := json.Unmarshal(body, &created)

	if !isSuccess(resp.StatusCode) {
		if decodeErr != nil {
			logger.Debug("store: unreadable error body (status %d): %v", resp.StatusCode, decodeErr)
		}
		return "", domain.NewSaveError(created.Message)
	}
	if decodeErr != nil || created.Key == "" {
		return "", domain.NewSaveError("")
	}
	return created.Key, nil
}

// Raw fetches the plain text served at /raw/{key}.
func (s *Store) Raw(ctx context.Context, key string) (string, error) {
	resp, body, err := s.do(ctx, http.MethodGet, "/raw/"+url.PathEscape(key), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	}
	if !isSuccess(resp.StatusCode) {
		return "", fmt.Errorf("%w: %s: status %d", domain.ErrNotFound, key, resp.StatusCode)
	}
	return string(body), nil
}

// do performs one rate-limited request and reads the whole body.
func (s *Store) do(ctx context.Context, method, path string, payload []byte) (*http.Response, []byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit: %w", err)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		logger.Debug("store: %s %s [%s] failed: %v", method, path, requestID, err)
		return nil, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(body)) > s.maxBody {
		return nil, nil, fmt.Errorf("%s %s: %w (limit %d bytes)", method, path, ErrResponseTooLarge, s.maxBody)
	}

	logger.Debug("store: %s %s [%s] %d in %s", method, path, requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusTooManyRequests {
		s.limiter.RecordRateLimitError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	return resp, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// parseRetryAfter reads a Retry-After header given in seconds.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
