// Package backend is the typed client for the job-tracking REST API. The
// backend owns all data; this client only shuttles requests and maps upstream
// failures onto the notification taxonomy.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/notify"
)

// APIError is a backend-reported failure carrying one of the taxonomy codes.
type APIError struct {
	Code       notify.Code
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend[%s]: %s (status %d)", e.Code, e.Message, e.StatusCode)
}

// CodeOf extracts the taxonomy code from an error chain, defaulting to
// fetch_failed for anything the backend did not classify.
func CodeOf(err error) notify.Code {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return notify.CodeFetchFailed
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	logger     *zap.Logger
}

func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout(),
		},
		maxRetries: cfg.MaxRetries,
		logger:     logger.With(zap.String("component", "backend")),
	}
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// doJSON issues one API call with bounded retry on transport errors and 5xx
// responses. Client errors (4xx) are never retried; they map straight to the
// taxonomy.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return &APIError{Code: notify.CodeFetchFailed, Message: ctx.Err().Error()}
			}
			c.logger.Warn("retrying backend call",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
		}

		var reader *bytes.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		} else {
			reader = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return &APIError{Code: notify.CodeFetchFailed, Message: ctx.Err().Error()}
			}
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			continue
		}

		return c.finish(resp, out)
	}

	return &APIError{
		Code:    notify.CodeFetchFailed,
		Message: fmt.Sprintf("no response after %d attempts: %v", c.maxRetries+1, lastErr),
	}
}

// finish consumes a non-5xx response: decode the result on success, map the
// failure otherwise.
func (c *Client) finish(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{
				Code:       notify.CodeFetchFailed,
				StatusCode: resp.StatusCode,
				Message:    "decode response: " + err.Error(),
			}
		}
		return nil
	}

	apiErr := &APIError{
		Code:       codeForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	// The explicit code in the error envelope wins over the status mapping.
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = notify.Code(envelope.Error.Code)
		if envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
		}
	}

	return apiErr
}

func codeForStatus(status int) notify.Code {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return notify.CodeAuthExpired
	case http.StatusConflict:
		return notify.CodeDuplicate
	case http.StatusTooManyRequests:
		return notify.CodeRateLimit
	default:
		return notify.CodeFetchFailed
	}
}
