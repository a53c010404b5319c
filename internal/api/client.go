// Package api wraps the remote finance service. Every call unwraps the
// {"data": ...} response envelope before the stores see it, logs
// failures and rethrows them unchanged: no retries, no translation.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"karma/internal/log"
	"karma/internal/trace"
)

// StatusError is an HTTP-level failure (4xx/5xx) from the service.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// envelope is the wire shape common to all endpoints.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client talks to the remote collection service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger

	mu    sync.RWMutex
	token string

	profile profileCache
}

// NewClient creates a client for the service rooted at baseURL. The
// transport is traced; timeout bounds every call end to end.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: trace.NewRoundTripper(nil),
		},
		logger: logger.WithComponent(log.ComponentAPI),
	}
	c.profile = newProfileCache()
	return c
}

// SetToken installs the bearer token used on subsequent calls. An empty
// token clears authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.profile.invalidate()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do issues one request and decodes the enveloped response into out.
// Errors are logged here once and propagated unchanged to the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "API error",
			log.FieldMethod, method,
			log.FieldURL, path,
			log.FieldError, err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		c.logger.ErrorContext(ctx, "API error",
			log.FieldMethod, method,
			log.FieldURL, path,
			log.FieldError, err)
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed envelope on an error status should not mask the
		// status itself.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 400 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: env.Message}
		c.logger.ErrorContext(ctx, "API error",
			log.FieldMethod, method,
			log.FieldURL, path,
			log.FieldStatusCode, resp.StatusCode,
			log.FieldError, statusErr)
		return statusErr
	}

	if out != nil {
		if len(env.Data) == 0 {
			err := fmt.Errorf("decode response: missing data field")
			c.logger.ErrorContext(ctx, "API error",
				log.FieldMethod, method,
				log.FieldURL, path,
				log.FieldError, err)
			return err
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.logger.ErrorContext(ctx, "API error",
				log.FieldMethod, method,
				log.FieldURL, path,
				log.FieldError, err)
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
