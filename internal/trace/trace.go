// Package trace instruments outgoing HTTP calls with request IDs,
// timing and rolling metrics.
package trace

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"karma/internal/log"
)

// ContextKey type for context keys.
type ContextKey string

// RequestIDKey is the context key for the outgoing request ID.
const RequestIDKey ContextKey = "request_id"

// Header carrying the request ID to the remote service.
const RequestIDHeader = "X-Request-Id"

// Metrics tracks outgoing request counters.
type Metrics struct {
	TotalRequests       int64
	FailedRequests      int64
	AverageResponseTime int64 // microseconds, last observed
}

// RoundTripper wraps an http.RoundTripper with tracing. Every request
// gets a fresh ID, a start/complete log pair and a metrics update.
type RoundTripper struct {
	next    http.RoundTripper
	metrics *Metrics
}

// NewRoundTripper creates a tracing transport. A nil next falls back to
// http.DefaultTransport.
func NewRoundTripper(next http.RoundTripper) *RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &RoundTripper{
		next:    next,
		metrics: &Metrics{},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	requestID := GenerateRequestID()

	ctx := context.WithValue(req.Context(), RequestIDKey, requestID)
	req = req.Clone(ctx)
	req.Header.Set(RequestIDHeader, requestID)

	slog.DebugContext(ctx, "API request started",
		log.FieldRequestID, requestID,
		log.FieldMethod, req.Method,
		log.FieldURL, req.URL.Path,
		log.FieldQuery, req.URL.RawQuery)

	atomic.AddInt64(&t.metrics.TotalRequests, 1)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	atomic.StoreInt64(&t.metrics.AverageResponseTime, duration.Microseconds())

	if err != nil {
		atomic.AddInt64(&t.metrics.FailedRequests, 1)
		fields := log.NewFields().
			WithHTTPCall(req.Method, req.URL.Path, 0, duration.Milliseconds()).
			WithError(err)
		slog.ErrorContext(ctx, "API request failed",
			append(fields.ToSlice(), log.FieldRequestID, requestID)...)
		return nil, err
	}

	logLevel := slog.LevelDebug
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		logLevel = slog.LevelWarn
	} else if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	}
	if resp.StatusCode >= 400 {
		atomic.AddInt64(&t.metrics.FailedRequests, 1)
	}

	fields := log.NewFields().
		WithHTTPCall(req.Method, req.URL.Path, resp.StatusCode, duration.Milliseconds())
	slog.Log(ctx, logLevel, "API request completed",
		append(fields.ToSlice(),
			log.FieldRequestID, requestID,
			log.FieldQuery, req.URL.RawQuery)...)

	return resp, nil
}

// GenerateRequestID creates a unique ID for correlating an outgoing call
// with the server's logs.
func GenerateRequestID() string {
	return "req_" + uuid.NewString()
}

// GetRequestID extracts the request ID from context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// GetMetrics returns a snapshot of the current metrics.
func (t *RoundTripper) GetMetrics() Metrics {
	return Metrics{
		TotalRequests:       atomic.LoadInt64(&t.metrics.TotalRequests),
		FailedRequests:      atomic.LoadInt64(&t.metrics.FailedRequests),
		AverageResponseTime: atomic.LoadInt64(&t.metrics.AverageResponseTime),
	}
}
