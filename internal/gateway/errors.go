package gateway

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	// maxErrorBody caps how much of a provider's error body ends up in an
	// error message, and from there in the 502 detail.
	maxErrorBody = 1000

	// defaultRetryAfter applies to a 429 without a usable Retry-After.
	defaultRetryAfter = 60 * time.Second
)

// APIError is a non-200 reply from a model provider.
type APIError struct {
	Provider   string
	Model      string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (model %s, status %d): %s", e.Provider, e.Model, e.StatusCode, e.Body)
}

// RateLimitError is a 429 from a provider, or from every provider behind a
// FallbackGateway. RetryAfter is how long the provider asked callers to wait.
type RateLimitError struct {
	Provider   string
	Model      string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited on %s (retry after %s): %v", e.Provider, e.Model, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. A non-positive retryAfter
// becomes 60s.
func NewRateLimitError(provider, model string, err error, retryAfter time.Duration) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}
	return &RateLimitError{
		Provider:   provider,
		Model:      model,
		RetryAfter: retryAfter,
		Err:        err,
	}
}

// CheckResponse turns a non-200 provider response into an *APIError, wrapped
// in a *RateLimitError for 429. It returns nil for 200.
func CheckResponse(provider, model string, resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	apiErr := &APIError{
		Provider:   provider,
		Model:      model,
		StatusCode: resp.StatusCode,
		Body:       Truncate(string(body), maxErrorBody),
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		return NewRateLimitError(provider, model, apiErr, retryAfter)
	}
	return apiErr
}

// ParseRetryAfter reads a Retry-After value given either as seconds or as an
// HTTP date. It returns 0 when the value is empty, invalid or in the past.
func ParseRetryAfter(val string, now time.Time) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	at, err := http.ParseTime(val)
	if err != nil || !at.After(now) {
		return 0
	}
	return at.Sub(now).Round(time.Second)
}

// Truncate shortens s to at most maxLen bytes without splitting a UTF-8
// sequence.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
