package errors

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHTTPStatus(t *testing.T) {
	tests := map[string]struct {
		status     int
		wantCode   string
		wantHTTP   int
		retryable  bool
	}{
		"unauthorized": {http.StatusUnauthorized, CodeUpstreamAuth, http.StatusUnauthorized, false},
		"forbidden":    {http.StatusForbidden, CodeUpstreamAuth, http.StatusUnauthorized, false},
		"rate limited": {http.StatusTooManyRequests, CodeUpstreamRateLimited, http.StatusTooManyRequests, false},
		"not found":    {http.StatusNotFound, CodeNotFound, http.StatusNotFound, false},
		"timeout":      {http.StatusRequestTimeout, CodeUpstreamTimeout, http.StatusRequestTimeout, true},
		"server error": {http.StatusInternalServerError, CodeUpstreamUnavailable, http.StatusServiceUnavailable, true},
		"bad gateway":  {http.StatusBadGateway, CodeUpstreamUnavailable, http.StatusServiceUnavailable, true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			e := FromHTTPStatus(tc.status, "gemini", "define")
			assert.Equal(t, tc.wantCode, e.Code)
			assert.Equal(t, tc.wantHTTP, e.HTTPStatusCode())
			assert.Equal(t, tc.retryable, e.IsRetryable())
		})
	}
}

func TestIsRetryableHTTPStatus(t *testing.T) {
	assert.True(t, IsRetryableHTTPStatus(500))
	assert.True(t, IsRetryableHTTPStatus(503))
	assert.True(t, IsRetryableHTTPStatus(408))
	assert.False(t, IsRetryableHTTPStatus(429), "rate-limited keys must not be hammered")
	assert.False(t, IsRetryableHTTPStatus(401))
	assert.False(t, IsRetryableHTTPStatus(404))
	assert.False(t, IsRetryableHTTPStatus(200))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(New(CodeUpstreamUnavailable, "down", "cambridge", "fetch", nil)))
	assert.False(t, IsRetryable(New(CodeUpstreamAuth, "bad key", "merriam", "define", nil)))
	assert.False(t, IsRetryable(NewNotFound("no entry", "cambridge", "define")))
}

func TestSafeMessageHidesUpstreamDetail(t *testing.T) {
	e := New(CodeUpstreamUnavailable, "dial tcp 10.0.0.3:443 connect refused", "gemini", "define", nil)
	assert.NotContains(t, e.SafeMessage(), "10.0.0.3")

	cfg := NewConfigurationMissing("Gemini API key is not configured. Add it in the extension options.", "gemini", "define")
	assert.Equal(t, "Gemini API key is not configured. Add it in the extension options.", cfg.SafeMessage())
	assert.Equal(t, http.StatusInternalServerError, cfg.HTTPStatusCode())
}
