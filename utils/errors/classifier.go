// ABOUTME: Error classifier for retry decisions and upstream status mapping
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
)

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Context cancellation is never retryable (caller initiated)
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.IsRetryable()
	}

	var opNetErr *net.OpError
	if errors.As(err, &opNetErr) {
		if errno, ok := opNetErr.Err.(syscall.Errno); ok {
			switch errno {
			case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ETIMEDOUT:
				return true
			}
		}
		if opNetErr.Timeout() {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// IsRetryableHTTPStatus reports whether a status code indicates a transient
// condition. 4xx responses, including 429, are terminal: retrying a rejected
// key or a rate-limited key within the same lookup only burns quota.
func IsRetryableHTTPStatus(status int) bool {
	switch {
	case status >= 500 && status <= 599:
		return true
	case status == http.StatusRequestTimeout:
		return true
	default:
		return false
	}
}

// FromHTTPStatus converts an upstream response status into a LookupError.
func FromHTTPStatus(status int, component, operation string) *LookupError {
	var code string
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		code = CodeUpstreamAuth
	case status == http.StatusTooManyRequests:
		code = CodeUpstreamRateLimited
	case status == http.StatusNotFound:
		code = CodeNotFound
	case status == http.StatusRequestTimeout:
		code = CodeUpstreamTimeout
	case status >= 500:
		code = CodeUpstreamUnavailable
	default:
		code = CodeUpstreamUnavailable
	}
	msg := fmt.Sprintf("upstream returned status %d", status)
	if code == CodeNotFound {
		msg = "upstream has no entry for this text"
	}
	return New(code, msg, component, operation, nil)
}

// FromTransportError converts a failed round trip into a LookupError.
func FromTransportError(err error, component, operation string) *LookupError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return New(CodeUpstreamTimeout, "request to upstream timed out", component, operation, err)
	}
	return New(CodeUpstreamUnavailable, "could not reach upstream", component, operation, err)
}
