// ABOUTME: Structured error type for lookup failures with HTTP mapping
// ABOUTME: Provides retryability classification and secure client responses
package errors

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
)

// Error codes for lookup failures.
const (
	CodeConfigurationMissing = "CONFIGURATION_MISSING"
	CodeValidation           = "VALIDATION_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeUpstreamAuth         = "UPSTREAM_AUTH"
	CodeUpstreamRateLimited  = "UPSTREAM_RATE_LIMITED"
	CodeUpstreamTimeout      = "UPSTREAM_TIMEOUT"
	CodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	CodeMalformedResponse    = "MALFORMED_RESPONSE"
	CodeInternal             = "INTERNAL_ERROR"
)

// LookupError carries the failure context of one upstream or internal
// operation. Component names the adapter (cambridge, gemini, ...), Operation
// the method that failed.
type LookupError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
	Operation string `json:"operation,omitempty"`
	Cause     error  `json:"-"`
	ErrorID   string `json:"-"` // log correlation only, never sent to clients
}

func (e *LookupError) Error() string {
	var prefix string
	if e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s] ", e.Component, e.Operation)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to the proxy's response status.
func (e *LookupError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamAuth:
		return http.StatusUnauthorized
	case CodeUpstreamRateLimited:
		return http.StatusTooManyRequests
	case CodeUpstreamTimeout:
		return http.StatusRequestTimeout
	case CodeUpstreamUnavailable:
		return http.StatusServiceUnavailable
	case CodeMalformedResponse:
		return http.StatusBadGateway
	case CodeConfigurationMissing, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryable reports whether retrying the same call may succeed. Upstream
// 4xx conditions (auth, rate limit, validation, not found) are terminal.
func (e *LookupError) IsRetryable() bool {
	switch e.Code {
	case CodeUpstreamTimeout, CodeUpstreamUnavailable:
		return true
	default:
		return false
	}
}

// safeMessages maps error codes to client messages that leak no internals.
// Codes absent here carry messages that are safe as written.
var safeMessages = map[string]string{
	CodeUpstreamAuth:        "The upstream service rejected the configured API key.",
	CodeUpstreamRateLimited: "The upstream service is rate limiting requests. Please wait before trying again.",
	CodeUpstreamTimeout:     "The upstream service took too long to respond. Please try again.",
	CodeUpstreamUnavailable: "The upstream service is unavailable. Please try again later.",
	CodeMalformedResponse:   "The upstream service returned an unreadable response.",
	CodeInternal:            "An unexpected error occurred. Please try again later.",
}

// SafeMessage returns the message to expose to clients. Validation, not-found
// and configuration messages are written to be user-facing and pass through.
func (e *LookupError) SafeMessage() string {
	if msg, ok := safeMessages[e.Code]; ok {
		return msg
	}
	if e.Message != "" {
		return e.Message
	}
	return "An error occurred."
}

// SecureHTTPResponse is the JSON error body sent to clients.
type SecureHTTPResponse struct {
	Error SecureErrorDetail `json:"error"`
}

type SecureErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (e *LookupError) ToSecureHTTPResponse() SecureHTTPResponse {
	return SecureHTTPResponse{
		Error: SecureErrorDetail{
			Code:      e.Code,
			Message:   e.SafeMessage(),
			Retryable: e.IsRetryable(),
		},
	}
}

func generateErrorID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return hex.EncodeToString(b)
}

// New creates a LookupError with full context.
func New(code, message, component, operation string, cause error) *LookupError {
	return &LookupError{
		Code:      code,
		Message:   message,
		Component: component,
		Operation: operation,
		Cause:     cause,
		ErrorID:   generateErrorID(),
	}
}

// NewConfigurationMissing signals that a lookup cannot proceed until the user
// supplies a key or setting. The message must tell them which one.
func NewConfigurationMissing(message, component, operation string) *LookupError {
	return New(CodeConfigurationMissing, message, component, operation, nil)
}

func NewValidation(message, component, operation string) *LookupError {
	return New(CodeValidation, message, component, operation, nil)
}

func NewNotFound(message, component, operation string) *LookupError {
	return New(CodeNotFound, message, component, operation, nil)
}

func NewMalformedResponse(message, component, operation string, cause error) *LookupError {
	return New(CodeMalformedResponse, message, component, operation, cause)
}

func NewInternal(message, component, operation string, cause error) *LookupError {
	return New(CodeInternal, message, component, operation, cause)
}
