// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Converts LookupError to secure HTTP responses, hides internal details
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "definex/utils/errors"
	"definex/utils/logger"
)

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
// It converts various error types to consistent, secure HTTP responses.
//
// Error handling priority:
// 1. LookupError - uses ToSecureHTTPResponse() for consistent format
// 2. echo.HTTPError - preserves Echo's error format for backward compatibility
// 3. Unknown errors - returns generic 500 response to hide internal details
func CustomHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		requestID := logger.RequestIDFromContext(c.Request().Context())

		var response apperrors.SecureHTTPResponse
		var status int

		var lookupErr *apperrors.LookupError
		var httpErr *echo.HTTPError

		switch {
		case errors.As(err, &lookupErr):
			status = lookupErr.HTTPStatusCode()
			response = lookupErr.ToSecureHTTPResponse()

			// Log full error details for internal debugging
			log.Error("lookup error",
				"request_id", requestID,
				"error_id", lookupErr.ErrorID,
				"code", lookupErr.Code,
				"message", lookupErr.Message,
				"component", lookupErr.Component,
				"operation", lookupErr.Operation,
				"cause", lookupErr.Cause,
			)

		case errors.As(err, &httpErr):
			status = httpErr.Code
			msg := "An error occurred"
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}

			// For 5xx errors, hide the actual message
			safeMsg := msg
			if status >= 500 {
				safeMsg = "An unexpected error occurred. Please try again later."
			}

			response = apperrors.SecureHTTPResponse{
				Error: apperrors.SecureErrorDetail{
					Code:      "HTTP_ERROR",
					Message:   safeMsg,
					Retryable: apperrors.IsRetryableHTTPStatus(status),
				},
			}

			log.Warn("HTTP error",
				"request_id", requestID,
				"status", status,
				"message", msg,
			)

		default:
			// Unknown error type - treat as internal error
			status = http.StatusInternalServerError
			response = apperrors.SecureHTTPResponse{
				Error: apperrors.SecureErrorDetail{
					Code:      apperrors.CodeInternal,
					Message:   "An unexpected error occurred. Please try again later.",
					Retryable: false,
				},
			}

			// Log the actual error for debugging (never expose to client)
			log.Error("unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, response); err != nil {
			log.Error("failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}
