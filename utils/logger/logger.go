// ABOUTME: Structured JSON logging on slog with request-id context propagation
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ContextKey string

const RequestIDKey ContextKey = "request_id"

// Config controls the process logger.
type Config struct {
	Level       string `env:"LOG_LEVEL" default:"info"`
	ServiceName string `env:"SERVICE_NAME" default:"definex"`
}

// LoadConfigFromEnv reads logger configuration from environment variables.
func LoadConfigFromEnv() *Config {
	return &Config{
		Level:       getEnvOrDefault("LOG_LEVEL", "info"),
		ServiceName: getEnvOrDefault("SERVICE_NAME", "definex"),
	}
}

// New creates the process slog.Logger writing JSON to stdout.
func New(config *Config) *slog.Logger {
	return NewWithWriter(os.Stdout, config)
}

// NewWithWriter is New with a caller-supplied sink, used by tests.
func NewWithWriter(output io.Writer, config *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(config.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	options := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Lowercase level for log-forwarder compatibility
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(lv.String()))}
				}
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(output, options)).With("service", config.ServiceName)
}

// WithRequestID stores the request id for downstream log calls.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFromContext returns the stored request id, or "".
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns logger annotated with any request id carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if rid := RequestIDFromContext(ctx); rid != "" {
		return logger.With("request_id", rid)
	}
	return logger
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
