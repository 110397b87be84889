// ABOUTME: This file implements a bounded retry mechanism with linear backoff
// ABOUTME: Provides resilient error handling for upstream dictionary calls
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

type ErrorClassifier func(error) bool

type Retrier struct {
	config      RetryConfig
	isRetryable ErrorClassifier
	logger      *slog.Logger
}

func NewRetrier(config RetryConfig, classifier ErrorClassifier, logger *slog.Logger) *Retrier {
	return &Retrier{
		config:      config,
		isRetryable: classifier,
		logger:      logger,
	}
}

// Do runs operation until it succeeds, the classifier declares the error
// terminal, the attempt budget is spent, or ctx is cancelled during a wait.
func (r *Retrier) Do(ctx context.Context, operation func() error) error {
	start := time.Now()
	var lastErr error
	var totalWaitTime time.Duration

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		attemptStart := time.Now()
		lastErr = operation()
		attemptDuration := time.Since(attemptStart)

		if lastErr == nil {
			if attempt > 1 {
				r.logger.Info("operation succeeded after retry",
					"attempt", attempt,
					"attempt_duration_ms", attemptDuration.Milliseconds(),
					"total_duration_ms", time.Since(start).Milliseconds(),
					"total_wait_time_ms", totalWaitTime.Milliseconds())
			}
			return nil
		}

		isRetryable := r.isRetryable != nil && r.isRetryable(lastErr)
		r.logger.Warn("operation attempt failed",
			"attempt", attempt,
			"error", lastErr,
			"retryable", isRetryable,
			"attempt_duration_ms", attemptDuration.Milliseconds())

		if attempt == r.config.MaxAttempts || !isRetryable {
			r.logger.Error("operation failed permanently",
				"attempt", attempt,
				"error", lastErr,
				"retryable", isRetryable,
				"total_duration_ms", time.Since(start).Milliseconds())
			break
		}

		delay := r.calculateDelay(attempt)
		totalWaitTime += delay

		r.logger.Info("retry backoff wait",
			"attempt", attempt,
			"retry_delay_ms", delay.Milliseconds(),
			"total_wait_time_ms", totalWaitTime.Milliseconds())

		select {
		case <-ctx.Done():
			r.logger.Error("retry cancelled by context",
				"attempt", attempt,
				"context_error", ctx.Err())
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts (wait: %dms): %w",
		r.config.MaxAttempts, totalWaitTime.Milliseconds(), lastErr)
}

// calculateDelay grows linearly with the attempt number: base, 2*base, 3*base,
// capped at MaxDelay. Lookups are interactive, so the wait stays short and
// predictable instead of doubling.
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := r.config.BaseDelay * time.Duration(attempt)
	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}
	return delay
}
