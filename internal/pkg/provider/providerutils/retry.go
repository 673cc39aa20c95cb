package providerutils

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/exception"
)

// BaseBackoff is the wait before the first retry, doubled on each attempt.
var BaseBackoff = 200 * time.Millisecond

type retryableError struct {
	err error
}

func (e retryableError) Error() string {
	return e.err.Error()
}

func (e retryableError) Unwrap() error {
	return e.err
}

// Retryable marks err as worth another attempt.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return retryableError{err: err}
}

func IsRetryable(err error) bool {
	var re retryableError
	return errors.As(err, &re)
}

// Retry calls fn up to maxRetries+1 times with exponential backoff
// (BaseBackoff * 2^attempt). Only errors marked Retryable are retried.
func Retry(ctx context.Context, name string, maxRetries int, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}

		lastErr = err
		slog.ErrorContext(ctx, "provider call failed",
			slog.String("provider", name),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))

		if attempt < maxRetries {
			backoff := BaseBackoff * time.Duration(1<<attempt)
			slog.InfoContext(ctx, "retrying with exponential backoff",
				slog.Duration("backoff", backoff),
				slog.Int("next_attempt", attempt+2))

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return FetchFailure(fmt.Errorf("context cancelled or timeout: %w", ctx.Err()))
			}
		}
	}

	return exception.Wrap(ErrRetryExceeded,
		fmt.Errorf("failed after %d attempts: %w", maxRetries+1, lastErr))
}
