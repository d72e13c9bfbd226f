package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks a fetch failure as transient. The fetcher wraps
// network errors and retryable HTTP statuses with it; anything else aborts
// the retry loop immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

const maxRetryDelay = 8 * time.Second

// Retry runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. The delay doubles between attempts up to
// maxRetryDelay. A cancelled context ends the wait early with ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) {
			return err
		}
		lastErr = err

		if attempt >= attempts {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}

// RetryWithBackoff is Retry with the defaults used for geometry fetches:
// three attempts starting at one second.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}
