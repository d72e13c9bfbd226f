package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound reports that a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss reports that a key was not present in the cache.
	ErrCacheMiss = errors.New("cache miss")
)

// RetryableError marks a cache failure as transient, so backends can
// distinguish a flaky connection from a corrupt entry.
type RetryableError struct{ Err error }

// Retryable wraps err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with RetryableError anywhere
// in its chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the delay between
// attempts from one second. Non-retryable errors end the loop immediately;
// a cancelled context ends the wait with ctx.Err().
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second

	var lastErr error
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
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
			delay *= 2
		}
	}
}
