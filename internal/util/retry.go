package util

import (
	"context"
	"time"
)

// Retry runs fn up to attempts times, sleeping baseDelay, 2*baseDelay,
// 4*baseDelay, ... between tries. shouldRetry decides whether an error
// is worth another attempt; returning false surfaces it immediately.
func Retry(ctx context.Context, attempts int, baseDelay time.Duration, shouldRetry func(error) bool, fn func() error) error {
	var err error
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !shouldRetry(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
