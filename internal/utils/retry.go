package utils

import (
	"fmt"
	"time"
)

// Retry runs fn up to attempts times, doubling the delay after each failure.
func Retry(operation string, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt < attempts {
			LogEvent("", "retry", operation, fmt.Sprintf("attempt %d/%d failed: %v, retrying in %v", attempt, attempts, lastErr, delay))
			time.Sleep(delay)
			delay *= 2
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}
