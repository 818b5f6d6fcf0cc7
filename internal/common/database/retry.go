// internal/common/database/retry.go
package database

import (
	"context"
	"fmt"
	"time"

	"internship-matcher/internal/common/logger"
)

// Backoff bounds the startup connection attempts for a driver.
type Backoff struct {
	Attempts     int
	InitialDelay time.Duration
}

var (
	RedisBackoff    = Backoff{Attempts: 10, InitialDelay: 2 * time.Second}
	PostgresBackoff = Backoff{Attempts: 15, InitialDelay: 2 * time.Second}
)

// RetryWithBackoff runs operation until it succeeds, doubling the delay
// between attempts. It gives up after maxRetries attempts or when ctx ends.
func RetryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%s cancelled after %d attempts: %w", operationName, i+1, ctx.Err())
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}
