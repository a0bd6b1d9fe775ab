package connector

import (
	"context"
	"time"
)

// retryConnect runs connectFn up to MaxRetries+1 times with exponential
// backoff between attempts.
func retryConnect(ctx context.Context, opts RetryConfig, connectFn func(context.Context) error) error {
	delay := opts.BaseDelay
	if delay == 0 {
		delay = time.Second
	}

	var err error
	for i := 0; i <= opts.MaxRetries; i++ {
		err = connectFn(ctx)
		if err == nil {
			return nil
		}
		if i == opts.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
			if opts.MaxDelay > 0 && delay > opts.MaxDelay {
				delay = opts.MaxDelay
			}
		}
	}
	return err
}
