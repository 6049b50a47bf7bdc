package generation

import (
	"context"
	"math/rand/v2"
	"time"
)

// Default retry configuration.
const (
	DefaultMaxRetries    = 3
	DefaultInitialDelay  = 1 * time.Second
	DefaultBackoffFactor = 2.0
	DefaultJitterRatio   = 0.3
)

// RetryConfig holds the parameters for the bounded retry loop.
type RetryConfig struct {
	// MaxRetries is the number of re-attempts after the initial attempt,
	// so a call that always fails retryably is attempted MaxRetries+1 times.
	MaxRetries int

	// InitialDelay is the backoff before the first retry.
	InitialDelay time.Duration

	// BackoffFactor multiplies the delay after each retry.
	BackoffFactor float64

	// JitterRatio bounds the random addition to each delay as a fraction
	// of the current delay. Jitter desynchronizes concurrent callers so
	// their retries do not arrive as a synchronized storm.
	JitterRatio float64
}

// DefaultRetryConfig returns the retry parameters used when configuration
// supplies no overrides.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    DefaultMaxRetries,
		InitialDelay:  DefaultInitialDelay,
		BackoffFactor: DefaultBackoffFactor,
		JitterRatio:   DefaultJitterRatio,
	}
}

// WithRetry executes fn until it succeeds, fails with a non-retryable
// error, or exhausts the attempt budget. Every failure surfaced to the
// caller is a *ClassifiedError; classification is idempotent, so attempt
// functions that classify at the failure origin pass through unchanged.
//
// The sleep between attempts is currentDelay plus a uniform random jitter
// in [0, JitterRatio*currentDelay); the delay is then multiplied by
// BackoffFactor. Context cancellation during the sleep aborts the loop.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	delay := cfg.InitialDelay

	for attempt := 0; ; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		cerr := Classify(err)
		if !cerr.Retryable || attempt >= cfg.MaxRetries {
			return zero, cerr
		}

		sleep := delay
		if cfg.JitterRatio > 0 {
			sleep += time.Duration(rand.Float64() * cfg.JitterRatio * float64(delay))
		}

		select {
		case <-ctx.Done():
			return zero, Classify(ctx.Err())
		case <-time.After(sleep):
		}

		delay = time.Duration(float64(delay) * cfg.BackoffFactor)
	}
}
