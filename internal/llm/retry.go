package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) GenerateText(ctx context.Context, req GenerateRequest) (string, error) {
	var text string
	err := r.attempt(ctx, func() error {
		var genErr error
		text, genErr = r.inner.GenerateText(ctx, req)
		return genErr
	})
	return text, err
}

func (r *RetryProvider) Classify(ctx context.Context, content string, categories []string) (map[string]float64, error) {
	var scores map[string]float64
	err := r.attempt(ctx, func() error {
		var clsErr error
		scores, clsErr = r.inner.Classify(ctx, content, categories)
		return clsErr
	})
	return scores, err
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *RetryProvider) attempt(ctx context.Context, call func() error) error {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return lastErr
}

// shouldRetry determines if an error is retryable.
func shouldRetry(err error) bool {
	// Context errors are never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Parse failures are deterministic given the same reply; one shot only.
	var parse *ErrParse
	if errors.As(err, &parse) {
		return false
	}

	// Construction failures never resolve by retrying.
	var unavail *ErrBackendUnavailable
	if errors.As(err, &unavail) {
		return false
	}

	// Generation errors (rate limits, transport) are transient.
	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var gen *ErrGeneration
	if errors.As(err, &gen) && gen.RateLimited && gen.RetryAfter > 0 {
		return gen.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
