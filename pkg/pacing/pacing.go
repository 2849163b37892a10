// Package pacing provides fixed-interval pacing and bounded retries for
// clients that talk to rate-limited APIs. Works with any error types.
//
// Example usage:
//
//	p := pacing.NewPacer(500 * time.Millisecond)
//	for _, item := range items {
//	    if err := p.Wait(ctx); err != nil {
//	        return err
//	    }
//	    send(item)
//	}
package pacing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// Pacer
// =============================================================================

// Pacer spaces successive operations by a fixed interval. The first call
// to Wait returns immediately, every following call blocks until the
// interval since the previous one has elapsed. Safe for concurrent use.
type Pacer struct {
	interval time.Duration
	limiter  *rate.Limiter
}

// NewPacer creates a Pacer with the given interval between operations.
// A non-positive interval yields a pacer that never blocks.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Pacer{
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next operation is allowed or the context is canceled.
func (p *Pacer) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return p.limiter.Wait(ctx)
}

// Interval returns the configured spacing between operations.
func (p *Pacer) Interval() time.Duration { return p.interval }

// =============================================================================
// Retry
// =============================================================================

// FatalError wraps errors that should stop retries immediately.
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

// Retry executes fn up to attempts times, sleeping delay between attempts.
// It stops early when fn succeeds, when fn returns a FatalError, or when
// the context is canceled. After the final attempt the last error is
// returned wrapped with the attempt count.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		if fatal, ok := err.(*FatalError); ok {
			return fatal.Err
		}
		lastErr = err

		if attempt == attempts || delay <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%d attempts failed: %w", attempts, lastErr)
}
