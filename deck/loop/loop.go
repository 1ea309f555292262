// Package loop runs cancellable periodic work.
package loop

import (
	"context"
	"time"
)

// Every calls fn after first, then once per period, until ctx is done.
// A non-positive first fires immediately. fn runs on the calling goroutine.
func Every(ctx context.Context, first, period time.Duration, fn func()) error {
	if first > 0 {
		t := time.NewTimer(first)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	fn()

	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			fn()
		}
	}
}

// Clamp bounds d to [lo, hi].
func Clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
