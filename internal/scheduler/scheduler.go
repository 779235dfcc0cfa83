// Package scheduler computes and waits for daily alarm occurrences.
package scheduler

import (
	"context"
	"time"

	"github.com/loganlabb-arch/Actual-alarm/internal/parser"
)

// MaxSleepInterval bounds each sleep while waiting for a target time.
// Waking at least this often keeps the wait honest across system
// suspends and clock adjustments without busy-waiting.
const MaxSleepInterval = time.Minute

// NextOccurrence combines today's date with the alarm clock time and
// returns the next occurrence strictly after now. A clock time that is
// not after now rolls forward one day.
func NextOccurrence(clock parser.Clock, now time.Time) time.Time {
	candidate := clock.At(now)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}

// WaitUntil blocks until the wall clock reaches target or ctx is
// canceled. It sleeps in bounded increments and re-checks the clock on
// each wake rather than trusting a single long timer.
func WaitUntil(ctx context.Context, target time.Time) error {
	return waitUntil(ctx, target, time.Now)
}

// waitUntil is WaitUntil with an injectable clock.
func waitUntil(ctx context.Context, target time.Time, now func() time.Time) error {
	for {
		remaining := target.Sub(now())
		if remaining <= 0 {
			return nil
		}

		sleep := remaining
		if sleep > MaxSleepInterval {
			sleep = MaxSleepInterval
		}

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
