package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loganlabb-arch/Actual-alarm/internal/parser"
)

func TestNextOccurrenceLaterToday(t *testing.T) {
	now := time.Date(2026, time.March, 14, 6, 0, 0, 0, time.Local)
	next := NextOccurrence(parser.Clock{Hour: 7, Minute: 30}, now)

	assert.True(t, next.After(now))
	assert.Equal(t, now.Day(), next.Day())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 30, next.Minute())
}

func TestNextOccurrenceRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, time.March, 14, 8, 0, 0, 0, time.Local)
	next := NextOccurrence(parser.Clock{Hour: 7, Minute: 30}, now)

	assert.True(t, next.After(now))
	assert.Equal(t, now.AddDate(0, 0, 1).Day(), next.Day())
	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 30, next.Minute())
}

func TestNextOccurrenceExactlyNowRolls(t *testing.T) {
	// Not strictly after now, so the occurrence moves a day forward.
	now := time.Date(2026, time.March, 14, 7, 30, 0, 0, time.Local)
	next := NextOccurrence(parser.Clock{Hour: 7, Minute: 30}, now)

	assert.True(t, next.After(now))
	assert.Equal(t, 24*time.Hour, next.Sub(now))
}

func TestNextOccurrenceAlwaysFuture(t *testing.T) {
	now := time.Now()
	for hour := 0; hour < 24; hour++ {
		next := NextOccurrence(parser.Clock{Hour: hour, Minute: 0}, now)
		assert.True(t, next.After(now), "hour %d", hour)
		assert.Equal(t, hour, next.Hour())
	}
}

func TestWaitUntilPastTargetReturnsImmediately(t *testing.T) {
	start := time.Now()
	err := WaitUntil(context.Background(), start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitUntilShortTarget(t *testing.T) {
	start := time.Now()
	err := WaitUntil(context.Background(), start.Add(100*time.Millisecond))
	require.NoError(t, err)

	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestWaitUntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := WaitUntil(ctx, start.Add(time.Hour))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitUntilReChecksClockEachWake(t *testing.T) {
	// The injected clock jumps past the target after the first check,
	// the way a system resume would; the wait notices on its next wake
	// instead of sleeping out the original full duration.
	base := time.Date(2026, time.March, 14, 6, 0, 0, 0, time.Local)
	target := base.Add(10 * time.Minute)

	calls := 0
	now := func() time.Time {
		calls++
		if calls == 1 {
			return target.Add(-50 * time.Millisecond)
		}
		return target.Add(time.Second)
	}

	start := time.Now()
	err := waitUntil(context.Background(), target, now)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(start), time.Second)
}
