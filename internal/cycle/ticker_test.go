package cycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_FirstTickIsImmediate(t *testing.T) {
	ticker := NewTicker(time.Hour)
	defer ticker.Stop()

	start := time.Now()
	require.NoError(t, ticker.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond, "first tick must not wait out the interval")
}

func TestTicker_MissedTicksCollapse(t *testing.T) {
	const interval = 100 * time.Millisecond

	ticker := NewTicker(interval)
	defer ticker.Stop()

	require.NoError(t, ticker.Wait(context.Background()))

	// Fall behind by more than two intervals. The backlog must not burst
	// through: the next Wait lines up with the next scheduled boundary.
	time.Sleep(2*interval + interval/2)

	start := time.Now()
	require.NoError(t, ticker.Wait(context.Background()))
	waited := time.Since(start)

	assert.Greater(t, waited, 20*time.Millisecond, "stale tick delivered immediately instead of waiting for the next boundary")
	assert.Less(t, waited, interval, "waited past the next boundary")

	// A second slow consumer round behaves the same way.
	time.Sleep(interval + interval/2)
	start = time.Now()
	require.NoError(t, ticker.Wait(context.Background()))
	assert.Greater(t, time.Since(start), 20*time.Millisecond)
}

func TestTicker_SteadyCadence(t *testing.T) {
	const interval = 50 * time.Millisecond

	ticker := NewTicker(interval)
	defer ticker.Stop()

	require.NoError(t, ticker.Wait(context.Background()))

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, ticker.Wait(context.Background()))
	}
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 3*interval-10*time.Millisecond)
	assert.Less(t, elapsed, 6*interval)
}

func TestTicker_Cancellation(t *testing.T) {
	ticker := NewTicker(time.Hour)
	defer ticker.Stop()

	require.NoError(t, ticker.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ticker.Wait(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestTicker_FirstTickSeesCancelledContext(t *testing.T) {
	ticker := NewTicker(time.Hour)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ticker.Wait(ctx), context.Canceled)
}
