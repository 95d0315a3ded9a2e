package cycle

import (
	"context"
	"time"
)

// Ticker delivers ticks at a fixed cadence. The first call to Wait returns
// immediately so a feed fetches as soon as its cycle starts. If the caller
// falls behind, pending ticks are collapsed: the next delivered tick waits
// for the next scheduled boundary instead of bursting through a backlog.
type Ticker struct {
	ticker *time.Ticker
	first  bool
}

// NewTicker creates a ticker with the given interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{
		ticker: time.NewTicker(interval),
		first:  true,
	}
}

// Wait blocks until the next tick or until ctx is cancelled.
func (t *Ticker) Wait(ctx context.Context) error {
	if t.first {
		t.first = false
		return ctx.Err()
	}

	// Discard any tick that fired while the caller was busy, so a slow
	// consumer waits out a full interval rather than ticking immediately.
	select {
	case <-t.ticker.C:
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

// Stop releases the ticker's resources.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}
