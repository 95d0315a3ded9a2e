package cycle

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/wxgate/emwintg/internal/config"
	"github.com/wxgate/emwintg/internal/fetcher"
)

// Fetcher performs one conditional retrieval. Implemented by
// *fetcher.Fetcher; stubbed in tests.
type Fetcher interface {
	Fetch(ctx context.Context, url string, state *fetcher.ValidatorState) ([]byte, error)
}

// Sink receives what a cycle produces: the raw bytes of a fresh batch, or
// the final error of a tick whose retries were exhausted.
type Sink interface {
	HandleBatch(ctx context.Context, feed string, data []byte)
	HandleError(ctx context.Context, feed string, err error)
}

// Cycle is the long-running fetch loop for a single feed. On each tick it
// attempts a conditional fetch up to FetchAttempts times, pausing RetryDelay
// between failures. Fresh content goes to the sink; an exhausted tick
// surfaces one error and the cycle waits for its next tick. The cycle owns
// its feed's validator state exclusively.
type Cycle struct {
	feed       config.FeedConfig
	fetcher    Fetcher
	sink       Sink
	attempts   int
	retryDelay time.Duration
	logger     zerolog.Logger

	state fetcher.ValidatorState
}

// NewCycle creates a fetch cycle for one feed.
func NewCycle(feed config.FeedConfig, f Fetcher, sink Sink, attempts int, retryDelay time.Duration, logger zerolog.Logger) *Cycle {
	return &Cycle{
		feed:       feed,
		fetcher:    f,
		sink:       sink,
		attempts:   attempts,
		retryDelay: retryDelay,
		logger:     logger.With().Str("component", "FetchCycle").Str("feed", feed.Name).Logger(),
	}
}

// Run executes the cycle until ctx is cancelled or, for feeds with a tick
// bound, until MaxTicks ticks have completed. Errors never terminate the
// loop; only cancellation does.
func (c *Cycle) Run(ctx context.Context) error {
	ticker := NewTicker(c.feed.RefetchInterval())
	defer ticker.Stop()

	c.logger.Info().
		Str("url", c.feed.URL).
		Dur("interval", c.feed.RefetchInterval()).
		Int("max_ticks", c.feed.MaxTicks).
		Msg("Fetch cycle started")

	for tick := 0; ; tick++ {
		if c.feed.MaxTicks > 0 && tick >= c.feed.MaxTicks {
			c.logger.Info().Int("ticks", tick).Msg("Tick bound reached, cycle exiting")
			return nil
		}

		if err := ticker.Wait(ctx); err != nil {
			return err
		}

		c.runTick(ctx)
	}
}

// runTick performs the fetch attempts for one tick.
func (c *Cycle) runTick(ctx context.Context) {
	for attempt := 1; attempt <= c.attempts; attempt++ {
		data, err := c.fetcher.Fetch(ctx, c.feed.URL, &c.state)

		switch {
		case errors.Is(err, fetcher.ErrNotModified):
			// Tick complete, nothing downstream.
			return
		case err == nil:
			c.logger.Info().Int("bytes", len(data)).Msg("Fetched fresh batch")
			c.sink.HandleBatch(ctx, c.feed.Name, data)
			return
		case ctx.Err() != nil:
			return
		case attempt == c.attempts:
			c.logger.Error().Err(err).Int("attempts", attempt).Msg("Retries exhausted")
			c.sink.HandleError(ctx, c.feed.Name, err)
			return
		default:
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("Fetch failed, will retry")
			if !sleepCtx(ctx, c.retryDelay) {
				return
			}
		}
	}
}

// sleepCtx pauses for d, returning false if ctx was cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
