package stream

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wxgate/emwintg/internal/archive"
	"github.com/wxgate/emwintg/internal/config"
	"github.com/wxgate/emwintg/internal/cycle"
	"github.com/wxgate/emwintg/internal/dedup"
	"github.com/wxgate/emwintg/internal/fetcher"
	"github.com/wxgate/emwintg/internal/httpclient"
	"github.com/wxgate/emwintg/internal/models"
)

// Event is one element of the delivery sequence: either a product or a
// recoverable error. Errors never end the sequence; only closing the
// orchestrator does.
type Event struct {
	Product *models.Product
	Err     error
}

// Orchestrator runs one fetch cycle per configured feed, all sharing a
// single dedup registry and funneling into one bounded delivery channel.
// Whichever feed has a result ready first is delivered first; within one
// batch, products arrive in sorted member-name order. Producers block when
// the buffer is full.
type Orchestrator struct {
	cfg      config.StreamConfig
	logger   zerolog.Logger
	registry *dedup.Registry
	fetcher  cycle.Fetcher

	out    chan Event
	cancel context.CancelFunc
	group  *errgroup.Group

	closeOnce sync.Once
}

// NewOrchestrator creates an orchestrator. client may be nil, in which case
// a default shared client is built from cfg.HTTPClient.
func NewOrchestrator(cfg config.StreamConfig, client *http.Client, logger zerolog.Logger) *Orchestrator {
	if client == nil {
		client = httpclient.New(cfg.HTTPClient, logger)
	}

	return &Orchestrator{
		cfg:      cfg,
		logger:   logger.With().Str("component", "Orchestrator").Logger(),
		registry: dedup.NewRegistry(cfg.Retention(), logger),
		fetcher:  fetcher.NewFetcher(client, cfg.HTTPClient.UserAgent, logger),
		out:      make(chan Event, cfg.BufferSize),
	}
}

// Start launches the per-feed fetch cycles. It returns immediately.
func (o *Orchestrator) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	o.cancel = cancel
	o.group, ctx = errgroup.WithContext(ctx)

	for _, feed := range o.cfg.Feeds {
		c := cycle.NewCycle(feed, o.fetcher, o, o.cfg.FetchAttempts, o.cfg.RetryDelay(), o.logger)
		o.group.Go(func() error {
			// Cancellation is the expected way cycles end; it is not
			// an errgroup-level failure.
			if err := c.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		})
	}

	o.logger.Info().Int("feeds", len(o.cfg.Feeds)).Msg("Stream started")
}

// Events returns the delivery channel. The channel is closed only after
// Close; it never closes on its own.
func (o *Orchestrator) Events() <-chan Event {
	return o.out
}

// Close stops every feed cycle promptly and discards any buffered but
// undelivered events, then closes the delivery channel. Safe to call more
// than once.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.logger.Info().Msg("Stream closing")
		if o.cancel != nil {
			o.cancel()
		}
		go func() {
			if o.group != nil {
				_ = o.group.Wait()
			}
			for {
				select {
				case <-o.out:
					// Discard buffered events.
				default:
					close(o.out)
					return
				}
			}
		}()
	})
}

// HandleBatch expands a fresh batch, filters out names already delivered,
// and emits the genuinely new products one at a time. A batch that cannot be
// parsed surfaces a single error; a member that cannot be extracted surfaces
// an error for that member without aborting its siblings.
func (o *Orchestrator) HandleBatch(ctx context.Context, feed string, data []byte) {
	arc, err := archive.Open(data)
	if err != nil {
		o.emit(ctx, Event{Err: err})
		return
	}

	names := o.registry.FilterNew(arc.MemberNames())
	o.logger.Info().
		Str("feed", feed).
		Int("new", len(names)).
		Int("total", arc.Len()).
		Msg("Expanded batch")

	for _, name := range names {
		product, err := arc.Extract(name)
		if err != nil {
			o.emit(ctx, Event{Err: err})
			continue
		}
		o.emit(ctx, Event{Product: product})
	}
}

// HandleError surfaces a feed's exhausted-retries error to the consumer.
func (o *Orchestrator) HandleError(ctx context.Context, feed string, err error) {
	o.emit(ctx, Event{Err: err})
}

// emit delivers one event, blocking for buffer space until ctx is cancelled.
func (o *Orchestrator) emit(ctx context.Context, ev Event) {
	select {
	case o.out <- ev:
	case <-ctx.Done():
	}
}
