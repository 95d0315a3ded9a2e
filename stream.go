package emwintg

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/wxgate/emwintg/internal/config"
	"github.com/wxgate/emwintg/internal/models"
	"github.com/wxgate/emwintg/internal/stream"
)

// Product is one extracted, named unit of content delivered by a Stream.
type Product = models.Product

// Event is one element of the delivery sequence: a product or a recoverable
// error.
type Event = stream.Event

// Option customizes stream construction.
type Option func(*streamOptions)

type streamOptions struct {
	client    *http.Client
	logger    zerolog.Logger
	userAgent string
}

// WithHTTPClient supplies a pre-configured HTTP client instead of the
// default one. The gateway restricts anonymous access without a User-Agent;
// if you bring your own client, pair it with WithUserAgent.
func WithHTTPClient(client *http.Client) Option {
	return func(o *streamOptions) {
		o.client = client
	}
}

// WithLogger enables structured logging. By default the stream is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *streamOptions) {
		o.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header sent with every fetch.
func WithUserAgent(ua string) Option {
	return func(o *streamOptions) {
		o.userAgent = ua
	}
}

// Stream is a cancellable, effectively infinite sequence of products and
// recoverable errors drawn from a catalog of feeds. It keeps retrying until
// closed, even when it reports errors.
type Stream struct {
	orch *stream.Orchestrator
}

// NewTextStream starts a stream over the EMWIN text product feeds.
func NewTextStream(opts ...Option) (*Stream, error) {
	return NewStream(TextFeeds(), opts...)
}

// NewImageStream starts a stream over the EMWIN image product feeds.
func NewImageStream(opts ...Option) (*Stream, error) {
	return NewStream(ImageFeeds(), opts...)
}

// NewStream starts a stream over an arbitrary feed catalog. The feeds begin
// polling immediately; call Close to stop them.
func NewStream(feeds []Feed, opts ...Option) (*Stream, error) {
	options := streamOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := config.NewDefaultStreamConfig()
	if options.userAgent != "" {
		cfg.HTTPClient.UserAgent = options.userAgent
	}
	for _, feed := range feeds {
		cfg.Feeds = append(cfg.Feeds, config.FeedConfig{
			Name:                   feed.Name,
			URL:                    feed.URL,
			RefetchIntervalSeconds: int(feed.RefetchInterval / time.Second),
			MaxTicks:               feed.MaxTicks,
		})
	}

	if err := config.ValidateStreamConfig(&cfg); err != nil {
		return nil, err
	}

	orch := stream.NewOrchestrator(cfg, options.client, options.logger)
	orch.Start()
	return &Stream{orch: orch}, nil
}

// Events returns the delivery channel. Receiving applies backpressure to
// every feed; the channel closes only after Close.
func (s *Stream) Events() <-chan Event {
	return s.orch.Events()
}

// Close stops all feeds promptly and discards any undelivered events.
func (s *Stream) Close() {
	s.orch.Close()
}
