package config

import "time"

// FeedConfig describes one remote feed endpoint. Feeds are fixed for the
// lifetime of a stream; there is no feed discovery.
type FeedConfig struct {
	// Name identifies the feed in logs.
	Name string `json:"name" yaml:"name" validate:"required"`
	// URL is the absolute address of the compressed batch.
	URL string `json:"url" yaml:"url" validate:"required,url"`
	// RefetchIntervalSeconds is the polling cadence for this feed.
	RefetchIntervalSeconds int `json:"refetch_interval_seconds" yaml:"refetch_interval_seconds" validate:"required,min=1"`
	// MaxTicks bounds how many polling cycles the feed runs before exiting
	// cleanly. 0 means the feed runs until the stream is closed. Used for
	// feeds that are sampled a few times at startup to backfill history.
	MaxTicks int `json:"max_ticks,omitempty" yaml:"max_ticks,omitempty" validate:"omitempty,min=1"`
}

// RefetchInterval returns the polling cadence as a time.Duration.
func (fc FeedConfig) RefetchInterval() time.Duration {
	return time.Duration(fc.RefetchIntervalSeconds) * time.Second
}
