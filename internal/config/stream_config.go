package config

import "time"

// StreamConfig aggregates everything needed to run a product stream: the feed
// catalog, retry policy, dedup retention, output buffering, and the shared
// HTTP client settings.
type StreamConfig struct {
	Feeds []FeedConfig `json:"feeds" yaml:"feeds" validate:"required,min=1,dive"`

	// BufferSize is the capacity of the delivery buffer between the feed
	// cycles and the consumer. Producers block when it is full.
	BufferSize int `json:"buffer_size,omitempty" yaml:"buffer_size,omitempty" validate:"omitempty,min=1"`

	// FetchAttempts is the total number of fetch attempts per tick.
	FetchAttempts int `json:"fetch_attempts,omitempty" yaml:"fetch_attempts,omitempty" validate:"omitempty,min=1,max=10"`
	// RetryDelaySeconds is the pause between a failed attempt and the next.
	RetryDelaySeconds int `json:"retry_delay_seconds,omitempty" yaml:"retry_delay_seconds,omitempty" validate:"omitempty,min=1"`

	// RetentionHours is the dedup window: a product name not seen for this
	// long becomes eligible to be delivered again.
	RetentionHours int `json:"retention_hours,omitempty" yaml:"retention_hours,omitempty" validate:"omitempty,min=1"`

	HTTPClient HTTPClientConfig `json:"http_client,omitempty" yaml:"http_client,omitempty"`
	Log        LogConfig        `json:"log,omitempty" yaml:"log,omitempty"`
}

// RetryDelay returns the pause between fetch attempts as a time.Duration.
func (sc StreamConfig) RetryDelay() time.Duration {
	return time.Duration(sc.RetryDelaySeconds) * time.Second
}

// Retention returns the dedup retention window as a time.Duration.
func (sc StreamConfig) Retention() time.Duration {
	return time.Duration(sc.RetentionHours) * time.Hour
}

// NewDefaultStreamConfig creates default stream configuration. The feed list
// is empty; callers supply their own catalog.
func NewDefaultStreamConfig() StreamConfig {
	return StreamConfig{
		BufferSize:        50,
		FetchAttempts:     3,
		RetryDelaySeconds: 4,
		RetentionHours:    6,
		HTTPClient:        NewDefaultHTTPClientConfig(),
		Log:               NewDefaultLogConfig(),
	}
}

// ApplyDefaults fills zero-valued tuning fields with their defaults. Feed
// entries are left untouched.
func (sc *StreamConfig) ApplyDefaults() {
	def := NewDefaultStreamConfig()
	if sc.BufferSize == 0 {
		sc.BufferSize = def.BufferSize
	}
	if sc.FetchAttempts == 0 {
		sc.FetchAttempts = def.FetchAttempts
	}
	if sc.RetryDelaySeconds == 0 {
		sc.RetryDelaySeconds = def.RetryDelaySeconds
	}
	if sc.RetentionHours == 0 {
		sc.RetentionHours = def.RetentionHours
	}
	if sc.HTTPClient == (HTTPClientConfig{}) {
		sc.HTTPClient = def.HTTPClient
	}
	if sc.HTTPClient.UserAgent == "" {
		sc.HTTPClient.UserAgent = DefaultUserAgent
	}
	if sc.Log == (LogConfig{}) {
		sc.Log = def.Log
	}
}
