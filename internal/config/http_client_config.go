package config

import "time"

// DefaultUserAgent identifies the default shared HTTP client. The gateway
// restricts anonymous access without a User-Agent, so the default points at
// this project.
const DefaultUserAgent = "github.com/wxgate/emwintg"

// HTTPClientConfig defines configuration for the shared HTTP client used by
// all feed fetchers. A single client is reused across concurrent fetches.
type HTTPClientConfig struct {
	TimeoutSeconds      int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1"`
	DialTimeoutSeconds  int    `json:"dial_timeout_seconds,omitempty" yaml:"dial_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	MaxIdleConns        int    `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty" validate:"omitempty,min=1"`
	MaxIdleConnsPerHost int    `json:"max_idle_conns_per_host,omitempty" yaml:"max_idle_conns_per_host,omitempty" validate:"omitempty,min=1"`
	IdleConnTimeoutSecs int    `json:"idle_conn_timeout_secs,omitempty" yaml:"idle_conn_timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent           string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	EnableHTTP2         bool   `json:"enable_http2" yaml:"enable_http2"`
	InsecureSkipVerify  bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// Timeout returns the per-request timeout as a time.Duration.
func (c HTTPClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DialTimeout returns the dial timeout as a time.Duration.
func (c HTTPClientConfig) DialTimeout() time.Duration {
	return time.Duration(c.DialTimeoutSeconds) * time.Second
}

// IdleConnTimeout returns the idle connection timeout as a time.Duration.
func (c HTTPClientConfig) IdleConnTimeout() time.Duration {
	return time.Duration(c.IdleConnTimeoutSecs) * time.Second
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSeconds:      60,
		DialTimeoutSeconds:  15,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeoutSecs: 90,
		UserAgent:           DefaultUserAgent,
		EnableHTTP2:         true,
		InsecureSkipVerify:  false,
	}
}
