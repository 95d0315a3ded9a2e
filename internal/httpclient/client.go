package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"

	"github.com/wxgate/emwintg/internal/config"
)

// New builds the shared *http.Client used by all feed fetchers. The client is
// safe for concurrent use; no per-feed exclusivity is required.
func New(cfg config.HTTPClientConfig, logger zerolog.Logger) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout(),
		DialContext: (&net.Dialer{
			Timeout: cfg.DialTimeout(),
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}

	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	logger.Debug().
		Dur("timeout", cfg.Timeout()).
		Bool("insecure_skip_verify", cfg.InsecureSkipVerify).
		Bool("http2_enabled", cfg.EnableHTTP2).
		Str("user_agent", cfg.UserAgent).
		Msg("HTTP client created")

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout(),
	}
}
