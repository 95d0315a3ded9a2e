package fetcher

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/wxgate/emwintg/internal/common"
)

// ErrNotModified is returned when content has not been modified (HTTP 304).
var ErrNotModified = common.ErrNotModified

// ValidatorState carries the conditional-request validators for one feed
// across fetches. It is owned exclusively by the feed's fetch cycle and is
// only updated after a successful fetch that returned content.
type ValidatorState struct {
	ETag         string
	LastModified string
}

// present reports whether any validator has been captured yet.
func (vs *ValidatorState) present() bool {
	return vs.ETag != "" || vs.LastModified != ""
}

// Fetcher performs conditional retrievals of feed archives. A single Fetcher
// is shared by all feed cycles; the underlying HTTP client handles concurrent
// requests.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *http.Client, userAgent string, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: client,
		userAgent:  userAgent,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
	}
}

// Fetch performs one conditional GET against url.
//
// The validators in state, when present, are sent as If-None-Match and
// If-Modified-Since headers. A 304 response in reply to a conditional request
// yields (nil, ErrNotModified) and leaves state untouched. A successful
// response replaces state with the validators reported on the response
// (either may be absent) and returns the body. Any transport failure or
// unexpected status is returned as an error; Fetch never retries internally.
func (f *Fetcher) Fetch(ctx context.Context, url string, state *ValidatorState) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, common.WrapErrorf(err, "creating request for %s", url)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if state.ETag != "" {
		req.Header.Set("If-None-Match", state.ETag)
	}
	if state.LastModified != "" {
		req.Header.Set("If-Modified-Since", state.LastModified)
	}

	f.logger.Debug().Str("url", url).Msg("GET")
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, common.NewNetworkError(url, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		// Read a little of the body for error context, but bound it.
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		f.logger.Warn().Str("url", url).Int("status_code", resp.StatusCode).Msg("Received non-OK HTTP status")
		return nil, common.NewHTTPError(url, resp.StatusCode, string(bodyBytes))
	}

	if resp.StatusCode == http.StatusNotModified && state.present() {
		f.logger.Debug().Str("url", url).Msg("304 Not Modified")
		// Sink the body, if any, so the connection stays reusable.
		// Drain errors never surface.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrNotModified
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.NewNetworkError(url, "reading response body", err)
	}

	state.ETag = resp.Header.Get("ETag")
	state.LastModified = resp.Header.Get("Last-Modified")

	f.logger.Debug().Str("url", url).Int("size", len(body)).Msg("200 OK")
	return body, nil
}
