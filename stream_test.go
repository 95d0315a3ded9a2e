package emwintg_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxgate/emwintg"
)

func TestTextFeeds(t *testing.T) {
	feeds := emwintg.TextFeeds()
	require.Len(t, feeds, 4)

	var bounded int
	for _, feed := range feeds {
		assert.True(t, strings.HasPrefix(feed.URL, "https://tgftp.nws.noaa.gov/"))
		assert.True(t, strings.HasSuffix(feed.URL, ".zip"))
		assert.Greater(t, feed.RefetchInterval, time.Duration(0))
		if feed.MaxTicks > 0 {
			bounded++
		}
	}
	assert.Equal(t, 2, bounded, "the 6- and 20-minute feeds are sampled, not polled forever")
}

func TestImageFeeds(t *testing.T) {
	feeds := emwintg.ImageFeeds()
	require.Len(t, feeds, 2)
	for _, feed := range feeds {
		assert.Zero(t, feed.MaxTicks)
	}
}

func TestNewStream_NoFeeds(t *testing.T) {
	_, err := emwintg.NewStream(nil)
	assert.Error(t, err)
}

func TestNewStream_SubSecondInterval(t *testing.T) {
	_, err := emwintg.NewStream([]emwintg.Feed{{
		Name:            "too-fast",
		URL:             "https://example.com/feed.zip",
		RefetchInterval: 100 * time.Millisecond,
	}})
	assert.Error(t, err)
}

func TestStream_EndToEnd(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("hello.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("FXUS61 KWBC"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	stream, err := emwintg.NewStream(
		[]emwintg.Feed{{
			Name:            "test",
			URL:             server.URL,
			RefetchInterval: time.Second,
		}},
		emwintg.WithHTTPClient(server.Client()),
		emwintg.WithUserAgent("emwintg-test"),
	)
	require.NoError(t, err)
	defer stream.Close()

	select {
	case event := <-stream.Events():
		require.NoError(t, event.Err)
		assert.Equal(t, "HELLO.TXT", event.Product.Filename)
		assert.Equal(t, "text/plain", event.Product.MIMEType())
		assert.Equal(t, "FXUS61 KWBC", event.Product.StringContents())
	case <-time.After(10 * time.Second):
		t.Fatal("no product delivered")
	}
}

func TestStream_CloseEndsEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	stream, err := emwintg.NewStream(
		[]emwintg.Feed{{
			Name:            "test",
			URL:             server.URL,
			RefetchInterval: time.Second,
		}},
		emwintg.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	stream.Close()
	stream.Close() // safe to call twice

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-stream.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel did not close")
		}
	}
}
