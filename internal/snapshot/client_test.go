package snapshot

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// discardLogger returns a logger that swallows all records.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestClientPlatforms tests that the probe exposes the canonical order.
func TestClientPlatforms(t *testing.T) {
	t.Parallel()

	client := NewClient(WithLogger(discardLogger()))

	got := client.Platforms()
	want := model.SupportedPlatforms()
	if len(got) != len(want) {
		t.Fatalf("got %d platforms, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("platform[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
}

// TestClientCanDownload tests the HEAD probe against a local server.
func TestClientCanDownload(t *testing.T) {
	t.Parallel()

	t.Run("status 200 means available", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(WithHost(server.URL), WithLogger(discardLogger()))
		if !client.CanDownload(context.Background(), model.PlatformLinux, 700000) {
			t.Error("expected available for status 200")
		}
	})

	t.Run("status 404 means unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewClient(WithHost(server.URL), WithLogger(discardLogger()))
		if client.CanDownload(context.Background(), model.PlatformLinux, 700000) {
			t.Error("expected unavailable for status 404")
		}
	})

	t.Run("redirects and server errors mean unavailable", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusNoContent, http.StatusForbidden, http.StatusInternalServerError} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			client := NewClient(WithHost(server.URL), WithLogger(discardLogger()))
			if client.CanDownload(context.Background(), model.PlatformMac, 1) {
				t.Errorf("expected unavailable for status %d", status)
			}
			server.Close()
		}
	})

	t.Run("transport failure is swallowed as unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // probe now hits a dead address

		client := NewClient(WithHost(server.URL), WithLogger(discardLogger()))
		if client.CanDownload(context.Background(), model.PlatformLinux, 1) {
			t.Error("expected unavailable when the bucket is unreachable")
		}
	})

	t.Run("probe uses HEAD with the bucket path", func(t *testing.T) {
		t.Parallel()

		var gotMethod, gotPath, gotAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAgent = r.Header.Get("User-Agent")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(
			WithHost(server.URL),
			WithUserAgent("chromecheck-test"),
			WithLogger(discardLogger()),
		)
		client.CanDownload(context.Background(), model.PlatformWin64, 600000)

		if gotMethod != http.MethodHead {
			t.Errorf("method = %q, expected HEAD", gotMethod)
		}
		if gotPath != "/chromium-browser-snapshots/Win_x64/600000/chrome-win.zip" {
			t.Errorf("path = %q, expected the Win_x64 archive path", gotPath)
		}
		if gotAgent != "chromecheck-test" {
			t.Errorf("user agent = %q, expected %q", gotAgent, "chromecheck-test")
		}
	})

	t.Run("cancelled context means unavailable", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewClient(WithHost(server.URL), WithLogger(discardLogger()))
		if client.CanDownload(ctx, model.PlatformLinux, 1) {
			t.Error("expected unavailable with a cancelled context")
		}
		if requests.Load() != 0 {
			t.Errorf("probe sent %d requests despite cancelled context", requests.Load())
		}
	})
}

// TestNewHTTPClient tests the shared HTTP client construction.
func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	t.Run("no proxy uses the default transport", func(t *testing.T) {
		t.Parallel()

		httpClient, err := NewHTTPClient("", 30*time.Second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if httpClient.Transport != http.DefaultTransport {
			t.Error("expected the default transport without a proxy")
		}
		if httpClient.Timeout != 30*time.Second {
			t.Errorf("timeout = %v, expected 30s", httpClient.Timeout)
		}
	})

	t.Run("zero timeout means no deadline", func(t *testing.T) {
		t.Parallel()

		httpClient, err := NewHTTPClient("", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if httpClient.Timeout != 0 {
			t.Errorf("timeout = %v, expected 0", httpClient.Timeout)
		}
	})

	t.Run("proxy address installs a custom transport", func(t *testing.T) {
		t.Parallel()

		httpClient, err := NewHTTPClient("127.0.0.1:1080", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if httpClient.Transport == http.DefaultTransport {
			t.Error("expected a proxied transport, got the default")
		}
	})
}
