package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// DefaultUserAgent identifies the checker in HTTP requests.
// Using a descriptive User-Agent is good practice and allows bucket
// operators to identify checker traffic in their logs.
const DefaultUserAgent = "chromecheck (+https://github.com/thobhanifreddy/puppeteer)"

// Client probes the snapshot bucket over HTTP.
//
// Design decision: We use a struct with the http.Client rather than
// passing the client on each call because:
//  1. Client configuration (proxy, timeout) should be consistent
//  2. Connection pooling works better with a shared client
//  3. Easier to test with httptest servers
type Client struct {
	// httpClient performs the probe requests.
	httpClient *http.Client

	// host is the bucket host, including scheme.
	host string

	// userAgent is the User-Agent header sent with each probe.
	userAgent string

	// logger records probe failures at debug level.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHost points the client at a different bucket host, for example an
// internal mirror. The host must include the scheme and no trailing slash.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = host
	}
}

// WithHTTPClient replaces the underlying HTTP client. Use NewHTTPClient
// to build one with proxy and timeout settings applied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a snapshot bucket client. Without options it probes
// the public bucket through http.DefaultClient with no deadline.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		host:       DefaultHost,
		userAgent:  DefaultUserAgent,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewHTTPClient builds the HTTP client shared by bucket probes and feed
// requests: an optional SOCKS5 proxy transport plus an optional overall
// request deadline.
//
// A zero timeout leaves requests without a deadline, so one stalled
// probe stalls the whole scan. That is the conservative default: a slow
// corporate proxy should surface as slowness, not as a wall of "-"
// cells that look like missing archives.
func NewHTTPClient(proxyAddress string, timeout time.Duration) (*http.Client, error) {
	transport := http.DefaultTransport

	if proxyAddress != "" {
		// nil auth because SOCKS5 proxies in the wild rarely require it;
		// authenticated setups can front this with a local forwarder.
		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		transport = &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				// proxy.SOCKS5 returns a ContextDialer since x/net
				// added it, but the interface still only promises Dial.
				if cd, ok := dialer.(proxy.ContextDialer); ok {
					return cd.DialContext(ctx, network, addr)
				}
				return dialer.Dial(network, addr)
			},
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}

// Platforms returns the supported platforms in their fixed column order.
func (c *Client) Platforms() []model.Platform {
	return model.SupportedPlatforms()
}

// CanDownload reports whether the snapshot archive for platform at
// revision exists in the bucket.
//
// Any failure to complete the request counts as unavailable; at the
// report's granularity a missing archive and an unreachable bucket are
// the same "-" cell. Run with --verbose to see the underlying errors.
func (c *Client) CanDownload(ctx context.Context, platform model.Platform, revision model.Revision) bool {
	url := DownloadURL(c.host, platform, revision)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		c.logger.Debug("failed to build probe request", "url", url, "error", err)
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("probe request failed", "url", url, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("snapshot missing",
			"platform", platform,
			"revision", revision,
			"status", resp.StatusCode,
		)
		return false
	}

	return true
}
