package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// DefaultURL is the public endpoint listing the versions currently
// served per operating system and release channel.
const DefaultURL = "https://omahaproxy.appspot.com/all.json"

// maxBodySize limits the feed response size. The real document is a few
// kilobytes; anything near this limit is not the feed.
const maxBodySize = 10 * 1024 * 1024

// Fetcher supplies (os, channel, revision) triples from the upstream
// version feed. The concrete Client talks HTTP; tests substitute stubs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]model.FeedEntry, error)
}

// osVersions mirrors one element of the feed's JSON document: an
// operating system with its per-channel version records.
type osVersions struct {
	OS       string    `json:"os"`
	Versions []version `json:"versions"`
}

// version is one channel's current release. The branch base position is
// the snapshot revision the release was cut from, transmitted as a
// string by the feed.
type version struct {
	Channel            string `json:"channel"`
	BranchBasePosition string `json:"branch_base_position"`
}

// Client fetches and filters the version feed.
type Client struct {
	// httpClient performs the feed request.
	httpClient *http.Client

	// url is the feed endpoint.
	url string

	// logger records skipped feed entries at debug level.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL points the client at a different feed endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// WithHTTPClient replaces the underlying HTTP client, typically to
// share the proxied client used for bucket probes.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a feed client. Without options it fetches the public feed
// through http.DefaultClient.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		url:        DefaultURL,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchAll retrieves the feed and returns the entries for supported
// operating systems on retained channels, in feed order.
//
// Unlike bucket probes, feed failures are hard errors: without the feed
// there is nothing to scan, so transport errors, non-success statuses,
// and malformed documents all abort the run.
func (c *Client) FetchAll(ctx context.Context) ([]model.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch revision feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFeedUnavailable, c.url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read revision feed: %w", err)
	}

	var doc []osVersions
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse revision feed: %w", err)
	}

	return c.filter(doc), nil
}

// filter keeps the entries the checker can probe: supported operating
// systems, retained channels, and an integer branch base position.
// Entries are returned in document order so report rows are stable
// across runs.
func (c *Client) filter(doc []osVersions) []model.FeedEntry {
	var entries []model.FeedEntry

	for _, os := range doc {
		if !model.SupportedFeedOS(os.OS) {
			continue
		}

		for _, v := range os.Versions {
			channel := model.Channel(v.Channel)
			if !channel.IsValid() {
				continue
			}

			revision, err := model.ParseRevision(v.BranchBasePosition)
			if err != nil {
				// The feed occasionally carries empty positions for
				// fresh releases. Skip the entry rather than failing
				// the whole fetch.
				c.logger.Debug("skipping feed entry with bad branch base position",
					"os", os.OS,
					"channel", v.Channel,
					"position", v.BranchBasePosition,
				)
				continue
			}

			entries = append(entries, model.FeedEntry{
				OS:       os.OS,
				Channel:  channel,
				Revision: revision,
			})
		}
	}

	return entries
}
