package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-querystring/query"
	"github.com/pfrederiksen/firstcycling/internal/logger"
)

const (
	DefaultBaseURL   = "https://firstcycling.com"
	DefaultUserAgent = "firstcycling-go/1.0 (github.com/pfrederiksen/firstcycling)"
	DefaultTimeout   = 30 * time.Second

	// DefaultMaxRetries bounds retry attempts for transient failures.
	DefaultMaxRetries = 3

	defaultRetryInterval = 500 * time.Millisecond
)

// RaceQuery holds the parameters a race.php request accepts beyond the
// race id. Field meanings follow the site's query string:
//
//	y - edition year
//	k - page tab (classification code, or W/X/Y/Z for the statistics
//	    tabs, 8/9 for startlists)
//	j - classification code for the year-by-year tab
//	l - classification code for edition results
//	e - stage number (zero-padded), or "all" for stage profiles
type RaceQuery struct {
	Year           int    `url:"y,omitempty"`
	Tab            string `url:"k,omitempty"`
	TabFilter      int    `url:"j,omitempty"`
	Classification int    `url:"l,omitempty"`
	Stage          string `url:"e,omitempty"`
}

// Client fetches pages from firstcycling.com
type Client struct {
	baseURL       string
	userAgent     string
	httpClient    *http.Client
	cache         *PageCache
	maxRetries    uint64
	retryInterval time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the site base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache attaches a page cache.
func WithCache(cache *PageCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithMaxRetries sets the number of retries for transient failures.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryInterval sets the initial backoff interval between retries.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.retryInterval = d }
}

// New creates a Client with default settings, modified by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		maxRetries:    DefaultMaxRetries,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RaceEndpoint fetches race.php for the given race id and query parameters
// and returns the raw HTML.
func (c *Client) RaceEndpoint(raceID int, q RaceQuery) (string, error) {
	values, err := query.Values(q)
	if err != nil {
		return "", fmt.Errorf("encoding race query: %w", err)
	}
	values.Set("r", strconv.Itoa(raceID))

	return c.fetch("/race.php?" + values.Encode())
}

// SearchRace fetches the race search page for the given query, year and
// category and returns the raw HTML. Year 0 means the current year;
// an empty category defaults to "1" (WorldTour).
func (c *Client) SearchRace(raceQuery string, year int, category string) (string, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if category == "" {
		category = "1"
	}

	values := url.Values{}
	values.Set("s", raceQuery)
	values.Set("y", strconv.Itoa(year))
	values.Set("cat", category)

	return c.fetch("/search.php?" + values.Encode())
}

// fetch GETs baseURL+path, going through the cache when one is attached
// and retrying transient failures with exponential backoff.
func (c *Client) fetch(path string) (string, error) {
	fullURL := c.baseURL + path

	if c.cache != nil {
		if html, ok := c.cache.Get(fullURL); ok {
			logger.IncrCounter("client.cache_hit")
			logger.Debug("cache hit", logger.Fields{"url": fullURL})
			return html, nil
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInterval

	start := time.Now()
	html, err := backoff.RetryWithData(func() (string, error) {
		return c.get(fullURL)
	}, backoff.WithMaxRetries(bo, c.maxRetries))
	if err != nil {
		return "", err
	}
	logger.RecordTiming("client.fetch", time.Since(start))

	if c.cache != nil {
		c.cache.Set(fullURL, html)
	}
	return html, nil
}

// get performs a single GET request. Server-side and transport errors are
// returned as retryable; client-side status codes are permanent.
func (c *Client) get(fullURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	default:
		return "", backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
