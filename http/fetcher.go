// Package http provides HTTP implementations of pagecheck.Fetcher: a direct
// fetcher that requests pages from their origin, and a Relay that routes
// requests through an ordered list of CORS proxy endpoints.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagecheck"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagecheck.Fetcher at compile time.
var _ pagecheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using direct HTTP requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher or a Relay.
type Option func(*config)

type config struct {
	client  *http.Client
	timeout time.Duration
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
// Ignored when WithClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}
	return c
}

// NewFetcher creates a new direct HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	c := newConfig(opts)
	return &Fetcher{
		client:  c.client,
		timeout: c.timeout,
	}
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := get(ctx, f.client, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// get performs a GET request and returns the body of a 2xx response.
func get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
