package pagecheck

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may go straight to the origin or through relay proxies.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
