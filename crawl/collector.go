// Package crawl discovers same-origin pages linked from a base page.
// It coordinates fetching, link extraction, filtering and reachability
// checks, and can repeat discovery breadth-first across a site.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagecheck"
	"golang.org/x/sync/errgroup"
)

// Ensure Collector implements pagecheck.LinkCollector at compile time.
var _ pagecheck.LinkCollector = (*Collector)(nil)

// Collector gathers the reachable same-origin pages linked from a page.
type Collector struct {
	Fetcher  pagecheck.Fetcher
	Selector pagecheck.LinkSelector

	// RateLimiter, if set, is waited on per host before each
	// reachability fetch.
	RateLimiter pagecheck.DomainLimiter

	// Concurrency bounds parallel reachability fetches.
	// Values below 2 check links one at a time.
	Concurrency int
}

// Collect fetches baseURL, filters its links and keeps those that can be
// fetched. Links that fail the reachability fetch are recorded as dropped
// with DropUnreachable; they never fail the collection.
func (c *Collector) Collect(ctx context.Context, baseURL string) (*pagecheck.LinkReport, error) {
	return c.collect(ctx, baseURL, nil)
}

// collect is Collect with an optional skip predicate. Candidates for which
// skip reports true are left out of the report without being fetched.
func (c *Collector) collect(ctx context.Context, baseURL string, skip func(string) bool) (*pagecheck.LinkReport, error) {
	if baseURL == "" {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "base URL required")
	}
	if _, err := parseBase(baseURL); err != nil {
		return nil, err
	}

	html, err := c.Fetcher.Fetch(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch base page: %w", err)
	}

	hrefs, err := c.Selector.Hrefs(html)
	if err != nil {
		return nil, fmt.Errorf("extract links: %w", err)
	}

	candidates, dropped, err := FilterLinks(baseURL, hrefs)
	if err != nil {
		return nil, err
	}

	if skip != nil {
		kept := candidates[:0]
		for _, u := range candidates {
			if !skip(u) {
				kept = append(kept, u)
			}
		}
		candidates = kept
	}

	report := &pagecheck.LinkReport{
		BaseURL: baseURL,
		Dropped: dropped,
	}

	errs, err := c.checkAll(ctx, candidates)
	if err != nil {
		return nil, err
	}
	for i, u := range candidates {
		if errs[i] != nil {
			report.Dropped = append(report.Dropped, pagecheck.DroppedLink{
				Href:   u,
				URL:    u,
				Reason: pagecheck.DropUnreachable,
				Err:    errs[i],
			})
			continue
		}
		report.Pages = append(report.Pages, u)
	}

	return report, nil
}

// checkAll fetches each URL and returns the per-URL fetch errors by position.
// The returned error is non-nil only when ctx is canceled.
func (c *Collector) checkAll(ctx context.Context, urls []string) ([]error, error) {
	errs := make([]error, len(urls))

	if c.Concurrency < 2 {
		for i, u := range urls {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			errs[i] = c.check(ctx, u)
		}
		return errs, ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, u := range urls {
		g.Go(func() error {
			errs[i] = c.check(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return errs, ctx.Err()
}

// check performs a reachability fetch, discarding the body.
func (c *Collector) check(ctx context.Context, rawURL string) error {
	if err := waitFor(ctx, c.RateLimiter, rawURL); err != nil {
		return err
	}
	_, err := c.Fetcher.Fetch(ctx, rawURL)
	return err
}
