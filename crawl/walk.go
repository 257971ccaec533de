package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagecheck"
)

// Frontier configuration for site walks.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// DefaultMaxPages limits the number of pages a walk returns to prevent runaway crawls.
	DefaultMaxPages = 1000
)

// Ensure Walker implements pagecheck.LinkCollector at compile time.
var _ pagecheck.LinkCollector = (*Walker)(nil)

// Walker repeats link collection breadth-first across a site.
//
// Level 1 is the pages linked from the base page. Each further level
// collects the links of the previous level's pages. Pages found at any level
// are returned once, in discovery order. Links to pages already discovered
// are not fetched again for reachability.
type Walker struct {
	Collector *Collector

	// MaxDepth is the number of link levels to follow.
	// Values below 2 return the Collector's result unchanged.
	MaxDepth int

	// MaxPages caps the number of pages returned.
	// Defaults to DefaultMaxPages.
	MaxPages int
}

// Collect walks the site from baseURL. A failure to collect the base page is
// returned as the error; failures on deeper pages only stop expansion of
// that page. The base page itself is never listed among the results.
func (w *Walker) Collect(ctx context.Context, baseURL string) (*pagecheck.LinkReport, error) {
	if w.MaxDepth < 2 {
		return w.Collector.Collect(ctx, baseURL)
	}

	maxPages := w.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(baseURL)
	depth := map[string]int{baseURL: 0}

	result := &pagecheck.LinkReport{BaseURL: baseURL}

walk:
	for {
		page, ok := frontier.Pop()
		if !ok {
			break
		}
		if depth[page] >= w.MaxDepth {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report, err := w.Collector.collect(ctx, page, frontier.Seen)
		if err != nil {
			if page == baseURL {
				return nil, err
			}
			result.Dropped = append(result.Dropped, pagecheck.DroppedLink{
				Href:   page,
				URL:    page,
				Reason: pagecheck.DropUnreachable,
				Err:    fmt.Errorf("expand page: %w", err),
			})
			continue
		}

		result.Dropped = append(result.Dropped, report.Dropped...)
		for _, p := range report.Pages {
			if !frontier.Push(p) {
				continue
			}
			depth[p] = depth[page] + 1
			result.Pages = append(result.Pages, p)
			if len(result.Pages) >= maxPages {
				break walk
			}
		}
	}

	return result, nil
}
