// Package inspect runs the per-page content checks. Each checker fetches a
// page, extracts its content elements and analyses them.
package inspect

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagecheck"
)

// Ensure DuplicateChecker implements pagecheck.DuplicateChecker at compile time.
var _ pagecheck.DuplicateChecker = (*DuplicateChecker)(nil)

// DuplicateChecker finds repeated content blocks on a page.
type DuplicateChecker struct {
	Fetcher   pagecheck.Fetcher
	Extractor pagecheck.Extractor
}

// Check fetches url and reports the content blocks that appear more than once.
func (c *DuplicateChecker) Check(ctx context.Context, url string) (*pagecheck.DuplicateReport, error) {
	elements, err := fetchElements(ctx, c.Fetcher, c.Extractor, url)
	if err != nil {
		return nil, err
	}

	report := &pagecheck.DuplicateReport{
		URL:      url,
		Elements: len(elements),
		Groups:   pagecheck.DetectDuplicates(elements),
	}
	if len(elements) > 0 {
		report.ContentHash = ContentHash(pagecheck.JoinText(elements))
	}
	return report, nil
}

// ContentHash fingerprints page text with xxhash.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

func fetchElements(ctx context.Context, fetcher pagecheck.Fetcher, extractor pagecheck.Extractor, url string) ([]pagecheck.ContentElement, error) {
	if url == "" {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "URL required")
	}

	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	elements, err := extractor.Extract(html)
	if err != nil {
		return nil, fmt.Errorf("extract content: %w", err)
	}
	return elements, nil
}
