package inspect

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagecheck"
	"golang.org/x/sync/errgroup"
)

// Ensure TypoChecker implements pagecheck.TypoChecker at compile time.
var _ pagecheck.TypoChecker = (*TypoChecker)(nil)

// TypoChecker submits a page's text to a grammar service in chunks.
type TypoChecker struct {
	Fetcher   pagecheck.Fetcher
	Extractor pagecheck.Extractor
	Grammar   pagecheck.GrammarService

	// ChunkSize is the maximum chunk length in characters.
	// Defaults to pagecheck.DefaultChunkSize.
	ChunkSize int

	// ChunkConcurrency bounds parallel grammar requests for one page.
	// Values below 2 submit chunks one at a time.
	ChunkConcurrency int
}

// Check fetches url and returns the grammar matches for its text, in chunk
// order. A page without text yields a report with no chunks. Any chunk
// failure fails the whole page.
func (c *TypoChecker) Check(ctx context.Context, url string, language string) (*pagecheck.TypoReport, error) {
	if language == "" {
		language = pagecheck.DefaultLanguage
	}

	elements, err := fetchElements(ctx, c.Fetcher, c.Extractor, url)
	if err != nil {
		return nil, err
	}

	size := c.ChunkSize
	if size <= 0 {
		size = pagecheck.DefaultChunkSize
	}
	chunks := pagecheck.SplitChunks(pagecheck.JoinText(elements), size)

	report := &pagecheck.TypoReport{
		URL:      url,
		Language: language,
		Chunks:   len(chunks),
	}
	if len(chunks) == 0 {
		return report, nil
	}

	perChunk, err := c.checkChunks(ctx, chunks, language)
	if err != nil {
		return nil, err
	}
	for _, matches := range perChunk {
		report.Matches = append(report.Matches, matches...)
	}
	return report, nil
}

func (c *TypoChecker) checkChunks(ctx context.Context, chunks []string, language string) ([][]pagecheck.TypoMatch, error) {
	results := make([][]pagecheck.TypoMatch, len(chunks))

	if c.ChunkConcurrency < 2 {
		for i, chunk := range chunks {
			matches, err := c.Grammar.Check(ctx, chunk, language)
			if err != nil {
				return nil, fmt.Errorf("check chunk %d of %d: %w", i+1, len(chunks), err)
			}
			results[i] = matches
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.ChunkConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			matches, err := c.Grammar.Check(gctx, chunk, language)
			if err != nil {
				return fmt.Errorf("check chunk %d of %d: %w", i+1, len(chunks), err)
			}
			results[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
