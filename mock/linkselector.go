package mock

import (
	"context"

	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of pagecheck.LinkSelector.
type LinkSelector struct {
	HrefsFn func(html string) ([]string, error)
}

func (s *LinkSelector) Hrefs(html string) ([]string, error) {
	return s.HrefsFn(html)
}

var _ pagecheck.LinkCollector = (*LinkCollector)(nil)

// LinkCollector is a mock implementation of pagecheck.LinkCollector.
type LinkCollector struct {
	CollectFn func(ctx context.Context, baseURL string) (*pagecheck.LinkReport, error)
}

func (c *LinkCollector) Collect(ctx context.Context, baseURL string) (*pagecheck.LinkReport, error) {
	return c.CollectFn(ctx, baseURL)
}
