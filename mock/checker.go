package mock

import (
	"context"

	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.DuplicateChecker = (*DuplicateChecker)(nil)

// DuplicateChecker is a mock implementation of pagecheck.DuplicateChecker.
type DuplicateChecker struct {
	CheckFn func(ctx context.Context, url string) (*pagecheck.DuplicateReport, error)
}

func (c *DuplicateChecker) Check(ctx context.Context, url string) (*pagecheck.DuplicateReport, error) {
	return c.CheckFn(ctx, url)
}

var _ pagecheck.TypoChecker = (*TypoChecker)(nil)

// TypoChecker is a mock implementation of pagecheck.TypoChecker.
type TypoChecker struct {
	CheckFn func(ctx context.Context, url string, language string) (*pagecheck.TypoReport, error)
}

func (c *TypoChecker) Check(ctx context.Context, url string, language string) (*pagecheck.TypoReport, error) {
	return c.CheckFn(ctx, url, language)
}
