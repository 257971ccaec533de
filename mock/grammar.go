package mock

import (
	"context"

	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.GrammarService = (*GrammarService)(nil)

// GrammarService is a mock implementation of pagecheck.GrammarService.
type GrammarService struct {
	CheckFn func(ctx context.Context, text string, language string) ([]pagecheck.TypoMatch, error)
}

func (s *GrammarService) Check(ctx context.Context, text string, language string) ([]pagecheck.TypoMatch, error) {
	return s.CheckFn(ctx, text, language)
}
