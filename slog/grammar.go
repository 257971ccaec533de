package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagecheck"
)

// Ensure LoggingGrammarService implements pagecheck.GrammarService.
var _ pagecheck.GrammarService = (*LoggingGrammarService)(nil)

// LoggingGrammarService wraps a GrammarService with request logging.
type LoggingGrammarService struct {
	next   pagecheck.GrammarService
	logger *slog.Logger
}

// NewLoggingGrammarService creates a new LoggingGrammarService.
func NewLoggingGrammarService(next pagecheck.GrammarService, logger *slog.Logger) *LoggingGrammarService {
	return &LoggingGrammarService{next: next, logger: logger}
}

// Check logs the submitted chunk size and match count.
func (s *LoggingGrammarService) Check(ctx context.Context, text string, language string) (matches []pagecheck.TypoMatch, err error) {
	defer func(begin time.Time) {
		s.logger.Info("grammar check",
			"language", language,
			"chars", utf8.RuneCountInString(text),
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Check(ctx, text, language)
}
