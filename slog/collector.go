package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecheck"
)

// Ensure LoggingLinkCollector implements pagecheck.LinkCollector.
var _ pagecheck.LinkCollector = (*LoggingLinkCollector)(nil)

// LoggingLinkCollector wraps a LinkCollector and logs every dropped link
// at debug level along with a summary of the collection.
type LoggingLinkCollector struct {
	next   pagecheck.LinkCollector
	logger *slog.Logger
}

// NewLoggingLinkCollector creates a new LoggingLinkCollector.
func NewLoggingLinkCollector(next pagecheck.LinkCollector, logger *slog.Logger) *LoggingLinkCollector {
	return &LoggingLinkCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the outcome.
func (c *LoggingLinkCollector) Collect(ctx context.Context, baseURL string) (report *pagecheck.LinkReport, err error) {
	defer func(begin time.Time) {
		var pages, dropped int
		if report != nil {
			pages, dropped = len(report.Pages), len(report.Dropped)
			for _, d := range report.Dropped {
				c.logger.Debug("link dropped",
					"href", d.Href,
					"url", d.URL,
					"reason", d.Reason,
					"err", d.Err,
				)
			}
		}
		c.logger.Info("collect",
			"url", baseURL,
			"pages", pages,
			"dropped", dropped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx, baseURL)
}
