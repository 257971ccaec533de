package pagecheck

import (
	"context"
	"strings"
)

// DuplicateReport holds the outcome of a duplicate check for one page.
type DuplicateReport struct {
	URL string `json:"url"`

	// Elements is the number of content elements extracted from the page.
	Elements int `json:"elements"`

	// ContentHash fingerprints the joined element text.
	ContentHash string `json:"contentHash,omitempty"`

	Groups []DuplicateGroup `json:"groups"`
}

// Empty reports whether the page had no content to check.
func (r *DuplicateReport) Empty() bool {
	return r.Elements == 0
}

// TypoReport holds the outcome of a grammar check for one page.
type TypoReport struct {
	URL      string      `json:"url"`
	Language string      `json:"language"`
	Chunks   int         `json:"chunks"`
	Matches  []TypoMatch `json:"matches"`
}

// Empty reports whether no text was found on the page.
func (r *TypoReport) Empty() bool {
	return r.Chunks == 0
}

// DuplicateChecker reports duplicated content blocks on a page.
type DuplicateChecker interface {
	Check(ctx context.Context, url string) (*DuplicateReport, error)
}

// TypoChecker reports spelling and grammar suggestions for a page.
type TypoChecker interface {
	Check(ctx context.Context, url string, language string) (*TypoReport, error)
}

// Result records the outcome of processing one URL in a batch.
// Exactly one of Value and Err is meaningful.
type Result[T any] struct {
	URL   string
	Value T
	Err   error
}

// OK reports whether the URL was processed without error.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// ParseURLList splits newline-separated input into URLs.
// Lines are trimmed and blank lines are skipped.
func ParseURLList(s string) []string {
	var urls []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
