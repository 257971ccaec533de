package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecheck"
)

var _ pagecheck.LinkSelector = (*LinkSelector)(nil)

// LinkSelector extracts anchor targets from HTML.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// Hrefs parses HTML and returns the href of every anchor in document order.
// Anchors without an href, or with an empty one, are skipped.
// Values are returned as written; resolution is left to the caller.
func (s *LinkSelector) Hrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "failed to parse HTML: %v", err)
	}

	var hrefs []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		hrefs = append(hrefs, href)
	})

	return hrefs, nil
}
