// Package goquery implements HTML parsing for pagecheck using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecheck"
)

// Ensure Extractor implements pagecheck.Extractor at compile time.
var _ pagecheck.Extractor = (*Extractor)(nil)

// Selectors built from the domain tag lists.
var (
	contentSelector     = strings.Join(pagecheck.ContentTags, ", ")
	boilerplateSelector = strings.Join(pagecheck.BoilerplateTags, ", ")
)

// Extractor collects heading and paragraph text from a page's main content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses HTML and returns the main content elements in document order.
//
// The region is the first <main> element, or <body> when there is none.
// Boilerplate subtrees (nav, header, footer, form, script, style) are removed
// from the region before any text is collected, so their text never appears
// even when a heading or paragraph is nested inside them.
func (e *Extractor) Extract(html string) ([]pagecheck.ContentElement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find("main").First()
	if region.Length() == 0 {
		region = doc.Find("body").First()
	}
	if region.Length() == 0 {
		return nil, nil
	}

	region.Find(boilerplateSelector).Remove()

	var elements []pagecheck.ContentElement
	region.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		elements = append(elements, pagecheck.ContentElement{
			Tag:  goquery.NodeName(sel),
			Text: text,
		})
	})

	return elements, nil
}
