package mock

import "github.com/fwojciec/pagecheck"

var _ pagecheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagecheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]pagecheck.ContentElement, error)
}

func (e *Extractor) Extract(html string) ([]pagecheck.ContentElement, error) {
	return e.ExtractFn(html)
}
