package pagecheck

import "strings"

// ContentTags lists the elements whose text is collected from a page,
// in the order they are matched.
var ContentTags = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"}

// BoilerplateTags lists the elements removed from the main content region
// before any text is collected.
var BoilerplateTags = []string{"nav", "header", "footer", "form", "script", "style"}

// ContentElement is a heading or paragraph taken from a page's main content.
// Text is trimmed and never empty.
type ContentElement struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Extractor turns raw HTML into the ordered text blocks of its main content.
type Extractor interface {
	// Extract parses html, selects the main content region (falling back to
	// the document body), strips boilerplate, and returns heading and
	// paragraph elements in document order.
	// A page without content yields an empty slice, not an error.
	Extract(html string) ([]ContentElement, error)
}

// JoinText joins element texts with newlines into a single document.
func JoinText(elements []ContentElement) string {
	if len(elements) == 0 {
		return ""
	}

	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		parts = append(parts, el.Text)
	}
	return strings.Join(parts, "\n")
}
