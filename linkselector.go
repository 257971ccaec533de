package pagecheck

import "context"

// LinkSelector extracts raw hyperlink targets from HTML.
type LinkSelector interface {
	// Hrefs parses HTML and returns the non-empty href attribute of every
	// anchor in document order. Values are returned unresolved.
	Hrefs(html string) ([]string, error)
}

// DropReason explains why a discovered link is absent from collected pages.
type DropReason string

// Drop reasons recorded by link collection.
const (
	DropMalformed   DropReason = "malformed"
	DropCrossOrigin DropReason = "cross-origin"
	DropExtension   DropReason = "excluded-extension"
	DropFragment    DropReason = "fragment"
	DropDuplicate   DropReason = "duplicate"
	DropUnreachable DropReason = "unreachable"
)

// ExcludedExtensions lists URL suffixes that never count as pages.
// Matching is case-insensitive against the whole resolved URL.
var ExcludedExtensions = []string{".webp", ".jpg", ".png", ".pdf", ".zip", ".docx", ".jpeg"}

// DroppedLink records a discovered link that did not make it into the result.
// URL is empty when the href could not be resolved.
type DroppedLink struct {
	Href   string     `json:"href"`
	URL    string     `json:"url,omitempty"`
	Reason DropReason `json:"reason"`
	Err    error      `json:"-"`
}

// LinkReport holds the outcome of collecting links from a base page.
type LinkReport struct {
	BaseURL string `json:"baseUrl"`

	// Pages are the reachable same-origin URLs in first-discovery order.
	Pages []string `json:"pages"`

	// Dropped lists every link filtered out, in discovery order.
	Dropped []DroppedLink `json:"dropped,omitempty"`
}

// LinkCollector discovers reachable same-origin pages linked from a page.
type LinkCollector interface {
	// Collect fetches baseURL and returns the linked pages that pass
	// filtering and respond to a reachability fetch.
	Collect(ctx context.Context, baseURL string) (*LinkReport, error)
}
