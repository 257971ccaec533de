package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/pagecheck"
	"golang.org/x/time/rate"
)

var _ pagecheck.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host using token buckets.
// Each host gets its own bucket, so checks against different hosts never
// wait on each other. A non-positive rate disables limiting.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per host with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   1,
	}
}

// Wait blocks until the host's bucket allows another request.
// Host names are compared case-insensitively.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = strings.ToLower(domain)

	d.mu.Lock()
	bucket, ok := d.buckets[domain]
	if !ok {
		bucket = rate.NewLimiter(d.limit, d.burst)
		d.buckets[domain] = bucket
	}
	d.mu.Unlock()

	return bucket.Wait(ctx)
}

// waitFor waits on limiter for the host of rawURL. A nil limiter or an
// unparseable URL never blocks.
func waitFor(ctx context.Context, limiter pagecheck.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	return limiter.Wait(ctx, u.Host)
}
