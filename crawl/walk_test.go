package crawl_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/crawl"
	"github.com/fwojciec/pagecheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSite wraps site and records how often each URL is fetched.
type countingSite struct {
	pages site
	mu    sync.Mutex
	hits  map[string]int
}

func newCountingSite(pages site) *countingSite {
	return &countingSite{pages: pages, hits: make(map[string]int)}
}

func (s *countingSite) fetcher() *mock.Fetcher {
	inner := s.pages.fetcher()
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			s.mu.Lock()
			s.hits[url]++
			s.mu.Unlock()
			return inner.Fetch(ctx, url)
		},
	}
}

func TestWalker_Collect(t *testing.T) {
	t.Parallel()

	pages := site{
		"https://ex.com/":         "/a /b",
		"https://ex.com/a":        "/ /a1 /b",
		"https://ex.com/b":        "/b1 /missing",
		"https://ex.com/a1":       "/a2",
		"https://ex.com/b1":       "",
		"https://ex.com/a2":       "",
		"https://ex.com/detached": "",
	}

	t.Run("depth one matches a single collection", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 1}

		report, err := w.Collect(context.Background(), "https://ex.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://ex.com/a", "https://ex.com/b"}, report.Pages)
	})

	t.Run("walks levels breadth-first without repeats", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 2}

		report, err := w.Collect(context.Background(), "https://ex.com/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://ex.com/a",
			"https://ex.com/b",
			"https://ex.com/a1",
			"https://ex.com/b1",
		}, report.Pages)

		var unreachable []string
		for _, d := range report.Dropped {
			if d.Reason == pagecheck.DropUnreachable {
				unreachable = append(unreachable, d.URL)
			}
		}
		assert.Equal(t, []string{"https://ex.com/missing"}, unreachable)
	})

	t.Run("follows deeper levels", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 5}

		report, err := w.Collect(context.Background(), "https://ex.com/")

		require.NoError(t, err)
		assert.Contains(t, report.Pages, "https://ex.com/a2")
		assert.NotContains(t, report.Pages, "https://ex.com/detached")
		assert.NotContains(t, report.Pages, "https://ex.com/")
	})

	t.Run("checks each linked page once", func(t *testing.T) {
		t.Parallel()

		s := newCountingSite(pages)
		c := &crawl.Collector{Fetcher: s.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 2}

		_, err := w.Collect(context.Background(), "https://ex.com/")

		require.NoError(t, err)
		// One reachability check plus one expansion fetch.
		assert.Equal(t, 2, s.hits["https://ex.com/b"])
		// Reachability check only; level 2 pages are not expanded.
		assert.Equal(t, 1, s.hits["https://ex.com/a1"])
	})

	t.Run("stops at max pages", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 3, MaxPages: 3}

		report, err := w.Collect(context.Background(), "https://ex.com/")

		require.NoError(t, err)
		assert.Len(t, report.Pages, 3)
	})

	t.Run("fails when the base page fails", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Collector{Fetcher: site{}.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 2}

		_, err := w.Collect(context.Background(), "https://ex.com/")

		assert.Error(t, err)
	})

	t.Run("honors cancellation between pages", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf()}
		w := &crawl.Walker{Collector: c, MaxDepth: 2}

		_, err := w.Collect(ctx, "https://ex.com/")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWalker_Collect_wide_site(t *testing.T) {
	t.Parallel()

	pages := site{}
	var root string
	for i := range 50 {
		u := fmt.Sprintf("/p%d", i)
		root += u + " "
		pages["https://ex.com"+u] = "/ " + root
	}
	pages["https://ex.com/"] = root

	c := &crawl.Collector{Fetcher: pages.fetcher(), Selector: linksOf(), Concurrency: 8}
	w := &crawl.Walker{Collector: c, MaxDepth: 3}

	report, err := w.Collect(context.Background(), "https://ex.com/")

	require.NoError(t, err)
	assert.Len(t, report.Pages, 50)
	assert.Equal(t, "https://ex.com/p0", report.Pages[0])
}
