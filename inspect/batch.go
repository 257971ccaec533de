package inspect

import (
	"context"

	"github.com/fwojciec/pagecheck"
	"golang.org/x/sync/errgroup"
)

// RunBatch applies fn to every URL and returns one result per URL in input
// order. A failing URL never stops the others. Concurrency below 2 runs the
// URLs strictly one after another. Once ctx is done, URLs not yet started
// are marked with the context error.
func RunBatch[T any](ctx context.Context, urls []string, concurrency int, fn func(ctx context.Context, url string) (T, error)) []pagecheck.Result[T] {
	results := make([]pagecheck.Result[T], len(urls))

	run := func(i int) {
		results[i].URL = urls[i]
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			return
		}
		results[i].Value, results[i].Err = fn(ctx, urls[i])
	}

	if concurrency < 2 {
		for i := range urls {
			run(i)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := range urls {
		g.Go(func() error {
			run(i)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
