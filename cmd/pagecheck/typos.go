package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/inspect"
	"github.com/fwojciec/pagecheck/markdown"
)

// Run executes the typos command.
func (c *TyposCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(deps.Stdin, c.URLs, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecheck.ErrorDetail(err))
		return err
	}

	results := inspect.RunBatch(deps.Ctx, urls, deps.Concurrency, func(ctx context.Context, url string) (*pagecheck.TypoReport, error) {
		return deps.Typos.Check(ctx, url, c.Language)
	})

	switch deps.Format {
	case formatJSON:
		err = writeJSON(deps.Stdout, jsonResults(results))
	case formatMarkdown:
		err = markdown.NewWriter(deps.Stdout).WriteTypos(results)
	default:
		writeTyposText(deps, results)
	}
	if err != nil {
		return err
	}

	return batchError(results)
}

func writeTyposText(deps *Dependencies, results []pagecheck.Result[*pagecheck.TypoReport]) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, r.URL)

		switch {
		case r.Err != nil:
			fmt.Fprintf(deps.Stdout, "  error: %s\n", pagecheck.ErrorDetail(r.Err))
		case r.Value.Empty():
			fmt.Fprintln(deps.Stdout, "  No text found on page.")
		case len(r.Value.Matches) == 0:
			fmt.Fprintln(deps.Stdout, "  No typos found.")
		default:
			for _, m := range r.Value.Matches {
				suggestions := m.SuggestionText()
				if suggestions == "" {
					suggestions = "(no suggestions)"
				}
				fmt.Fprintf(deps.Stdout, "  %s -> %s\n", m.Word, suggestions)
			}
		}
	}
}
