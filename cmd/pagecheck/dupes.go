package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/inspect"
	"github.com/fwojciec/pagecheck/markdown"
)

// Run executes the dupes command.
func (c *DupesCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(deps.Stdin, c.URLs, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecheck.ErrorDetail(err))
		return err
	}

	results := inspect.RunBatch(deps.Ctx, urls, deps.Concurrency, deps.Duplicates.Check)

	switch deps.Format {
	case formatJSON:
		err = writeJSON(deps.Stdout, jsonResults(results))
	case formatMarkdown:
		err = markdown.NewWriter(deps.Stdout).WriteDuplicates(results)
	default:
		writeDuplicatesText(deps, results)
	}
	if err != nil {
		return err
	}

	return batchError(results)
}

func writeDuplicatesText(deps *Dependencies, results []pagecheck.Result[*pagecheck.DuplicateReport]) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintln(deps.Stdout, r.URL)

		switch {
		case r.Err != nil:
			fmt.Fprintf(deps.Stdout, "  error: %s\n", pagecheck.ErrorDetail(r.Err))
		case r.Value.Empty():
			fmt.Fprintln(deps.Stdout, "  No content found.")
		case len(r.Value.Groups) == 0:
			fmt.Fprintln(deps.Stdout, "  No duplicates found.")
		default:
			for _, g := range r.Value.Groups {
				fmt.Fprintf(deps.Stdout, "  %s: %s\n", strings.ToUpper(g.Tag), g.Text)
				fmt.Fprintf(deps.Stdout, "    positions: %s\n", joinPositions(g.Positions))
			}
		}
	}
}

func joinPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
