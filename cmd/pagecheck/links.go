package main

import (
	"fmt"

	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/markdown"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	report, err := deps.Links.Collect(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagecheck.ErrorDetail(err))
		return err
	}

	switch deps.Format {
	case formatJSON:
		if !c.ShowDropped {
			trimmed := *report
			trimmed.Dropped = nil
			report = &trimmed
		}
		return writeJSON(deps.Stdout, report)
	case formatMarkdown:
		return markdown.NewWriter(deps.Stdout).WriteLinks(report, c.ShowDropped)
	}

	if len(report.Pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No valid pages found.")
	}
	for _, p := range report.Pages {
		fmt.Fprintln(deps.Stdout, p)
	}

	if c.ShowDropped && len(report.Dropped) > 0 {
		fmt.Fprintf(deps.Stdout, "\nDropped %d link(s):\n", len(report.Dropped))
		for _, d := range report.Dropped {
			fmt.Fprintf(deps.Stdout, "  %-18s  %s\n", d.Reason, d.Href)
		}
	}

	return nil
}
