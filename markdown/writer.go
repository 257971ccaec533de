// Package markdown renders pagecheck reports as Markdown documents.
package markdown

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/pagecheck"
	"github.com/nao1215/markdown"
)

// Writer renders reports to an io.Writer.
type Writer struct {
	out io.Writer
}

// NewWriter creates a Writer that outputs to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteLinks renders a link collection. Dropped links are listed in a
// table when showDropped is set.
func (w *Writer) WriteLinks(report *pagecheck.LinkReport, showDropped bool) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Links")
	md.PlainText("")
	md.PlainTextf("Base page: %s", report.BaseURL)
	md.PlainText("")

	if len(report.Pages) == 0 {
		md.Note("No same-origin pages found.")
	} else {
		md.PlainTextf("%d page(s) found.", len(report.Pages))
		md.PlainText("")
		md.BulletList(report.Pages...)
	}
	md.PlainText("")

	if showDropped && len(report.Dropped) > 0 {
		md.H2("Dropped links")
		md.PlainText("")

		rows := make([][]string, len(report.Dropped))
		for i, d := range report.Dropped {
			rows[i] = []string{cell(d.Href), cell(orDash(d.URL)), string(d.Reason)}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Href", "URL", "Reason"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return md.Build()
}

// WriteDuplicates renders duplicate check results, one section per URL.
func (w *Writer) WriteDuplicates(results []pagecheck.Result[*pagecheck.DuplicateReport]) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Duplicate content")
	md.PlainText("")

	for _, r := range results {
		md.H2(r.URL)
		md.PlainText("")

		switch {
		case r.Err != nil:
			md.Cautionf("Check failed: %s", pagecheck.ErrorDetail(r.Err))
		case r.Value.Empty():
			md.Note("No content found.")
		case len(r.Value.Groups) == 0:
			md.Tip(fmt.Sprintf("No duplicates among %d element(s).", r.Value.Elements))
		default:
			rows := make([][]string, len(r.Value.Groups))
			for i, g := range r.Value.Groups {
				rows[i] = []string{g.Tag, cell(g.Text), joinInts(g.Positions)}
			}
			md.Warningf("%d duplicated block(s) among %d element(s).", len(r.Value.Groups), r.Value.Elements)
			md.PlainText("")
			md.Table(markdown.TableSet{
				Header: []string{"Tag", "Text", "Positions"},
				Rows:   rows,
			})
		}
		md.PlainText("")
	}

	return md.Build()
}

// WriteTypos renders grammar check results, one section per URL.
func (w *Writer) WriteTypos(results []pagecheck.Result[*pagecheck.TypoReport]) error {
	md := markdown.NewMarkdown(w.out)

	md.H1("Spelling and grammar")
	md.PlainText("")

	for _, r := range results {
		md.H2(r.URL)
		md.PlainText("")

		switch {
		case r.Err != nil:
			md.Cautionf("Check failed: %s", pagecheck.ErrorDetail(r.Err))
		case r.Value.Empty():
			md.Note("No text found.")
		case len(r.Value.Matches) == 0:
			md.Tip(fmt.Sprintf("No issues found (%s).", r.Value.Language))
		default:
			rows := make([][]string, len(r.Value.Matches))
			for i, m := range r.Value.Matches {
				rows[i] = []string{cell(m.Word), cell(orDash(m.SuggestionText())), cell(orDash(m.Message))}
			}
			md.Table(markdown.TableSet{
				Header: []string{"Word", "Suggestions", "Message"},
				Rows:   rows,
			})
		}
		md.PlainText("")
	}

	return md.Build()
}

// cell keeps table cells on one line and escapes column separators.
func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
