package main

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/pagecheck"
)

// Output formats accepted by --format.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// jsonResult is the wire form of one batch entry.
type jsonResult[T any] struct {
	URL    string `json:"url"`
	Report T      `json:"report,omitempty"`
	Error  string `json:"error,omitempty"`
}

func jsonResults[T any](results []pagecheck.Result[T]) []jsonResult[T] {
	out := make([]jsonResult[T], len(results))
	for i, r := range results {
		out[i] = jsonResult[T]{URL: r.URL, Report: r.Value}
		if r.Err != nil {
			out[i].Error = pagecheck.ErrorDetail(r.Err)
		}
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
