package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fwojciec/pagecheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Format is one of "text", "markdown" or "json".
	Format string

	// Concurrency bounds how many URLs a batch command processes at once.
	Concurrency int

	Links      pagecheck.LinkCollector
	Duplicates pagecheck.DuplicateChecker
	Typos      pagecheck.TypoChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout     time.Duration `default:"10s" env:"PAGECHECK_TIMEOUT" help:"Per-request fetch timeout"`
	Direct      bool          `help:"Fetch pages directly instead of through the proxy relay"`
	Proxy       []string      `sep:"," env:"PAGECHECK_PROXIES" help:"Proxy URL prefix, tried in order (repeatable). Append #json for endpoints that wrap the page in a JSON contents field"`
	Format      string        `enum:"text,markdown,json" default:"text" help:"Output format (text, markdown, json)"`
	Verbose     bool          `short:"v" help:"Log requests to stderr"`
	Concurrency int           `short:"c" default:"1" help:"URLs processed in parallel"`
	RPS         float64       `name:"rps" default:"0" help:"Link checks per second per host (0 means unlimited)"`

	Links LinksCmd `cmd:"" help:"List reachable same-origin pages linked from a page"`
	Dupes DupesCmd `cmd:"" help:"Report duplicated content blocks on pages"`
	Typos TyposCmd `cmd:"" help:"Report spelling and grammar suggestions for pages"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL         string `arg:"" help:"Base page URL"`
	Depth       int    `short:"d" default:"1" help:"Link levels to follow"`
	MaxPages    int    `default:"1000" help:"Maximum pages to list when following more than one level"`
	ShowDropped bool   `help:"Also list discovered links that were filtered out, with the reason"`
}

// DupesCmd is the "dupes" subcommand.
type DupesCmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"Page URLs"`
	File string   `short:"f" help:"Read newline-separated URLs from a file (- for stdin)"`
}

// TyposCmd is the "typos" subcommand.
type TyposCmd struct {
	URLs             []string `arg:"" optional:"" name:"url" help:"Page URLs"`
	File             string   `short:"f" help:"Read newline-separated URLs from a file (- for stdin)"`
	Language         string   `short:"l" default:"en-US" help:"Language code for the grammar service"`
	ChunkSize        int      `default:"2000" help:"Characters per grammar request"`
	ChunkConcurrency int      `default:"1" help:"Grammar requests in parallel per page"`
	LanguageToolURL  string   `name:"languagetool-url" default:"https://api.languagetool.org/v2/check" env:"LANGUAGETOOL_URL" help:"LanguageTool check endpoint"`
	Username         string   `name:"languagetool-username" env:"LANGUAGETOOL_USERNAME" help:"LanguageTool premium username"`
	APIKey           string   `name:"languagetool-api-key" env:"LANGUAGETOOL_API_KEY" help:"LanguageTool premium API key"`
}

// readURLs merges positional URLs with those listed in file.
func readURLs(stdin io.Reader, args []string, file string) ([]string, error) {
	urls := append([]string(nil), args...)

	if file != "" {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("read URL list: %w", err)
		}
		urls = append(urls, pagecheck.ParseURLList(string(data))...)
	}

	if len(urls) == 0 {
		return nil, pagecheck.Errorf(pagecheck.EINVALID, "no URLs given; pass URLs as arguments or use --file")
	}
	return urls, nil
}

// batchError summarizes failed URLs, or returns nil when all succeeded.
func batchError[T any](results []pagecheck.Result[T]) error {
	var failed int
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d URL(s) failed", failed, len(results))
}
