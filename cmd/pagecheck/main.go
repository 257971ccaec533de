package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecheck"
	"github.com/fwojciec/pagecheck/crawl"
	"github.com/fwojciec/pagecheck/goquery"
	pchttp "github.com/fwojciec/pagecheck/http"
	"github.com/fwojciec/pagecheck/inspect"
	"github.com/fwojciec/pagecheck/languagetool"
	pcslog "github.com/fwojciec/pagecheck/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when a URL list file is given as "-".
	Stdin io.Reader

	// Services for end-to-end testing. Run builds real ones when nil.
	Fetcher pagecheck.Fetcher
	Grammar pagecheck.GrammarService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagecheck"),
		kong.Description("Check web pages for linked pages, duplicated content and typos"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagecheck --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Format = cli.Format
	deps.Concurrency = cli.Concurrency
	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		return err
	}
	if cli.Verbose {
		fetcher = pcslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	defer fetcher.Close()

	// Wire command-specific dependencies based on command
	switch strings.Fields(kongCtx.Command())[0] {
	case "links":
		deps.Links = newLinkCollector(cli, fetcher, deps.Logger)
	case "dupes":
		deps.Duplicates = &inspect.DuplicateChecker{
			Fetcher:   fetcher,
			Extractor: goquery.NewExtractor(),
		}
	case "typos":
		grammar := m.Grammar
		if grammar == nil {
			grammar = languagetool.NewClient(
				languagetool.WithEndpoint(cli.Typos.LanguageToolURL),
				languagetool.WithCredentials(cli.Typos.Username, cli.Typos.APIKey),
			)
		}
		if cli.Verbose {
			grammar = pcslog.NewLoggingGrammarService(grammar, deps.Logger)
		}
		deps.Typos = &inspect.TypoChecker{
			Fetcher:          fetcher,
			Extractor:        goquery.NewExtractor(),
			Grammar:          grammar,
			ChunkSize:        cli.Typos.ChunkSize,
			ChunkConcurrency: cli.Typos.ChunkConcurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the injected fetcher, a direct fetcher, or the proxy
// relay configured from --proxy.
func (m *Main) newFetcher(cli *CLI) (pagecheck.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cli.Direct {
		return pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout)), nil
	}

	endpoints := pchttp.DefaultEndpoints()
	if len(cli.Proxy) > 0 {
		endpoints = make([]pchttp.Endpoint, 0, len(cli.Proxy))
		for _, p := range cli.Proxy {
			ep, err := pchttp.ParseEndpoint(p)
			if err != nil {
				return nil, err
			}
			endpoints = append(endpoints, ep)
		}
	}
	return pchttp.NewRelay(endpoints, pchttp.WithTimeout(cli.Timeout)), nil
}

func newLinkCollector(cli *CLI, fetcher pagecheck.Fetcher, logger *slog.Logger) pagecheck.LinkCollector {
	collector := &crawl.Collector{
		Fetcher:     fetcher,
		Selector:    goquery.NewLinkSelector(),
		Concurrency: cli.Concurrency,
	}
	if cli.RPS > 0 {
		collector.RateLimiter = crawl.NewDomainLimiter(cli.RPS)
	}

	var links pagecheck.LinkCollector = collector
	if cli.Links.Depth > 1 {
		links = &crawl.Walker{
			Collector: collector,
			MaxDepth:  cli.Links.Depth,
			MaxPages:  cli.Links.MaxPages,
		}
	}
	if cli.Verbose {
		links = pcslog.NewLoggingLinkCollector(links, logger)
	}
	return links
}
