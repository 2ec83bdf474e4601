// Command docstruct crawls a documentation site and prints its inferred
// module structure as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/mjaros/docstruct"
	"github.com/mjaros/docstruct/crawl"
	"github.com/mjaros/docstruct/goquery"
	"github.com/mjaros/docstruct/htmltomarkdown"
	dshttp "github.com/mjaros/docstruct/http"
	"github.com/mjaros/docstruct/levenshtein"
	"github.com/mjaros/docstruct/readability"
	dsslog "github.com/mjaros/docstruct/slog"
	"github.com/mjaros/docstruct/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docstruct"),
		kong.Description("Infer the module structure of a documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL provided. Run 'docstruct --help' for usage")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	config := docstruct.Config{
		MaxPages:        cli.MaxPages,
		MaxDepth:        cli.Depth,
		Timeout:         cli.Timeout,
		MaxBodySize:     docstruct.DefaultMaxBodySize,
		RejectOversized: cli.RejectLarge,
		Aggressive:      !cli.NoAggressive,
		Concurrency:     cli.Concurrency,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	pipeline, fetcher := buildPipeline(cli, config, logger)
	defer fetcher.Close()

	var progress crawl.ProgressFunc
	if cli.Verbose {
		progress = func(ev crawl.ProgressEvent) {
			switch ev.Type {
			case crawl.ProgressFetched:
				fmt.Fprintf(stderr, "fetched %d/%d %s\n", ev.Completed, ev.Total, ev.URL)
			case crawl.ProgressSkipped:
				fmt.Fprintf(stderr, "skipped %s: %v\n", ev.URL, ev.Error)
			}
		}
	}

	result, err := pipeline.Run(ctx, cli.URL, progress)
	if err != nil {
		return err
	}

	formatter := &docstruct.Formatter{}
	shape := docstruct.ShapeStandard
	if cli.Format == "custom" {
		shape = docstruct.ShapeCustom
	}
	out, err := formatter.Format(result.Modules, shape)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	out = append(out, '\n')

	if cli.Output != "" {
		if err := os.WriteFile(cli.Output, out, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	} else {
		if _, err := stdout.Write(out); err != nil {
			return err
		}
	}

	fmt.Fprintf(stderr, "Crawled %d pages (%d failed), found %d modules\n",
		result.PagesCrawled, result.PagesFailed, len(result.Modules))

	return nil
}

// buildPipeline wires the crawl and detection components from CLI settings.
// The returned fetcher must be closed by the caller after the pipeline runs.
func buildPipeline(cli *CLI, config docstruct.Config, logger *slog.Logger) (*crawl.Pipeline, docstruct.Fetcher) {
	fetcherOpts := []dshttp.Option{dshttp.WithMaxBodySize(config.MaxBodySize)}
	if config.RejectOversized {
		fetcherOpts = append(fetcherOpts, dshttp.WithRejectOversized())
	}
	var fetcher docstruct.Fetcher = dshttp.NewFetcher(fetcherOpts...)
	fetcher = dsslog.NewLoggingFetcher(fetcher, logger)

	var sitemaps docstruct.SitemapService
	if !cli.NoSitemap {
		sitemaps = dsslog.NewLoggingSitemapService(dshttp.NewSitemapService(nil), logger)
	}

	detector := goquery.NewDetector()
	var extractor docstruct.Extractor
	switch cli.Extractor {
	case "article":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewExtractor(
			goquery.WithFrameworkDetector(detector),
			goquery.WithConverter(htmltomarkdown.NewConverter()),
		)
	}

	crawler := &crawl.Crawler{
		Fetcher:  fetcher,
		Links:    goquery.NewLinkDiscoverer(),
		Limiter:  crawl.NewDomainLimiter(crawl.DefaultRequestsPerSecond),
		Sitemaps: sitemaps,
		Config:   config,
	}

	pipeline := &crawl.Pipeline{
		Crawler:    crawler,
		Extractor:  extractor,
		Modules:    dsslog.NewLoggingModuleDetector(goquery.NewModuleDetector(), logger),
		Submodules: goquery.NewSubmoduleDetector(config.Aggressive),
		Matcher:    levenshtein.NewMatcher(),
	}

	return pipeline, fetcher
}
