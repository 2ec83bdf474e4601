package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" help:"Documentation site URL to analyze"`

	MaxPages    int           `short:"n" default:"20" help:"Maximum pages to crawl"`
	Depth       int           `short:"d" default:"1" help:"Maximum link-following depth from the seed"`
	Timeout     time.Duration `short:"t" default:"5s" help:"Per-page fetch timeout"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent page analysis limit"`

	NoAggressive bool `help:"Stop submodule detection at the first technique that yields results"`
	NoSitemap    bool `help:"Skip sitemap discovery when seeding the crawl"`
	RejectLarge  bool `help:"Fail oversized pages instead of truncating them"`

	Extractor string `default:"heuristic" enum:"heuristic,article,readability" help:"Content extraction strategy"`
	Format    string `short:"f" default:"standard" enum:"standard,custom" help:"Output JSON shape"`
	Output    string `short:"o" help:"Write JSON to a file instead of stdout"`
	Verbose   bool   `short:"v" help:"Log progress and timings to stderr"`
}
