package docstruct

import "time"

// Defaults for Config fields.
const (
	DefaultMaxPages    = 20
	DefaultMaxDepth    = 1
	DefaultTimeout     = 5 * time.Second
	DefaultMaxBodySize = 300 * 1024
	DefaultConcurrency = 5

	// DefaultDescription is the placeholder used when a module or submodule
	// has no discoverable description. The output schema expects a present
	// description field, so empty descriptions are never emitted.
	DefaultDescription = "No description available"
)

// Config carries crawl and detection settings. It is passed explicitly to
// every component that needs it; there is no process-wide mutable state.
type Config struct {
	// MaxPages bounds the number of pages fetched in one crawl.
	MaxPages int

	// MaxDepth bounds link-following distance from the seed (seed is depth 0).
	MaxDepth int

	// Timeout bounds each individual fetch.
	Timeout time.Duration

	// MaxBodySize is the response body ceiling in bytes. Bodies beyond it are
	// truncated, or rejected when RejectOversized is set.
	MaxBodySize int64

	// RejectOversized fails oversized fetches instead of truncating them.
	RejectOversized bool

	// Aggressive unions the results of all submodule detection techniques.
	// When false, detection stops at the first technique that yields results.
	Aggressive bool

	// Concurrency is the number of parallel page-detection workers.
	Concurrency int
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		MaxPages:    DefaultMaxPages,
		MaxDepth:    DefaultMaxDepth,
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		Aggressive:  true,
		Concurrency: DefaultConcurrency,
	}
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.MaxPages <= 0 {
		return Errorf(EINVALID, "max pages must be positive")
	}
	if c.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}
