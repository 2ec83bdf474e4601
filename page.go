package docstruct

import "context"

// Page represents a fetched documentation page. Pages are produced by the
// crawler and consumed once by the content extractor; they are not retained
// across runs.
type Page struct {
	// ID uniquely identifies the page within one crawl, for provenance.
	ID string

	// URL is the canonicalized URL the page was fetched from.
	URL string

	// HTML is the raw page markup, possibly truncated at the body ceiling.
	HTML string

	// Links are the same-domain URLs discovered on the page.
	Links []DiscoveredLink

	// Depth is the page's distance from the crawl seed (seed is 0).
	Depth int
}

// FetchResult holds the outcome of fetching a single URL.
type FetchResult struct {
	// HTML is the response body.
	HTML string

	// FinalURL is the URL after following redirects.
	FinalURL string

	// Truncated reports whether the body hit the size ceiling.
	Truncated bool
}

// Fetcher retrieves HTML content from URLs over HTTP(S).
// Implementations reuse connections across requests within one crawl session.
type Fetcher interface {
	// Fetch retrieves the page at url. The context bounds the request;
	// deadline errors carry ETIMEOUT, connection failures EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases pooled connections.
	Close() error
}

// LinkPriority orders links within one crawl depth (higher pops first).
type LinkPriority int

// Link priority levels. Documentation-looking links are fetched before
// generic ones so tight page budgets are spent on likely module pages.
const (
	PriorityGeneric LinkPriority = 10
	PriorityDoc     LinkPriority = 50
)

// DiscoveredLink represents a URL found on a page, with crawl metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Depth    int
}

// LinkDiscoverer extracts same-domain hyperlinks from a fetched page.
type LinkDiscoverer interface {
	// DiscoverLinks parses HTML and returns outbound links resolved against
	// baseURL, restricted to baseURL's host.
	DiscoverLinks(html string, baseURL string) ([]DiscoveredLink, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
