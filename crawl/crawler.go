// Package crawl provides breadth-first documentation crawling and the
// extraction pipeline that turns crawled pages into a module hierarchy.
package crawl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mjaros/docstruct"
)

// Frontier sizing.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressSkipped
	ProgressParsed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl or extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

// Crawler performs a bounded breadth-first traversal of a documentation
// site. It owns the visited-set; fetching is sequential behind the shared
// connection pool and the per-domain rate limiter.
type Crawler struct {
	Fetcher  docstruct.Fetcher
	Links    docstruct.LinkDiscoverer
	Limiter  docstruct.DomainLimiter
	Sitemaps docstruct.SitemapService // optional frontier seeding
	Config   docstruct.Config
}

// CrawlResult holds the pages fetched in one crawl.
type CrawlResult struct {
	Pages  []*docstruct.Page
	Failed int
}

// Crawl fetches pages reachable from seedURL within the same host, bounded
// by the configured page count and depth. A single page's failure is
// recorded and skipped; the crawl fails only when the seed URL is invalid,
// the seed fetch fails, or no page at all could be fetched.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, progress ProgressFunc) (*CrawlResult, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}

	seed, err := CanonicalURL(seedURL)
	if err != nil {
		return nil, err
	}
	seedHost := Host(seed)

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(docstruct.DiscoveredLink{URL: seed, Priority: docstruct.PriorityDoc, Depth: 0})

	c.seedFromSitemap(ctx, seed, seedHost, frontier)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: c.Config.MaxPages, URL: seed})
	}

	result := &CrawlResult{}
	for len(result.Pages) < c.Config.MaxPages {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, Host(link.URL)); err != nil {
				break // context canceled
			}
		}

		page, err := c.fetchPage(ctx, link, frontier)
		if err != nil {
			// The seed itself being unreachable is fatal; any other page
			// failure is recorded and skipped.
			if link.Depth == 0 && len(result.Pages) == 0 {
				return nil, fmt.Errorf("fetch seed %s: %w", link.URL, err)
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: len(result.Pages), Total: c.Config.MaxPages, URL: link.URL, Error: err})
			}
			continue
		}
		if page == nil {
			// Redirected to an already-seen URL.
			continue
		}

		c.enqueueLinks(page, seedHost, frontier)

		result.Pages = append(result.Pages, page)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFetched, Completed: len(result.Pages), Total: c.Config.MaxPages, URL: page.URL})
		}
	}

	if len(result.Pages) == 0 {
		return nil, docstruct.Errorf(docstruct.EUNAVAILABLE, "no pages could be fetched from %s", seed)
	}
	return result, nil
}

// fetchPage fetches one frontier link. A nil page with nil error means the
// fetch redirected to a URL that was already visited.
func (c *Crawler) fetchPage(ctx context.Context, link docstruct.DiscoveredLink, frontier *Frontier) (*docstruct.Page, error) {
	fctx, cancel := context.WithTimeout(ctx, c.Config.Timeout)
	defer cancel()

	res, err := c.Fetcher.Fetch(fctx, link.URL)
	if err != nil {
		return nil, err
	}

	pageURL := link.URL
	if canon, err := CanonicalURL(res.FinalURL); err == nil && canon != link.URL {
		// Deduplicate on the post-redirect URL.
		if frontier.Seen(canon) {
			return nil, nil
		}
		frontier.MarkSeen(canon)
		pageURL = canon
	}

	return &docstruct.Page{
		ID:    uuid.NewString(),
		URL:   pageURL,
		HTML:  res.HTML,
		Depth: link.Depth,
	}, nil
}

// enqueueLinks discovers the page's outbound links and queues the
// depth-eligible same-host ones.
func (c *Crawler) enqueueLinks(page *docstruct.Page, seedHost string, frontier *Frontier) {
	if c.Links == nil || page.Depth >= c.Config.MaxDepth {
		return
	}
	links, err := c.Links.DiscoverLinks(page.HTML, page.URL)
	if err != nil {
		return
	}
	for _, l := range links {
		canon, err := CanonicalURL(l.URL)
		if err != nil || Host(canon) != seedHost {
			continue
		}
		l.URL = canon
		l.Depth = page.Depth + 1
		frontier.Push(l)
	}
	page.Links = links
}

// seedFromSitemap queues sitemap URLs at depth 1 ahead of link-following.
// Sitemap discovery failing is not an error; link-following covers for it.
func (c *Crawler) seedFromSitemap(ctx context.Context, seed, seedHost string, frontier *Frontier) {
	if c.Sitemaps == nil || c.Config.MaxDepth < 1 {
		return
	}
	urls, err := c.Sitemaps.DiscoverURLs(ctx, seed)
	if err != nil {
		return
	}
	for _, u := range urls {
		canon, err := CanonicalURL(u)
		if err != nil || Host(canon) != seedHost {
			continue
		}
		frontier.Push(docstruct.DiscoveredLink{URL: canon, Priority: docstruct.PriorityGeneric, Depth: 1})
	}
}
