package docstruct

import "context"

// SitemapService discovers URLs from website sitemaps. Sitemap URLs seed the
// crawl frontier ahead of link-following; the page and depth budgets still
// bound the crawl.
type SitemapService interface {
	// DiscoverURLs finds URLs from a site's sitemap. It checks robots.txt
	// for Sitemap directives first, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively. Returns an empty slice when
	// the site publishes no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
