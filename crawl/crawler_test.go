package crawl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjaros/docstruct"
	"github.com/mjaros/docstruct/crawl"
	"github.com/mjaros/docstruct/mock"
)

// site maps canonical URLs to page HTML and links for crawler tests.
type site struct {
	html  map[string]string
	links map[string][]docstruct.DiscoveredLink
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*docstruct.FetchResult, error) {
			html, ok := s.html[url]
			if !ok {
				return nil, docstruct.Errorf(docstruct.ENOTFOUND, "HTTP 404 for %s", url)
			}
			return &docstruct.FetchResult{HTML: html, FinalURL: url}, nil
		},
	}
}

func (s *site) discoverer() *mock.LinkDiscoverer {
	return &mock.LinkDiscoverer{
		DiscoverLinksFn: func(_ string, baseURL string) ([]docstruct.DiscoveredLink, error) {
			return s.links[baseURL], nil
		},
	}
}

func testConfig() docstruct.Config {
	c := docstruct.DefaultConfig()
	c.MaxPages = 10
	return c
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("crawls the seed and its links once each", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com/docs":   "<html>seed</html>",
				"https://example.com/docs/a": "<html>a</html>",
				"https://example.com/docs/b": "<html>b</html>",
			},
			links: map[string][]docstruct.DiscoveredLink{
				"https://example.com/docs": {
					{URL: "https://example.com/docs/a"},
					{URL: "https://example.com/docs/b"},
					{URL: "https://example.com/docs/a"},
				},
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Links: s.discoverer(), Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com/docs", nil)

		require.NoError(t, err)
		require.Len(t, result.Pages, 3)
		assert.Equal(t, "https://example.com/docs", result.Pages[0].URL)
		assert.Equal(t, 0, result.Pages[0].Depth)
		assert.Equal(t, 1, result.Pages[1].Depth)
	})

	t.Run("respects the page budget", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com":   "<html>seed</html>",
				"https://example.com/a": "<html>a</html>",
				"https://example.com/b": "<html>b</html>",
				"https://example.com/c": "<html>c</html>",
			},
			links: map[string][]docstruct.DiscoveredLink{
				"https://example.com": {
					{URL: "https://example.com/a"},
					{URL: "https://example.com/b"},
					{URL: "https://example.com/c"},
				},
			},
		}
		config := testConfig()
		config.MaxPages = 2
		c := &crawl.Crawler{Fetcher: s.fetcher(), Links: s.discoverer(), Config: config}

		result, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 2)
	})

	t.Run("respects the depth budget", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com":        "<html>seed</html>",
				"https://example.com/a":      "<html>a</html>",
				"https://example.com/a/deep": "<html>deep</html>",
			},
			links: map[string][]docstruct.DiscoveredLink{
				"https://example.com":   {{URL: "https://example.com/a"}},
				"https://example.com/a": {{URL: "https://example.com/a/deep"}},
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Links: s.discoverer(), Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		require.Len(t, result.Pages, 2)
		for _, p := range result.Pages {
			assert.NotEqual(t, "https://example.com/a/deep", p.URL)
		}
	})

	t.Run("skips cross-host links", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com": "<html>seed</html>",
			},
			links: map[string][]docstruct.DiscoveredLink{
				"https://example.com": {{URL: "https://other.com/docs"}},
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Links: s.discoverer(), Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 1)
	})

	t.Run("records and skips failed pages", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com":    "<html>seed</html>",
				"https://example.com/ok": "<html>ok</html>",
			},
			links: map[string][]docstruct.DiscoveredLink{
				"https://example.com": {
					{URL: "https://example.com/missing"},
					{URL: "https://example.com/ok"},
				},
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Links: s.discoverer(), Config: testConfig()}

		var skipped []string
		progress := func(ev crawl.ProgressEvent) {
			if ev.Type == crawl.ProgressSkipped {
				skipped = append(skipped, ev.URL)
			}
		}

		result, err := c.Crawl(context.Background(), "https://example.com", progress)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 2)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, []string{"https://example.com/missing"}, skipped)
	})

	t.Run("an unreachable seed is fatal", func(t *testing.T) {
		t.Parallel()

		s := &site{html: map[string]string{}}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Config: testConfig()}

		_, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.Error(t, err)
		assert.Equal(t, docstruct.ENOTFOUND, docstruct.ErrorCode(err))
	})

	t.Run("an invalid seed URL is rejected", func(t *testing.T) {
		t.Parallel()

		c := &crawl.Crawler{Fetcher: (&site{}).fetcher(), Config: testConfig()}

		_, err := c.Crawl(context.Background(), "ftp://example.com", nil)

		assert.Equal(t, docstruct.EINVALID, docstruct.ErrorCode(err))
	})

	t.Run("a redirect to an already-seen URL is fetched once", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*docstruct.FetchResult, error) {
				if url == "https://example.com/alias" {
					return &docstruct.FetchResult{HTML: "<html>seed</html>", FinalURL: "https://example.com/docs"}, nil
				}
				return &docstruct.FetchResult{HTML: "<html>page</html>", FinalURL: url}, nil
			},
		}
		links := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(_ string, baseURL string) ([]docstruct.DiscoveredLink, error) {
				if baseURL == "https://example.com/docs" {
					return []docstruct.DiscoveredLink{{URL: "https://example.com/alias"}}, nil
				}
				return nil, nil
			},
		}
		c := &crawl.Crawler{Fetcher: fetcher, Links: links, Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com/docs", nil)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 1)
		assert.Equal(t, 0, result.Failed)
	})

	t.Run("sitemap URLs seed the frontier", func(t *testing.T) {
		t.Parallel()

		s := &site{
			html: map[string]string{
				"https://example.com/docs":        "<html>seed</html>",
				"https://example.com/docs/guides": "<html>guides</html>",
			},
		}
		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{
					"https://example.com/docs/guides",
					"https://other.com/external",
				}, nil
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Sitemaps: sitemaps, Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com/docs", nil)

		require.NoError(t, err)
		require.Len(t, result.Pages, 2)
		assert.Equal(t, "https://example.com/docs/guides", result.Pages[1].URL)
	})

	t.Run("sitemap failure does not fail the crawl", func(t *testing.T) {
		t.Parallel()

		s := &site{html: map[string]string{"https://example.com": "<html>seed</html>"}}
		sitemaps := &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, docstruct.Errorf(docstruct.EUNAVAILABLE, "robots.txt unreachable")
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Sitemaps: sitemaps, Config: testConfig()}

		result, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 1)
	})

	t.Run("waits on the rate limiter per domain", func(t *testing.T) {
		t.Parallel()

		s := &site{html: map[string]string{"https://example.com": "<html>seed</html>"}}
		var waited []string
		limiter := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				waited = append(waited, domain)
				return nil
			},
		}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Limiter: limiter, Config: testConfig()}

		_, err := c.Crawl(context.Background(), "https://example.com", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, waited)
	})

	t.Run("canceled context yields an unavailable error", func(t *testing.T) {
		t.Parallel()

		s := &site{html: map[string]string{"https://example.com": "<html>seed</html>"}}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Config: testConfig()}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Crawl(ctx, "https://example.com", nil)

		assert.Equal(t, docstruct.EUNAVAILABLE, docstruct.ErrorCode(err))
	})

	t.Run("reports started and fetched progress", func(t *testing.T) {
		t.Parallel()

		s := &site{html: map[string]string{"https://example.com": "<html>seed</html>"}}
		c := &crawl.Crawler{Fetcher: s.fetcher(), Config: testConfig()}

		var events []crawl.ProgressType
		progress := func(ev crawl.ProgressEvent) { events = append(events, ev.Type) }

		_, err := c.Crawl(context.Background(), "https://example.com", progress)

		require.NoError(t, err)
		assert.Equal(t, []crawl.ProgressType{crawl.ProgressStarted, crawl.ProgressFetched}, events)
	})
}
