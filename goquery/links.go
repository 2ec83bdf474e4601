package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjaros/docstruct"
)

// docKeywords mark links likely to lead to module documentation. Matching
// links get PriorityDoc so tight page budgets are spent on them first.
var docKeywords = []string{
	"doc", "api", "reference", "guide", "manual",
	"tutorial", "module", "class", "function",
}

// Limits on per-page link discovery.
const (
	maxScannedAnchors  = 100
	maxDiscoveredLinks = 50
)

// Ensure LinkDiscoverer implements docstruct.LinkDiscoverer at compile time.
var _ docstruct.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer extracts same-host hyperlinks from a page's main content.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks parses HTML and returns outbound links resolved against
// baseURL and restricted to baseURL's host. Fragments are stripped,
// duplicates keep their highest-priority occurrence, and documentation-like
// links sort ahead of generic ones. At most maxDiscoveredLinks are returned.
func (l *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]docstruct.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "failed to parse HTML: %v", err)
	}

	// Prefer anchors inside the main content; boilerplate navigation repeats
	// the same links on every page.
	scope := doc.Find(mainContentSelectors).First()
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	seen := make(map[string]int)
	var links []docstruct.DiscoveredLink

	scanned := 0
	scope.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		scanned++
		if scanned > maxScannedAnchors {
			return false
		}

		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return true
		}

		resolved := resolveURL(base, href)
		if resolved == "" || !isSameHost(base, resolved) {
			return true
		}

		text := cleanText(sel.Text())
		link := docstruct.DiscoveredLink{
			URL:      resolved,
			Priority: linkPriority(resolved, text),
			Text:     text,
		}

		if idx, ok := seen[resolved]; ok {
			if link.Priority > links[idx].Priority {
				links[idx] = link
			}
		} else {
			seen[resolved] = len(links)
			links = append(links, link)
		}
		return true
	})

	return capLinks(links), nil
}

// linkPriority scores a link by its URL and anchor text.
func linkPriority(rawURL, text string) docstruct.LinkPriority {
	lowerURL := strings.ToLower(rawURL)
	lowerText := strings.ToLower(text)
	for _, kw := range docKeywords {
		if strings.Contains(lowerURL, kw) || strings.Contains(lowerText, kw) {
			return docstruct.PriorityDoc
		}
	}
	return docstruct.PriorityGeneric
}

// capLinks bounds the result, keeping documentation links ahead of generic
// ones while preserving document order within each class.
func capLinks(links []docstruct.DiscoveredLink) []docstruct.DiscoveredLink {
	if len(links) <= maxDiscoveredLinks {
		return links
	}
	out := make([]docstruct.DiscoveredLink, 0, maxDiscoveredLinks)
	for _, l := range links {
		if l.Priority >= docstruct.PriorityDoc {
			out = append(out, l)
			if len(out) == maxDiscoveredLinks {
				return out
			}
		}
	}
	for _, l := range links {
		if l.Priority < docstruct.PriorityDoc {
			out = append(out, l)
			if len(out) == maxDiscoveredLinks {
				break
			}
		}
	}
	return out
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base after stripping fragments).
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") ||
		strings.HasPrefix(href, "#")
}
