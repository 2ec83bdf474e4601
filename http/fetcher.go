// Package http provides HTTP-backed implementations of docstruct.Fetcher
// and docstruct.SitemapService for static documentation sites.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mjaros/docstruct"
)

// Ensure Fetcher implements docstruct.Fetcher at compile time.
var _ docstruct.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP requests. It does
// not execute JavaScript and is suitable for static sites only. The
// underlying client pools connections, so one Fetcher should be shared
// across a whole crawl and closed when the crawl ends.
type Fetcher struct {
	client          *http.Client
	maxBodySize     int64
	rejectOversized bool
	userAgent       string
}

// defaultUserAgent identifies the crawler as an ordinary browser. Many
// documentation hosts serve reduced or blocked content to obvious bots.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// hostileHostMarkers lists hosts known to fingerprint requests beyond the
// User-Agent. Requests to them carry a fuller browser header set.
var hostileHostMarkers = []string{"facebook.com", "instagram.com", "meta.com"}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxBodySize sets the response body ceiling in bytes.
// Defaults to docstruct.DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithRejectOversized makes oversized responses fail with ETOOLARGE instead
// of being truncated at the ceiling.
func WithRejectOversized() Option {
	return func(f *Fetcher) {
		f.rejectOversized = true
	}
}

// WithUserAgent overrides the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher. Per-request deadlines come
// from the context passed to Fetch rather than a client-wide timeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		maxBodySize: docstruct.DefaultMaxBodySize,
		userAgent:   defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 8,
			IdleConnTimeout:     30 * time.Second,
		},
	}

	return f
}

// Fetch retrieves the HTML content at rawURL. Redirects are followed and the
// final URL is reported in the result. Bodies beyond the size ceiling are
// truncated, or rejected with ETOOLARGE when configured. A single retry is
// attempted for connection-level failures; HTTP error statuses are not
// retried.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*docstruct.FetchResult, error) {
	result, err := f.fetchOnce(ctx, rawURL)
	if err != nil && isTransient(err) && ctx.Err() == nil {
		result, err = f.fetchOnce(ctx, rawURL)
	}
	if err != nil {
		return nil, translateErr(err, rawURL)
	}
	return result, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) (*docstruct.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "invalid URL %q", rawURL)
	}
	f.setHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			return nil, docstruct.Errorf(docstruct.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
		}
		return nil, docstruct.Errorf(docstruct.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	// Read one byte past the ceiling to distinguish an exactly-at-limit body
	// from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, err
	}

	truncated := int64(len(body)) > f.maxBodySize
	if truncated {
		if f.rejectOversized {
			return nil, docstruct.Errorf(docstruct.ETOOLARGE, "response body for %s exceeds %d bytes", rawURL, f.maxBodySize)
		}
		body = body[:f.maxBodySize]
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &docstruct.FetchResult{
		HTML:      string(body),
		FinalURL:  finalURL,
		Truncated: truncated,
	}, nil
}

// setHeaders applies the browser-like header set. Hostile hosts get the
// fuller set of headers a real browser would send.
func (f *Fetcher) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	if isHostileHost(req.URL.Hostname()) {
		req.Header.Set("Sec-Fetch-Dest", "document")
		req.Header.Set("Sec-Fetch-Mode", "navigate")
		req.Header.Set("Sec-Fetch-Site", "none")
		req.Header.Set("Sec-Fetch-User", "?1")
		req.Header.Set("Upgrade-Insecure-Requests", "1")
	}
}

func isHostileHost(host string) bool {
	host = strings.ToLower(host)
	for _, marker := range hostileHostMarkers {
		if host == marker || strings.HasSuffix(host, "."+marker) {
			return true
		}
	}
	return false
}

// isTransient reports whether an error looks like a connection-level failure
// worth one retry. Deliberate cancellations and application errors are not.
func isTransient(err error) bool {
	var e *docstruct.Error
	if errors.As(err, &e) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// translateErr maps transport errors onto domain error codes.
func translateErr(err error, rawURL string) error {
	var e *docstruct.Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return docstruct.Errorf(docstruct.ETIMEOUT, "fetching %s timed out", rawURL)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return docstruct.Errorf(docstruct.ETIMEOUT, "fetching %s timed out", rawURL)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return docstruct.Errorf(docstruct.EUNAVAILABLE, "fetching %s: %v", rawURL, urlErr.Err)
	}
	return docstruct.Errorf(docstruct.EUNAVAILABLE, "fetching %s: %v", rawURL, err)
}

// Close releases pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
