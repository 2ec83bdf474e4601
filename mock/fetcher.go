package mock

import (
	"context"

	"github.com/mjaros/docstruct"
)

var _ docstruct.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docstruct.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docstruct.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docstruct.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ docstruct.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docstruct.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}

var _ docstruct.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docstruct.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
