// Package slog provides logging decorators for docstruct services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjaros/docstruct"
)

// Ensure LoggingFetcher implements docstruct.Fetcher.
var _ docstruct.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docstruct.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docstruct.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *docstruct.FetchResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		var truncated bool
		if result != nil {
			bytes = len(result.HTML)
			truncated = result.Truncated
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"truncated", truncated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
