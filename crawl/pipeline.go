package crawl

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mjaros/docstruct"
)

// Pipeline runs the full extraction: crawl, per-page content extraction and
// detection in parallel, then cross-page merge. Page parsing has no ordering
// dependency; discovery order is restored before merging so the output is
// deterministic.
type Pipeline struct {
	Crawler    *Crawler
	Extractor  docstruct.Extractor
	Modules    docstruct.ModuleDetector
	Submodules docstruct.SubmoduleDetector
	Matcher    docstruct.NameMatcher
}

// pageResult holds the detection outcome for one page.
type pageResult struct {
	modules []*docstruct.Module
	hash    string
	failed  bool
}

// Run crawls from seedURL and returns the merged extraction result.
// Per-page extraction or detection failures are recorded and skipped; Run
// fails only when the crawl itself fails.
func (p *Pipeline) Run(ctx context.Context, seedURL string, progress ProgressFunc) (*docstruct.ExtractionResult, error) {
	crawled, err := p.Crawler.Crawl(ctx, seedURL, progress)
	if err != nil {
		return nil, err
	}

	concurrency := p.Crawler.Config.Concurrency
	if concurrency <= 0 {
		concurrency = docstruct.DefaultConcurrency
	}

	pages := crawled.Pages
	results := make([]pageResult, len(pages))
	var parsed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, page := range pages {
		g.Go(func() error {
			if gctx.Err() != nil {
				results[i].failed = true
				return nil
			}
			results[i] = p.processPage(page)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressParsed,
					Completed: int(parsed.Add(1)),
					Total:     len(pages),
					URL:       page.URL,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	// Restore discovery order and drop pages whose extracted content repeats
	// an earlier page (same document served under two URLs).
	seenContent := make(map[string]bool)
	var all []*docstruct.Module
	failed := crawled.Failed
	for _, r := range results {
		if r.failed {
			failed++
			continue
		}
		if r.hash != "" && seenContent[r.hash] {
			continue
		}
		seenContent[r.hash] = true
		all = append(all, r.modules...)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(pages), Total: len(pages)})
	}

	return &docstruct.ExtractionResult{
		Modules:      docstruct.Merge(all, p.Matcher),
		PagesCrawled: len(pages),
		PagesFailed:  failed,
	}, nil
}

// processPage extracts a page's content region and detects its modules.
func (p *Pipeline) processPage(page *docstruct.Page) pageResult {
	region, err := p.Extractor.Extract(page.HTML)
	if err != nil {
		return pageResult{failed: true}
	}

	modules, err := p.Modules.DetectModules(region)
	if err != nil {
		return pageResult{failed: true}
	}

	for _, m := range modules {
		m.PageID = page.ID
		if p.Submodules != nil {
			// Submodule detection failing on one module does not fail the page.
			_ = p.Submodules.DetectSubmodules(m, region)
		}
	}

	return pageResult{
		modules: modules,
		hash:    contentHash(region.Text),
	}
}
