// Package readability provides article-mode content extraction backed by
// go-readability's scoring heuristics. It is a lighter alternative to the
// trafilatura extractor for blog-style documentation pages.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/mjaros/docstruct"
)

// Ensure Extractor implements docstruct.Extractor at compile time.
var _ docstruct.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the primary content region.
func (e *Extractor) Extract(rawHTML string) (*docstruct.ContentRegion, error) {
	if rawHTML == "" {
		return nil, docstruct.Errorf(docstruct.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "extract content: %v", err)
	}

	return &docstruct.ContentRegion{
		HTML: article.Content,
		Text: article.TextContent,
	}, nil
}
