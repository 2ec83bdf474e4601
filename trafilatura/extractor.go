// Package trafilatura provides article-mode content extraction backed by
// go-trafilatura's boilerplate removal. It is an alternative to the
// selector-heuristic extractor for pages where semantic markup is poor.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/mjaros/docstruct"
)

// Ensure Extractor implements docstruct.Extractor at compile time.
var _ docstruct.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docstruct.ContentRegion{
		HTML: contentHTML,
		Text: result.ContentText,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
