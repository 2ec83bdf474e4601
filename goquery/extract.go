// Package goquery implements content extraction, link discovery and the
// module/submodule detection heuristics using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjaros/docstruct"
)

// nonContentSelectors matches boilerplate removed before detection.
const nonContentSelectors = "nav, header, footer, aside, script, style, noscript, " +
	".navigation, .sidebar, .menu, .ads, " +
	"[role=navigation], [role=banner], [role=contentinfo], [role=complementary]"

// mainContentSelectors matches containers that typically hold the primary
// content, in preference order.
const mainContentSelectors = "main, #main, .main, #content, .content, " +
	"article, .article, .documentation, #documentation"

// frameworkContentSelectors maps a detected documentation framework to the
// generator's known main-content container, tried before the generic list.
var frameworkContentSelectors = map[docstruct.Framework]string{
	docstruct.FrameworkDocusaurus: "article div.markdown, main article",
	docstruct.FrameworkMkDocs:     "article.md-content__inner, div.md-content",
	docstruct.FrameworkSphinx:     "div[role=main], div.body, div.document",
	docstruct.FrameworkGitBook:    "main",
}

// Ensure Extractor implements docstruct.Extractor at compile time.
var _ docstruct.Extractor = (*Extractor)(nil)

// Extractor isolates the main content region of a page by removing
// boilerplate elements and selecting the most likely content container.
type Extractor struct {
	detector  docstruct.FrameworkDetector
	converter docstruct.Converter
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithFrameworkDetector enables framework-specific content selectors.
func WithFrameworkDetector(d docstruct.FrameworkDetector) ExtractorOption {
	return func(e *Extractor) {
		e.detector = d
	}
}

// WithConverter sets the converter used for the region's text rendering.
// Without one, the text falls back to the selection's flattened node text.
func WithConverter(c docstruct.Converter) ExtractorOption {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the primary content region.
func (e *Extractor) Extract(rawHTML string) (*docstruct.ContentRegion, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docstruct.Errorf(docstruct.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINVALID, "failed to parse HTML: %v", err)
	}

	// Framework detection runs on the raw markup: the markers often live in
	// the navigation chrome removed below.
	var framework docstruct.Framework
	if e.detector != nil {
		framework = e.detector.Detect(rawHTML)
	}

	doc.Find(nonContentSelectors).Remove()

	sel := e.selectContent(doc, framework)

	contentHTML, err := goquery.OuterHtml(sel)
	if err != nil {
		return nil, docstruct.Errorf(docstruct.EINTERNAL, "render content: %v", err)
	}

	return &docstruct.ContentRegion{
		HTML: contentHTML,
		Text: e.renderText(sel, contentHTML),
	}, nil
}

// selectContent picks the most likely content container: the framework's
// known selector, then the generic list, then body, then the whole document.
func (e *Extractor) selectContent(doc *goquery.Document, framework docstruct.Framework) *goquery.Selection {
	if selector, ok := frameworkContentSelectors[framework]; ok {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			return s
		}
	}
	if s := doc.Find(mainContentSelectors).First(); s.Length() > 0 {
		return s
	}
	if s := doc.Find("body").First(); s.Length() > 0 {
		return s
	}
	return doc.Selection
}

func (e *Extractor) renderText(sel *goquery.Selection, contentHTML string) string {
	if e.converter != nil {
		if text, err := e.converter.Convert(contentHTML); err == nil {
			return strings.TrimSpace(text)
		}
	}
	return cleanText(sel.Text())
}
