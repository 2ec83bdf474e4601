package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjaros/docstruct"
)

// Ensure Detector implements docstruct.FrameworkDetector at compile time.
var _ docstruct.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation frameworks from HTML content.
// It checks meta generator tags first, then framework-specific CSS classes
// and data attributes unique to each generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) docstruct.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docstruct.FrameworkUnknown
	}

	if framework := d.detectFromMetaGenerator(doc); framework != docstruct.FrameworkUnknown {
		return framework
	}

	// #__docusaurus is the Docusaurus root mount point.
	if d.hasSelector(doc, "#__docusaurus") ||
		d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-markdown") {
		return docstruct.FrameworkDocusaurus
	}

	// data-md-* attributes are unique to MkDocs Material.
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return docstruct.FrameworkMkDocs
	}

	// Sphinx markers, including the ReadTheDocs theme.
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".sphinxsidebar") ||
		d.hasSelector(doc, ".wy-nav-side") {
		return docstruct.FrameworkSphinx
	}

	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") {
		return docstruct.FrameworkGitBook
	}

	return docstruct.FrameworkUnknown
}

// detectFromMetaGenerator checks <meta name="generator"> tags.
// Most reliable signal when present.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) docstruct.Framework {
	framework := docstruct.FrameworkUnknown
	doc.Find("meta[name='generator']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content, _ := s.Attr("content")
		content = strings.ToLower(content)
		switch {
		case strings.Contains(content, "docusaurus"):
			framework = docstruct.FrameworkDocusaurus
		case strings.Contains(content, "mkdocs"):
			framework = docstruct.FrameworkMkDocs
		case strings.Contains(content, "sphinx"):
			framework = docstruct.FrameworkSphinx
		case strings.Contains(content, "gitbook"):
			framework = docstruct.FrameworkGitBook
		}
		return framework == docstruct.FrameworkUnknown
	})
	return framework
}

func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
