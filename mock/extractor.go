package mock

import "github.com/mjaros/docstruct"

var _ docstruct.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docstruct.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docstruct.ContentRegion, error)
}

func (e *Extractor) Extract(html string) (*docstruct.ContentRegion, error) {
	return e.ExtractFn(html)
}

var _ docstruct.Converter = (*Converter)(nil)

// Converter is a mock implementation of docstruct.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docstruct.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of docstruct.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html string, baseURL string) ([]docstruct.DiscoveredLink, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html string, baseURL string) ([]docstruct.DiscoveredLink, error) {
	return d.DiscoverLinksFn(html, baseURL)
}
