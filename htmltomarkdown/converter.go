// Package htmltomarkdown flattens content HTML into a markdown text
// rendering. The text form feeds keyword matching and code-block scanning
// in the detection heuristics.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/mjaros/docstruct"
)

// Ensure Converter implements docstruct.Converter at compile time.
var _ docstruct.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to flatten HTML fragments.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The table plugin is enabled so
// tabular submodule listings survive flattening in reading order.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms clean HTML into its markdown text rendering.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docstruct.Errorf(docstruct.EINVALID, "convert HTML: %v", err)
	}

	return result, nil
}
