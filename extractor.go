package docstruct

// ContentRegion is the subset of a page's HTML judged to be primary content.
// It is derived deterministically from a page and never mutated afterwards.
type ContentRegion struct {
	// HTML is the cleaned content fragment with navigation, headers, footers,
	// scripts, styles and asides removed.
	HTML string

	// Text is the flattened text rendering of HTML, used for keyword
	// matching and code-block scanning.
	Text string
}

// Extractor isolates the main content region of a page.
type Extractor interface {
	// Extract processes raw HTML and returns the primary content with
	// boilerplate removed. It is a pure function of its input: no network,
	// no mutation.
	Extract(html string) (*ContentRegion, error)
}

// Converter flattens an HTML fragment into text.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into a plain
	// text rendering that preserves reading order.
	Convert(html string) (string, error)
}
