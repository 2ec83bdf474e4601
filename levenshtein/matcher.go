// Package levenshtein provides edit-distance based module name matching
// for merge deduplication.
package levenshtein

import (
	"github.com/agnivade/levenshtein"

	"github.com/mjaros/docstruct"
)

// DefaultThreshold is the minimum similarity ratio for two names to merge.
// At 0.85, "Configuration" and "Configurations" merge while "Setup" and
// "Search" do not.
const DefaultThreshold = 0.85

// Ensure Matcher implements docstruct.NameMatcher at compile time.
var _ docstruct.NameMatcher = (*Matcher)(nil)

// Matcher decides module name equivalence using normalized edit distance:
// similarity = 1 - distance/max(len(a), len(b)), compared in runes.
type Matcher struct {
	threshold float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold overrides the similarity threshold.
// Defaults to DefaultThreshold if not specified.
func WithThreshold(t float64) Option {
	return func(m *Matcher) {
		m.threshold = t
	}
}

// NewMatcher creates a new Matcher.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match reports whether a and b are similar enough to merge.
// Inputs are expected to be normalized with docstruct.NormalizeName.
func (m *Matcher) Match(a, b string) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}

	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}

	dist := levenshtein.ComputeDistance(a, b)
	similarity := 1 - float64(dist)/float64(maxLen)
	return similarity >= m.threshold
}
