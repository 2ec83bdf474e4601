package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mjaros/docstruct"
	"github.com/mjaros/docstruct/levenshtein"
)

// Ensure Matcher implements docstruct.NameMatcher at compile time.
var _ docstruct.NameMatcher = (*levenshtein.Matcher)(nil)

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	t.Run("identical names match", func(t *testing.T) {
		t.Parallel()

		m := levenshtein.NewMatcher()
		assert.True(t, m.Match("configuration", "configuration"))
	})

	t.Run("near-identical names match at the default threshold", func(t *testing.T) {
		t.Parallel()

		m := levenshtein.NewMatcher()
		assert.True(t, m.Match("configuration", "configurations"))
	})

	t.Run("distinct names do not match", func(t *testing.T) {
		t.Parallel()

		m := levenshtein.NewMatcher()
		assert.False(t, m.Match("setup", "search"))
		assert.False(t, m.Match("install", "usage"))
	})

	t.Run("empty names never match non-empty ones", func(t *testing.T) {
		t.Parallel()

		m := levenshtein.NewMatcher()
		assert.False(t, m.Match("", "setup"))
		assert.False(t, m.Match("setup", ""))
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		t.Parallel()

		strict := levenshtein.NewMatcher(levenshtein.WithThreshold(0.99))
		assert.False(t, strict.Match("configuration", "configurations"))

		loose := levenshtein.NewMatcher(levenshtein.WithThreshold(0.5))
		assert.True(t, loose.Match("setup", "set"))
	})

	t.Run("similarity counts runes, not bytes", func(t *testing.T) {
		t.Parallel()

		m := levenshtein.NewMatcher()
		assert.True(t, m.Match("einführungs", "einführung"))
	})
}
