package crawl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjaros/docstruct"
	"github.com/mjaros/docstruct/crawl"
)

func TestCanonicalURL(t *testing.T) {
	t.Parallel()

	t.Run("lowercases scheme and host", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.CanonicalURL("HTTPS://Example.COM/Docs")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/Docs", got)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.CanonicalURL("https://example.com/docs#install")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", got)
	})

	t.Run("drops default ports", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.CanonicalURL("http://example.com:80/a")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/a", got)

		got, err = crawl.CanonicalURL("https://example.com:443/a")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a", got)
	})

	t.Run("keeps non-default ports", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.CanonicalURL("http://example.com:8080/a")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com:8080/a", got)
	})

	t.Run("trims trailing slashes on non-root paths", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.CanonicalURL("https://example.com/docs/")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", got)
	})

	t.Run("root path and no path canonicalize identically", func(t *testing.T) {
		t.Parallel()

		a, err := crawl.CanonicalURL("https://example.com/")
		require.NoError(t, err)
		b, err := crawl.CanonicalURL("https://example.com")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("rejects non-HTTP schemes", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.CanonicalURL("ftp://example.com/file")
		assert.Equal(t, docstruct.EINVALID, docstruct.ErrorCode(err))

		_, err = crawl.CanonicalURL("mailto:dev@example.com")
		assert.Equal(t, docstruct.EINVALID, docstruct.ErrorCode(err))
	})

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.CanonicalURL("https:///path-only")
		assert.Equal(t, docstruct.EINVALID, docstruct.ErrorCode(err))
	})
}

func TestHost(t *testing.T) {
	t.Parallel()

	t.Run("returns the lowercased host", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "example.com", crawl.Host("https://Example.Com/docs"))
	})

	t.Run("returns empty for unparseable input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", crawl.Host("://nope"))
	})
}
