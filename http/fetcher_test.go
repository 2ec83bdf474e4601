package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjaros/docstruct"
	dshttp "github.com/mjaros/docstruct/http"
)

// Ensure Fetcher implements docstruct.Fetcher at compile time.
var _ docstruct.Fetcher = (*dshttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>hello</html>"))
		}))
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html>hello</html>", result.HTML)
		assert.False(t, result.Truncated)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var userAgent, accept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent = r.Header.Get("User-Agent")
			accept = r.Header.Get("Accept")
		}))
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, userAgent, "Mozilla/5.0")
		assert.Contains(t, accept, "text/html")
	})

	t.Run("reports the final URL after redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>moved</html>"))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL+"/old")

		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/new", result.FinalURL)
	})

	t.Run("truncates oversized bodies at the ceiling", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
		}))
		defer srv.Close()

		f := dshttp.NewFetcher(dshttp.WithMaxBodySize(1024))
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, result.HTML, 1024)
		assert.True(t, result.Truncated)
	})

	t.Run("rejects oversized bodies when configured", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
		}))
		defer srv.Close()

		f := dshttp.NewFetcher(dshttp.WithMaxBodySize(1024), dshttp.WithRejectOversized())
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, docstruct.ETOOLARGE, docstruct.ErrorCode(err))
	})

	t.Run("a body exactly at the ceiling is not truncated", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 1024)))
		}))
		defer srv.Close()

		f := dshttp.NewFetcher(dshttp.WithMaxBodySize(1024))
		defer f.Close()

		result, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.False(t, result.Truncated)
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, docstruct.ENOTFOUND, docstruct.ErrorCode(err))
	})

	t.Run("maps server errors to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, docstruct.EUNAVAILABLE, docstruct.ErrorCode(err))
	})

	t.Run("does not retry HTTP error statuses", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("maps a deadline to ETIMEOUT", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := f.Fetch(ctx, srv.URL)

		assert.Equal(t, docstruct.ETIMEOUT, docstruct.ErrorCode(err))
	})

	t.Run("maps a refused connection to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		// Reserve a port, then close it so the connection is refused.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), url)

		assert.Equal(t, docstruct.EUNAVAILABLE, docstruct.ErrorCode(err))
	})

	t.Run("rejects an invalid URL", func(t *testing.T) {
		t.Parallel()

		f := dshttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://bad url with spaces")

		assert.Equal(t, docstruct.EINVALID, docstruct.ErrorCode(err))
	})
}
