package crawl

import (
	"net/url"
	"strings"

	"github.com/mjaros/docstruct"
)

// CanonicalURL normalizes a URL for visited-set comparison: scheme and host
// are lowercased, the fragment is stripped, default ports are dropped, and
// trailing slashes on non-root paths are trimmed. Only http and https URLs
// with a host are accepted.
func CanonicalURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", docstruct.Errorf(docstruct.EINVALID, "invalid URL %q: %v", raw, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", docstruct.Errorf(docstruct.EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", docstruct.Errorf(docstruct.EINVALID, "URL %q has no host", raw)
	}

	u.Scheme = scheme
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	switch {
	case scheme == "http" && strings.HasSuffix(u.Host, ":80"):
		u.Host = strings.TrimSuffix(u.Host, ":80")
	case scheme == "https" && strings.HasSuffix(u.Host, ":443"):
		u.Host = strings.TrimSuffix(u.Host, ":443")
	}

	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	} else {
		u.Path = ""
	}

	return u.String(), nil
}

// Host returns the lowercased host of a URL, or "" if it cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
