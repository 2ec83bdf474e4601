package crawl

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// contentHash fingerprints a page's extracted text for duplicate suppression.
// Whitespace runs are collapsed so reflowed copies of the same document hash
// identically. Empty text returns "" and is never treated as a duplicate.
func contentHash(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(normalized), 16)
}
