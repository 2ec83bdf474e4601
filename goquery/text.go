package goquery

import "strings"

// cleanText collapses runs of whitespace to single spaces and trims the ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitNameDesc splits an item text into a name and a description using the
// common "Name: description" and "Name - description" list conventions.
// The bool result is false if no separator produced a usable split.
func splitNameDesc(text string) (string, string, bool) {
	for _, sep := range []string{":", " - "} {
		if i := strings.Index(text, sep); i > 0 {
			name := cleanText(text[:i])
			if name == "" || len([]rune(name)) >= 50 {
				continue
			}
			return name, cleanText(text[i+len(sep):]), true
		}
	}
	return "", "", false
}
