package resolver

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normKey normalizes a title into a cache key: lowercased, accent-folded,
// whitespace collapsed. Keys must be stable across runs because they are
// persisted with the cache snapshot.
func normKey(title string) string {
	s := removeAccents(strings.ToLower(title))
	return strings.Join(strings.Fields(s), " ")
}

// searchQuery prepares a title for the catalog search endpoint. Case and
// punctuation are preserved for better remote results; only whitespace is
// collapsed and "&" expanded.
func searchQuery(title string) string {
	s := strings.ReplaceAll(title, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
