package search

import (
	"strings"
	"unicode/utf8"
)

// MinSuggestionQueryLen is the hard cutoff for suggestion queries. Shorter
// queries get an empty result without a store call.
const MinSuggestionQueryLen = 2

// NormalizeQuery trims surrounding whitespace. Case folding is deliberately
// not done here; case-insensitivity belongs to the matcher.
func NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}

// SuggestionQueryTooShort reports whether a normalized query is below the
// suggestion cutoff.
func SuggestionQueryTooShort(query string) bool {
	return utf8.RuneCountInString(query) < MinSuggestionQueryLen
}
