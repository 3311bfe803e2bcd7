package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iedon/game-catalog-go/catalog"
)

// DefaultMinQueryLength is the shortest normalized query the interactive
// paths will search for.
const DefaultMinQueryLength = 2

// Search returns the entries whose title, description or any tag contains
// the lowercased query. Catalog order is preserved and the input is never
// modified. An empty query matches every entry.
func Search(query string, entries []catalog.Entry) []catalog.Entry {
	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	matches := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if matchesEntry(lower, needle, entry) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func matchesEntry(lower cases.Caser, needle string, entry catalog.Entry) bool {
	if strings.Contains(lower.String(entry.Title), needle) {
		return true
	}
	if strings.Contains(lower.String(entry.Description), needle) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(lower.String(tag), needle) {
			return true
		}
	}
	return false
}

// Normalize trims surrounding whitespace and lowercases raw input.
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// Evaluate normalizes raw input and either searches or reports that the
// query is shorter than minLen characters.
func Evaluate(raw string, minLen int, entries []catalog.Entry) Outcome {
	query := Normalize(raw)
	if utf8.RuneCountInString(query) < minLen {
		return Outcome{Kind: TooShort, Query: query, MinLength: minLen}
	}
	return Outcome{Kind: Matches, Query: query, Entries: Search(query, entries)}
}

// Resolve handles a query taken from a page address: a missing query is
// reported as Empty, anything else goes through Evaluate.
func Resolve(raw string, minLen int, entries []catalog.Entry) Outcome {
	if strings.TrimSpace(raw) == "" {
		return Outcome{Kind: Empty}
	}
	return Evaluate(raw, minLen, entries)
}
