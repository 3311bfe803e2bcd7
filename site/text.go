package site

import (
	"strings"
	"unicode/utf8"
)

const (
	summaryLimit = 200
	metaLimit    = 160
)

// clip collapses whitespace and shortens text to at most limit runes,
// cutting at the last word boundary when one is reasonably close.
func clip(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	cut := string([]rune(text)[:limit-3])
	if i := strings.LastIndexByte(cut, ' '); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}

func summarize(plain string) string {
	return clip(plain, summaryLimit)
}

func metaDescription(summary, fallback string) string {
	if strings.TrimSpace(summary) == "" {
		summary = fallback
	}
	return clip(summary, metaLimit)
}
