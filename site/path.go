package site

import (
	"path"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/iedon/game-catalog-go/catalog"
)

const (
	entryDir          = "games"
	indexOutput       = "index.html"
	resultsOutput     = "search-results.html"
	contactOutput     = "contact.html"
	notFoundOutput    = "404.html"
	searchIndexOutput = "catalog.json"
	themeDir          = "theme"
)

// slugify folds a title to lowercase ASCII words joined by dashes.
// Diacritics are dropped after NFKD decomposition.
func slugify(title string) string {
	normalized := norm.NFKD.String(title)
	var b strings.Builder
	lastDash := false
	for _, r := range normalized {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
			lastDash = false
		default:
			if b.Len() == 0 || lastDash {
				continue
			}
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "game"
	}
	return slug
}

// uniqueSlugs assigns one slug per entry in catalog order. Entries sharing
// a title get numbered suffixes.
func uniqueSlugs(entries []catalog.Entry) []string {
	used := make(map[string]struct{}, len(entries))
	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		base := slugify(entry.Title)
		candidate := base
		for n := 2; ; n++ {
			if _, taken := used[candidate]; !taken {
				break
			}
			candidate = base + "-" + strconv.Itoa(n)
		}
		used[candidate] = struct{}{}
		slugs = append(slugs, candidate)
	}
	return slugs
}

func entryRoute(slug string) string {
	return "/" + entryDir + "/" + slug
}

func entryOutputPath(slug string) string {
	return entryDir + "/" + slug + ".html"
}

func sanitizeRoute(input string) string {
	route := strings.TrimSpace(input)
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	cleaned := path.Clean(route)
	if cleaned == "." {
		cleaned = "/"
	}
	return cleaned
}

// slugFromRoute extracts the entry slug from /games/<slug>[.html].
func slugFromRoute(route string) (string, bool) {
	route = sanitizeRoute(route)
	rest, ok := strings.CutPrefix(route, "/"+entryDir+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	rest = strings.TrimSuffix(rest, ".html")
	return rest, rest != ""
}
