package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/config"
	"github.com/iedon/game-catalog-go/search"
	"github.com/iedon/game-catalog-go/templatex"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutputDir: filepath.Join(t.TempDir(), "dist"),
		SiteName:  "Game Downloads",
		Search:    config.SearchConfig{DebounceMs: 300, MinQueryLength: 2},
		Contact:   config.ContactConfig{Enabled: true},
	}
}

func newTestService(t *testing.T, cfg *config.Config, c *catalog.Catalog) *Service {
	t.Helper()
	engine, err := templatex.Load("")
	require.NoError(t, err)
	svc, err := NewService(cfg, c, engine, nil)
	require.NoError(t, err)
	return svc
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Tiny Castle":       "tiny-castle",
		"Game Title 2":      "game-title-2",
		"  Élan Vital!! ":   "elan-vital",
		"Ω":                 "game",
		"already-dashed--x": "already-dashed-x",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugify(in), in)
	}
}

func TestUniqueSlugsNumbersDuplicates(t *testing.T) {
	entries := []catalog.Entry{{Title: "Castle"}, {Title: "castle"}, {Title: "Castle!"}}
	assert.Equal(t, []string{"castle", "castle-2", "castle-3"}, uniqueSlugs(entries))
}

func TestSlugFromRoute(t *testing.T) {
	slug, ok := slugFromRoute("/games/tiny-castle.html")
	require.True(t, ok)
	assert.Equal(t, "tiny-castle", slug)

	slug, ok = slugFromRoute("games/tiny-castle")
	require.True(t, ok)
	assert.Equal(t, "tiny-castle", slug)

	_, ok = slugFromRoute("/games/")
	assert.False(t, ok)
	_, ok = slugFromRoute("/other/tiny-castle")
	assert.False(t, ok)
}

func TestSearchIndexLayout(t *testing.T) {
	svc := newTestService(t, testConfig(t), catalog.Default())

	var idx struct {
		V int        `json:"v"`
		C int        `json:"c"`
		F []string   `json:"f"`
		D [][]string `json:"d"`
		T [][]string `json:"t"`
	}
	require.NoError(t, json.Unmarshal(svc.SearchIndex(), &idx))
	assert.Equal(t, 1, idx.V)
	assert.Equal(t, 2, idx.C)
	assert.Equal(t, searchIndexFields, idx.F)
	require.Len(t, idx.D, 2)
	assert.Equal(t, "Tiny Castle", idx.D[0][0])
	assert.Equal(t, "games/tiny-castle.html", idx.D[0][5])
	assert.Equal(t, []string{"action", "adventure"}, idx.T[1])
}

func TestSearchIndexEmptyCatalog(t *testing.T) {
	svc := newTestService(t, testConfig(t), catalog.New())
	assert.JSONEq(t, string(emptySearchIndexJSON), string(svc.SearchIndex()))
}

func TestServiceSearchUsesConfiguredMinimum(t *testing.T) {
	cfg := testConfig(t)
	cfg.Search.MinQueryLength = 4
	svc := newTestService(t, cfg, catalog.Default())

	assert.Equal(t, search.Empty, svc.Search("   ").Kind)

	short := svc.Search("cas")
	assert.Equal(t, search.TooShort, short.Kind)
	assert.Equal(t, 4, short.MinLength)

	got := svc.Search("CASTLE")
	require.Equal(t, search.Matches, got.Kind)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "Tiny Castle", got.Entries[0].Title)
}

func TestRenderIndexPage(t *testing.T) {
	svc := newTestService(t, testConfig(t), catalog.Default())

	html, err := svc.RenderIndexPage(PageOptions{DarkMode: true})
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "Tiny Castle")
	assert.Contains(t, out, "Game Title 2")
	assert.Contains(t, out, "File Size: 17MB")
	assert.Contains(t, out, "dark-mode")
	assert.Contains(t, out, "/games/tiny-castle.html")
}

func TestRenderResultsPageStates(t *testing.T) {
	svc := newTestService(t, testConfig(t), catalog.Default())

	cases := []struct {
		query string
		want  string
		state string
	}{
		{"", "No search query provided.", "empty"},
		{"c", "Please enter at least 2 characters.", "too_short"},
		{"zzz", "No games found matching your search.", "matches"},
		{"medieval", "Tiny Castle Screenshot", "matches"},
	}
	for _, tc := range cases {
		html, err := svc.RenderResultsPage(svc.Search(tc.query), PageOptions{})
		require.NoError(t, err, tc.query)
		assert.Contains(t, string(html), tc.want, tc.query)
		assert.Contains(t, string(html), `data-state="`+tc.state+`"`, tc.query)
	}
}

func TestRenderEntryPage(t *testing.T) {
	svc := newTestService(t, testConfig(t), catalog.Default())

	html, err := svc.RenderEntryPage("/games/tiny-castle.html", PageOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "build and defend your own tiny castle")
	assert.Contains(t, string(html), "https://modsfire.com/1DkAxIjh1tfl621")

	_, err = svc.RenderEntryPage("/games/missing.html", PageOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenderContactPage(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg, catalog.Default())

	html, err := svc.RenderContactPage(templatex.ContactView{
		Name:   "Ada",
		Errors: map[string]string{"email": "Please enter a valid email address."},
	}, PageOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "Please enter a valid email address.")
	assert.Contains(t, string(html), `value="Ada"`)

	cfg.Contact.Enabled = false
	_, err = svc.RenderContactPage(templatex.ContactView{}, PageOptions{})
	assert.ErrorIs(t, err, ErrContactDisabled)
}

func TestBuildStatic(t *testing.T) {
	cfg := testConfig(t)
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "tile_0114.png"), []byte("png"), 0o644))
	cfg.AssetDir = assets
	svc := newTestService(t, cfg, catalog.Default())

	require.NoError(t, svc.BuildStatic(context.Background()))

	for _, name := range []string{
		"index.html",
		"search-results.html",
		"contact.html",
		"404.html",
		"catalog.json",
		"tile_0114.png",
		filepath.Join("games", "tiny-castle.html"),
		filepath.Join("games", "game-title-2.html"),
		filepath.Join("theme", "style.css"),
		filepath.Join("theme", "search.js"),
	} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, name)
	}

	results, err := os.ReadFile(filepath.Join(cfg.OutputDir, "search-results.html"))
	require.NoError(t, err)
	assert.Contains(t, string(results), "No search query provided.")

	// A second build replaces the first one in place.
	require.NoError(t, svc.BuildStatic(context.Background()))
	_, err = os.Stat(cfg.OutputDir + ".old")
	assert.True(t, os.IsNotExist(err))
}

func TestBuildStaticSkipsDisabledContact(t *testing.T) {
	cfg := testConfig(t)
	cfg.Contact.Enabled = false
	svc := newTestService(t, cfg, catalog.Default())

	require.NoError(t, svc.BuildStatic(context.Background()))
	_, err := os.Stat(filepath.Join(cfg.OutputDir, "contact.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildStaticHonoursCancellation(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg, catalog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.BuildStatic(ctx), context.Canceled)
	_, err := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(err))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short text", clip("  short \n text ", 20))

	long := strings.Repeat("word ", 60)
	got := clip(long, metaLimit)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), metaLimit)
	assert.True(t, strings.HasSuffix(got, "word..."))

	assert.Equal(t, "fallback", metaDescription(" ", "fallback"))
}

func TestSearchIndexETagIsStable(t *testing.T) {
	a := newTestService(t, testConfig(t), catalog.Default())
	b := newTestService(t, testConfig(t), catalog.Default())
	assert.Equal(t, a.SearchIndexETag(), b.SearchIndexETag())

	c := newTestService(t, testConfig(t), catalog.New(catalog.Entry{Title: "Other"}))
	assert.NotEqual(t, a.SearchIndexETag(), c.SearchIndexETag())
}
