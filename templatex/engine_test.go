package templatex

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/results"
)

func render(t *testing.T, e *Engine, data *PageData) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, data))
	return buf.String()
}

func TestLoadEmbeddedTheme(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, e.Assets)

	_, err = fs.Stat(e.Assets, "style.css")
	assert.NoError(t, err)
	_, err = fs.Stat(e.Assets, "search.js")
	assert.NoError(t, err)
}

func TestRenderResultNodes(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)

	card := results.CardNode(resultsEntry())
	html := render(t, e, &PageData{
		Title:           "Search Results",
		BasePath:        "/",
		ContentTemplate: ResultsContentTemplate,
		Query:           "tiny",
		State:           "matches",
		Nodes:           []results.Node{card},
	})

	assert.Contains(t, html, `<div id="results-container" class="results" data-state="matches">`)
	assert.Contains(t, html, `<img src="tile_0114.png" alt="Tiny Castle Screenshot">`)
	assert.Contains(t, html, `<h3>Tiny Castle</h3>`)
	assert.Contains(t, html, `<p>File Size: 17MB</p>`)
	assert.Contains(t, html, `class="download-button" download>Download</a>`)
}

func TestRenderMessageNode(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)

	html := render(t, e, &PageData{
		BasePath:        "/",
		ContentTemplate: ResultsContentTemplate,
		Nodes:           []results.Node{results.Message(results.MessageNoMatches)},
	})
	assert.Contains(t, html, "<p>No games found matching your search.</p>")
}

func TestRenderDefaultsToIndex(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)

	data := &PageData{BasePath: "/games/", Title: "All Games"}
	html := render(t, e, data)
	assert.Equal(t, IndexContentTemplate, data.ContentTemplate)
	assert.Contains(t, html, `href="/games/theme/style.css"`)
	assert.Contains(t, html, `action="/games/search-results.html"`)
}

func TestRenderContactErrors(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)

	html := render(t, e, &PageData{
		BasePath:        "/",
		ContentTemplate: ContactContentTemplate,
		Contact: ContactView{
			Enabled: true,
			Email:   "bad",
			Errors:  map[string]string{"email": "Please enter a valid email address."},
		},
	})
	assert.Contains(t, html, `<span id="email-error" class="error">Please enter a valid email address.</span>`)
	assert.Contains(t, html, `<span id="name-error" class="error"></span>`)
}

func TestRenderDarkMode(t *testing.T) {
	e, err := Load("")
	require.NoError(t, err)

	html := render(t, e, &PageData{BasePath: "/", DarkMode: true})
	assert.Contains(t, html, `<body class="dark-mode"`)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "layout.html"), []byte(`{{define "layout"}}<p>{{.Title}}</p>{{end}}`), 0o644))

	e, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, e.Assets)
	assert.Equal(t, "<p>Custom</p>", render(t, e, &PageData{Title: "Custom"}))
}

func TestLoadWithoutLayout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte(`{{define "other"}}x{{end}}`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func resultsEntry() catalog.Entry {
	return catalog.Entry{Title: "Tiny Castle", Image: "tile_0114.png", FileSize: "17MB", DownloadLink: "https://modsfire.com/1DkAxIjh1tfl621"}
}
