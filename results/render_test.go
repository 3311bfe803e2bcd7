package results

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/search"
)

func TestRenderEmpty(t *testing.T) {
	nodes := Render(search.Outcome{Kind: search.Empty})
	assert.Equal(t, []Node{{Kind: KindMessage, Text: "No search query provided."}}, nodes)
}

func TestRenderTooShort(t *testing.T) {
	nodes := Render(search.Outcome{Kind: search.TooShort, Query: "c", MinLength: 2})
	assert.Equal(t, []Node{{Kind: KindMessage, Text: "Please enter at least 2 characters."}}, nodes)
}

func TestRenderTooShortWithoutLengthFallsBackToDefault(t *testing.T) {
	nodes := Render(search.Outcome{Kind: search.TooShort})
	require.Len(t, nodes, 1)
	assert.Equal(t, "Please enter at least 2 characters.", nodes[0].Text)
}

func TestRenderNoMatches(t *testing.T) {
	out := search.Evaluate("zzzzz", 2, catalog.Default().Entries())
	nodes := Render(out)
	assert.Equal(t, []Node{{Kind: KindMessage, Text: "No games found matching your search."}}, nodes)
}

func TestRenderCardsInOrder(t *testing.T) {
	entries := catalog.Default().Entries()
	nodes := Render(search.Outcome{Kind: search.Matches, Entries: []catalog.Entry{entries[1], entries[0]}})

	require.Len(t, nodes, 2)
	assert.Equal(t, "Game Title 2", nodes[0].Card.Heading)
	assert.Equal(t, "Tiny Castle", nodes[1].Card.Heading)
}

func TestCardNode(t *testing.T) {
	entry := catalog.Entry{
		Title:        "Tiny Castle",
		Image:        "tile_0114.png",
		FileSize:     "17MB",
		DownloadLink: "https://modsfire.com/1DkAxIjh1tfl621",
	}
	node := CardNode(entry)

	assert.Equal(t, KindCard, node.Kind)
	require.NotNil(t, node.Card)
	assert.Equal(t, Card{
		Image:    Image{Src: "tile_0114.png", Alt: "Tiny Castle Screenshot"},
		Heading:  "Tiny Castle",
		SizeLine: "File Size: 17MB",
		Action:   Action{Href: "https://modsfire.com/1DkAxIjh1tfl621", Label: "Download", Download: true},
	}, *node.Card)
}

func TestCardNodeForcesDownloadForPageLinks(t *testing.T) {
	node := CardNode(catalog.Entry{Title: "Readme", DownloadLink: "readme.html"})
	assert.True(t, node.Card.Action.Download)
}

func TestNodeJSON(t *testing.T) {
	data, err := json.Marshal(Message(MessageNoQuery))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"message","text":"No search query provided."}`, string(data))
}

type recordingSurface struct {
	calls [][]Node
}

func (r *recordingSurface) Replace(nodes []Node) {
	r.calls = append(r.calls, nodes)
}

func TestPresenterReplacesSurface(t *testing.T) {
	surface := &recordingSurface{}
	p := NewPresenter(surface)

	require.NoError(t, p.Show(search.Evaluate("tiny", 2, catalog.Default().Entries())))
	require.NoError(t, p.Show(search.Outcome{Kind: search.Empty}))

	require.Len(t, surface.calls, 2)
	assert.Len(t, surface.calls[0], 1)
	assert.Equal(t, KindCard, surface.calls[0][0].Kind)
	assert.Equal(t, []Node{Message(MessageNoQuery)}, surface.calls[1])
}

func TestPresenterWithoutSurface(t *testing.T) {
	p := NewPresenter(nil)
	assert.ErrorIs(t, p.Show(search.Outcome{Kind: search.Empty}), ErrSurfaceUnavailable)

	var nilPresenter *Presenter
	assert.ErrorIs(t, nilPresenter.Show(search.Outcome{}), ErrSurfaceUnavailable)
}
