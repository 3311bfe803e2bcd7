package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
)

const (
	MediaHTML = "text/html"
	MediaCSS  = "text/css"
	MediaJS   = "application/javascript"
	MediaJSON = "application/json"
)

// Minifier wraps a configured tdewolff minifier.
type Minifier struct {
	m *minify.M
}

// NewMinifier registers the HTML, CSS, JS and JSON minifiers.
func NewMinifier() *Minifier {
	m := minify.New()
	m.Add(MediaHTML, &html.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})
	m.AddFunc(MediaCSS, css.Minify)
	m.AddFunc(MediaJS, js.Minify)
	m.AddFunc(MediaJSON, json.Minify)
	return &Minifier{m: m}
}

// Bytes minifies raw content of the given media type.
func (m *Minifier) Bytes(mediatype string, raw []byte) ([]byte, error) {
	out, err := m.m.Bytes(mediatype, raw)
	if err != nil {
		return nil, fmt.Errorf("minify %s: %w", mediatype, err)
	}
	return out, nil
}

// MediaTypeFor maps a file name to a supported media type, or "" when the
// file should be copied untouched.
func MediaTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return MediaHTML
	case ".css":
		return MediaCSS
	case ".js", ".mjs":
		return MediaJS
	case ".json":
		return MediaJSON
	default:
		return ""
	}
}
