package templatex

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/iedon/game-catalog-go/results"
)

const (
	IndexContentTemplate    = "content-index"
	ResultsContentTemplate  = "content-results"
	EntryContentTemplate    = "content-entry"
	ContactContentTemplate  = "content-contact"
	NotFoundContentTemplate = "content-404"
	LayoutTemplate          = "layout"
)

//go:embed theme
var defaultTheme embed.FS

// Engine is a thin wrapper around Go templates with an embedded default theme.
type Engine struct {
	templates *template.Template
	// Assets holds static theme files (stylesheets, scripts), or nil.
	Assets fs.FS
}

// PageData represents the data model expected by the layout.
type PageData struct {
	Title            string
	PageTitle        string
	SiteName         string
	BasePath         string
	ContentTemplate  string
	ActivePath       string
	Query            string
	State            string
	Nodes            []results.Node
	Entries          []EntryView
	Entry            *EntryView
	Contact          ContactView
	DarkMode         bool
	Live             bool
	SearchIndexURL   string
	DebounceMs       int
	MinQueryLength   int
	ServerFooterHTML template.HTML
	Meta             Meta
}

// Meta holds SEO-oriented metadata for the rendered page.
type Meta struct {
	Description   string
	OpenGraphType string
	OpenGraphSite string
}

// EntryView is a catalog entry prepared for display.
type EntryView struct {
	Title           string
	URL             string
	Tags            []string
	DescriptionHTML template.HTML
	Card            results.Card
}

// ContactView carries contact form state between submit and re-render.
type ContactView struct {
	Enabled bool
	Name    string
	Email   string
	Message string
	Errors  map[string]string
	Sent    bool
}

// Load instantiates an engine. An empty templateDir selects the embedded theme.
func Load(templateDir string) (*Engine, error) {
	var root fs.FS
	if strings.TrimSpace(templateDir) == "" {
		sub, err := fs.Sub(defaultTheme, "theme")
		if err != nil {
			return nil, fmt.Errorf("embedded theme: %w", err)
		}
		root = sub
	} else {
		info, err := os.Stat(templateDir)
		if err != nil {
			return nil, fmt.Errorf("template directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("template directory %s is not a directory", templateDir)
		}
		root = os.DirFS(filepath.Clean(templateDir))
	}
	return load(root)
}

func load(root fs.FS) (*Engine, error) {
	files, err := fs.Glob(root, "*.html")
	if err != nil {
		return nil, fmt.Errorf("glob main templates: %w", err)
	}
	partials, err := fs.Glob(root, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partial templates: %w", err)
	}
	files = append(files, partials...)
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found")
	}
	sort.Strings(files)

	tpl, err := template.New("root").Funcs(funcs()).ParseFS(root, files...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if tpl.Lookup(LayoutTemplate) == nil {
		return nil, fmt.Errorf("template %q is not defined", LayoutTemplate)
	}

	engine := &Engine{templates: tpl}
	if info, err := fs.Stat(root, "assets"); err == nil && info.IsDir() {
		assets, err := fs.Sub(root, "assets")
		if err != nil {
			return nil, fmt.Errorf("theme assets: %w", err)
		}
		engine.Assets = assets
	}
	return engine, nil
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"url": func(base string, parts ...string) string {
			joined := path.Join(append([]string{"/", base}, parts...)...)
			if len(parts) > 0 && strings.HasSuffix(parts[len(parts)-1], "/") && joined != "/" {
				joined += "/"
			}
			return joined
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}
}

// Render writes the rendered layout into the provided writer.
func (e *Engine) Render(w io.Writer, data *PageData) error {
	if e.templates == nil {
		return fmt.Errorf("template engine not initialized")
	}
	if data != nil && strings.TrimSpace(data.ContentTemplate) == "" {
		data.ContentTemplate = IndexContentTemplate
	}
	return e.templates.ExecuteTemplate(w, LayoutTemplate, data)
}
