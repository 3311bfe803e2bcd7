package site

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/iedon/game-catalog-go/results"
	"github.com/iedon/game-catalog-go/search"
	"github.com/iedon/game-catalog-go/templatex"
)

// PageOptions carries per-visitor presentation preferences.
type PageOptions struct {
	DarkMode bool
}

// RenderIndexPage renders the landing page listing the whole catalog.
func (s *Service) RenderIndexPage(opts PageOptions) ([]byte, error) {
	data := s.pageData("All Games", templatex.IndexContentTemplate, opts)
	data.ActivePath = "/"
	data.Entries = s.entryViews()
	data.Meta = s.buildMeta(fmt.Sprintf("Browse and download %d games.", len(s.pages)), "", "website")
	return s.renderPage(data)
}

// RenderResultsPage renders the outcome of a one-shot search.
func (s *Service) RenderResultsPage(outcome search.Outcome, opts PageOptions) ([]byte, error) {
	data := s.pageData("Search Results", templatex.ResultsContentTemplate, opts)
	data.ActivePath = "/" + resultsOutput
	data.Query = outcome.Query
	data.State = outcome.Kind.String()
	data.Nodes = results.Render(outcome)
	description := "Search the game catalog."
	if outcome.Query != "" {
		description = fmt.Sprintf("Search results for %q.", outcome.Query)
	}
	data.Meta = s.buildMeta(description, "", "website")
	return s.renderPage(data)
}

// RenderEntryPage renders the detail page for the entry at route.
func (s *Service) RenderEntryPage(route string, opts PageOptions) ([]byte, error) {
	slug, ok := slugFromRoute(route)
	if !ok {
		return nil, ErrNotFound
	}
	idx, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	return s.renderEntry(s.pages[idx], opts)
}

func (s *Service) renderEntry(pg entryPage, opts PageOptions) ([]byte, error) {
	data := s.pageData(pg.Entry.Title, templatex.EntryContentTemplate, opts)
	view := s.entryView(pg)
	data.ActivePath = pg.Route
	data.Entry = &view
	data.Meta = s.buildMeta(pg.Summary, pg.Entry.Title, "article")
	return s.renderPage(data)
}

// RenderContactPage renders the contact form in the given state.
func (s *Service) RenderContactPage(view templatex.ContactView, opts PageOptions) ([]byte, error) {
	if !s.cfg.Contact.Enabled {
		return nil, ErrContactDisabled
	}
	data := s.pageData("Contact", templatex.ContactContentTemplate, opts)
	data.ActivePath = "/" + contactOutput
	view.Enabled = true
	data.Contact = view
	data.Meta = s.buildMeta("Get in touch with us.", "", "website")
	return s.renderPage(data)
}

// RenderNotFoundPage renders a themed 404 page.
func (s *Service) RenderNotFoundPage(requestedPath string, opts PageOptions) ([]byte, error) {
	data := s.pageData("404 - Not found", templatex.NotFoundContentTemplate, opts)
	description := "The page you are looking for could not be found."
	if trimmed := strings.TrimSpace(requestedPath); trimmed != "" {
		if cleaned := sanitizeRoute(trimmed); cleaned != "/" {
			description = fmt.Sprintf("The requested path %s could not be found.", cleaned)
		}
	}
	data.Meta = s.buildMeta(description, description, "website")
	return s.renderPage(data)
}

func (s *Service) renderPage(data *templatex.PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.templates.Render(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", data.ContentTemplate, err)
	}
	return s.renderer.MinifyHTML(buf.Bytes())
}

func (s *Service) pageData(title, content string, opts PageOptions) *templatex.PageData {
	base := s.cfg.BasePath()
	return &templatex.PageData{
		Title:            title,
		PageTitle:        s.pageTitle(title),
		SiteName:         s.siteName(),
		BasePath:         base,
		ContentTemplate:  content,
		Contact:          templatex.ContactView{Enabled: s.cfg.Contact.Enabled},
		DarkMode:         opts.DarkMode,
		Live:             s.cfg.Live,
		SearchIndexURL:   path.Join(base, searchIndexOutput),
		DebounceMs:       s.cfg.Search.DebounceMs,
		MinQueryLength:   s.cfg.Search.MinQueryLength,
		ServerFooterHTML: s.serverFooter,
	}
}

func (s *Service) buildMeta(summary, fallback, ogType string) templatex.Meta {
	if ogType == "" {
		ogType = "website"
	}
	description := metaDescription(summary, fallback)
	if description == "" {
		description = s.siteName()
	}
	return templatex.Meta{
		Description:   description,
		OpenGraphType: ogType,
		OpenGraphSite: s.siteName(),
	}
}

func (s *Service) siteName() string {
	name := strings.TrimSpace(s.cfg.SiteName)
	if name == "" {
		return "Untitled"
	}
	return name
}

func (s *Service) pageTitle(raw string) string {
	title := strings.TrimSpace(raw)
	site := s.siteName()
	if title == "" {
		return site
	}
	return fmt.Sprintf("%s - %s", title, site)
}
