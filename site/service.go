package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/config"
	"github.com/iedon/game-catalog-go/renderer"
	"github.com/iedon/game-catalog-go/search"
	"github.com/iedon/game-catalog-go/templatex"
)

// Service renders the catalog into pages and answers search queries.
type Service struct {
	cfg       *config.Config
	templates *templatex.Engine
	renderer  *renderer.Renderer
	logger    *slog.Logger

	entries      []catalog.Entry
	pages        []entryPage
	bySlug       map[string]int
	serverFooter template.HTML
	index        *SearchCatalog
}

// NewService prepares every entry page and the search index up front; the
// catalog never changes afterwards.
func NewService(cfg *config.Config, c *catalog.Catalog, templates *templatex.Engine, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		cfg:       cfg,
		templates: templates,
		renderer:  renderer.New(),
		logger:    logger,
		entries:   c.Entries(),
	}

	pages, err := s.prepareEntries()
	if err != nil {
		return nil, err
	}
	s.pages = pages
	s.bySlug = make(map[string]int, len(pages))
	for i, pg := range pages {
		s.bySlug[pg.Slug] = i
	}

	if footer := strings.TrimSpace(cfg.ServerFooter); footer != "" {
		rendered, err := s.renderer.Render([]byte(footer))
		if err != nil {
			return nil, fmt.Errorf("render server footer: %w", err)
		}
		s.serverFooter = template.HTML(rendered.HTML)
	}

	payload, err := buildSearchIndex(pages)
	if err != nil {
		return nil, fmt.Errorf("build search index: %w", err)
	}
	s.index = newSearchCatalog(payload)
	return s, nil
}

// Search runs the one-shot search used for queries taken from a page address.
func (s *Service) Search(raw string) search.Outcome {
	return search.Resolve(raw, s.cfg.Search.MinQueryLength, s.entries)
}

// SearchIndex returns the serialized catalog index.
func (s *Service) SearchIndex() json.RawMessage {
	return s.index.Bytes()
}

// SearchIndexETag identifies the current catalog index for HTTP caching.
func (s *Service) SearchIndexETag() string {
	return s.index.ETag()
}
