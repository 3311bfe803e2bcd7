package site

import (
	"fmt"
	"html/template"
	"path"

	"github.com/iedon/game-catalog-go/results"
	"github.com/iedon/game-catalog-go/templatex"
)

func (s *Service) prepareEntries() ([]entryPage, error) {
	slugs := uniqueSlugs(s.entries)
	pages := make([]entryPage, 0, len(s.entries))
	for i, entry := range s.entries {
		rendered, err := s.renderer.Render([]byte(entry.Description))
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", entry.Title, err)
		}
		pages = append(pages, entryPage{
			Entry:      entry,
			Slug:       slugs[i],
			Route:      entryRoute(slugs[i]),
			OutputPath: entryOutputPath(slugs[i]),
			HTML:       template.HTML(rendered.HTML),
			Summary:    summarize(rendered.PlainText),
		})
	}
	return pages, nil
}

func (s *Service) entryView(pg entryPage) templatex.EntryView {
	card := results.CardNode(pg.Entry).Card
	return templatex.EntryView{
		Title:           pg.Entry.Title,
		URL:             path.Join(s.cfg.BasePath(), pg.OutputPath),
		Tags:            append([]string(nil), pg.Entry.Tags...),
		DescriptionHTML: pg.HTML,
		Card:            *card,
	}
}

func (s *Service) entryViews() []templatex.EntryView {
	views := make([]templatex.EntryView, 0, len(s.pages))
	for _, pg := range s.pages {
		views = append(views, s.entryView(pg))
	}
	return views
}
