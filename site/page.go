package site

import (
	"html/template"

	"github.com/iedon/game-catalog-go/catalog"
)

type entryPage struct {
	Entry      catalog.Entry
	Slug       string
	Route      string
	OutputPath string
	HTML       template.HTML
	Summary    string
}
