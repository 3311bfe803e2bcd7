package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/iedon/game-catalog-go/fsutil"
	"github.com/iedon/game-catalog-go/renderer"
	"github.com/iedon/game-catalog-go/search"
	"github.com/iedon/game-catalog-go/templatex"
)

const renderWorkers = 4

// BuildStatic renders the whole catalog into OutputDir. The new tree is
// assembled in a sibling directory and swapped in with a rename.
func (s *Service) BuildStatic(ctx context.Context) error {
	finalDir := filepath.Clean(s.cfg.OutputDir)
	parent := filepath.Dir(finalDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("ensure output parent: %w", err)
	}

	tempDir, err := os.MkdirTemp(parent, ".__build-")
	if err != nil {
		return fmt.Errorf("create temp output dir: %w", err)
	}
	cleanTemp := true
	defer func() {
		if cleanTemp {
			_ = os.RemoveAll(tempDir)
		}
	}()

	if s.cfg.AssetDir != "" {
		if err := fsutil.CopyTree(s.cfg.AssetDir, tempDir); err != nil {
			return fmt.Errorf("copy assets: %w", err)
		}
	}
	if err := s.writeThemeAssets(tempDir); err != nil {
		return err
	}
	if err := s.writePages(ctx, tempDir); err != nil {
		return err
	}
	if err := fsutil.WriteFile(filepath.Join(tempDir, searchIndexOutput), s.SearchIndex()); err != nil {
		return fmt.Errorf("write search index: %w", err)
	}

	backupDir := finalDir + ".old"
	if err := os.RemoveAll(backupDir); err != nil {
		return fmt.Errorf("clean backup dir: %w", err)
	}
	if err := os.Rename(finalDir, backupDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rotate old output: %w", err)
	}
	if err := os.Rename(tempDir, finalDir); err != nil {
		_ = os.Rename(backupDir, finalDir)
		return fmt.Errorf("activate new output: %w", err)
	}
	_ = os.RemoveAll(backupDir)
	cleanTemp = false

	s.logger.Info("static site built", "dir", finalDir, "entries", len(s.pages))
	return nil
}

func (s *Service) writePages(ctx context.Context, dir string) error {
	type page struct {
		name   string
		render func() ([]byte, error)
	}
	opts := PageOptions{}
	pages := []page{
		{indexOutput, func() ([]byte, error) { return s.RenderIndexPage(opts) }},
		{resultsOutput, func() ([]byte, error) {
			return s.RenderResultsPage(search.Outcome{Kind: search.Empty}, opts)
		}},
		{notFoundOutput, func() ([]byte, error) { return s.RenderNotFoundPage("", opts) }},
	}
	if s.cfg.Contact.Enabled {
		pages = append(pages, page{contactOutput, func() ([]byte, error) {
			return s.RenderContactPage(templatex.ContactView{}, opts)
		}})
	}
	for _, pg := range s.pages {
		pages = append(pages, page{pg.OutputPath, func() ([]byte, error) { return s.renderEntry(pg, opts) }})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderWorkers)
	for _, p := range pages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			html, err := p.render()
			if err != nil {
				return err
			}
			if err := fsutil.WriteFile(filepath.Join(dir, filepath.FromSlash(p.name)), html); err != nil {
				return fmt.Errorf("write %s: %w", p.name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) writeThemeAssets(dir string) error {
	if s.templates.Assets == nil {
		return nil
	}
	minifier := s.renderer.Minifier()
	err := fsutil.CopyFS(s.templates.Assets, filepath.Join(dir, themeDir), func(name string, data []byte) ([]byte, error) {
		mediatype := renderer.MediaTypeFor(name)
		if mediatype == "" {
			return data, nil
		}
		return minifier.Bytes(mediatype, data)
	})
	if err != nil {
		return fmt.Errorf("copy theme assets: %w", err)
	}
	return nil
}
