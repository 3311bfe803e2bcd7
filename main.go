package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/iedon/game-catalog-go/catalog"
	"github.com/iedon/game-catalog-go/config"
	"github.com/iedon/game-catalog-go/server"
	"github.com/iedon/game-catalog-go/site"
	"github.com/iedon/game-catalog-go/templatex"
	"github.com/iedon/game-catalog-go/tui"
)

const defaultConfigPath = "config.json"

func main() {
	cfgPath := flag.String("config", defaultConfigPath, "path to configuration file")
	buildFlag := flag.Bool("build", false, "force static build mode")
	browseFlag := flag.Bool("browse", false, "search the catalog in the terminal")
	flag.Parse()

	cfg, err := config.Load(resolveConfigPath(*cfgPath))
	if err != nil {
		panic(err)
	}

	if *buildFlag {
		cfg.Live = false
	}

	logger := newLogger(cfg.LogLevel)

	entries, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Error("catalog", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *browseFlag {
		// The terminal owns stdout while browsing.
		quiet := slog.New(slog.DiscardHandler)
		err := tui.Run(ctx, entries, tui.RunOptions{
			Options:   tui.Options{SiteName: cfg.SiteName, Logger: quiet},
			Window:    cfg.DebounceWindow,
			MinLength: cfg.Search.MinQueryLength,
		})
		if err != nil {
			logger.Error("browse", "error", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting", "live", cfg.Live, "entries", entries.Len())

	templates, err := templatex.Load(cfg.TemplateDir)
	if err != nil {
		logger.Error("templates", "error", err)
		os.Exit(1)
	}

	svc, err := site.NewService(cfg, entries, templates, logger)
	if err != nil {
		logger.Error("site", "error", err)
		os.Exit(1)
	}

	// not live mode, live=false or run with --build flag
	if !cfg.Live {
		if err := svc.BuildStatic(ctx); err != nil {
			logger.Error("build", "error", err)
			os.Exit(1)
		}
		logger.Info("static build completed", "output", cfg.OutputDir)
		return
	}

	srv := server.New(cfg, svc, logger, SERVER_SIGNATURE)
	if err := srv.Start(ctx); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
}

// resolveConfigPath falls back to environment-only configuration when the
// default file is absent. An explicitly named file must exist.
func resolveConfigPath(path string) string {
	if path != defaultConfigPath {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
