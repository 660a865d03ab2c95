package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/config"
	"github.com/ziadkadry99/ffsite/internal/content"
	"github.com/ziadkadry99/ffsite/internal/progress"
	"github.com/ziadkadry99/ffsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ffsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w\nRun `ffsite init` or set FFSITE_CONTENT_DIR", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger. --log-level wins over --verbose,
// which wins over the config file.
func newLogger(cfg *config.Config) *slog.Logger {
	return newLoggerTo(os.Stderr, cfg)
}

func newLoggerTo(w io.Writer, cfg *config.Config) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	if logLevel != "" {
		override := *cfg
		override.LogLevel = config.LogLevel(logLevel)
		level = override.SlogLevel()
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// newSource opens the configured content source.
func newSource(cfg *config.Config) (content.Source, error) {
	if cfg.ContentURL != "" {
		return content.NewHTTPSource(cfg.ContentURL, nil, cfg.FetchTimeout)
	}
	if _, err := os.Stat(cfg.ContentDir); err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	return content.NewDirSource(cfg.ContentDir), nil
}

func layoutFor(cfg *config.Config) catalog.Layout {
	layout := catalog.DefaultLayout
	layout.PayloadPrefix = cfg.PayloadPrefix
	return layout
}

// catalogOptions maps the config onto loader options.
func catalogOptions(cfg *config.Config, logger *slog.Logger, reporter progress.Reporter) []catalog.Option {
	opts := []catalog.Option{
		catalog.WithLayout(layoutFor(cfg)),
		catalog.WithStrict(cfg.StrictCatalog),
		catalog.WithMaxConcurrency(cfg.MaxConcurrency),
		catalog.WithLogger(logger),
	}
	if reporter != nil {
		opts = append(opts, catalog.WithProgress(reporter))
	}
	return opts
}

// loadCatalog loads only the template catalog.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.NewLoader(src, catalogOptions(cfg, logger, nil)...).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading templates from %s: %w", src.Location(), err)
	}
	return cat, nil
}

// loadSnapshot loads the catalog and the site documents.
func loadSnapshot(ctx context.Context, cfg *config.Config, src content.Source, logger *slog.Logger, reporter progress.Reporter) *site.Snapshot {
	return site.Load(ctx, src, logger, catalogOptions(cfg, logger, reporter)...)
}
