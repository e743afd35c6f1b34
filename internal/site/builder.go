package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"podsite/internal/config"
	"podsite/internal/download"
	"podsite/internal/feed"
	"podsite/internal/http"
	ioutils "podsite/internal/io"
	"podsite/internal/render"
)

// Builder runs the feed-to-site pipeline.
//
// The pipeline is strictly sequential, each stage consuming the previous
// stage's output:
//
//	load config -> fetch/parse feed -> extract episodes
//	            -> download assets  -> render pages
//
// Re-running a Builder against an unchanged feed is safe: asset downloads
// are skip-on-exists, while rendered pages are rewritten every run.
//
// Example usage:
//
//	builder, err := site.NewBuilder(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	if err := builder.Build(ctx); err != nil {
//	    return err
//	}
type Builder struct {
	cfg        *config.Config
	fetcher    *feed.Fetcher
	downloader *download.Downloader
	renderer   *render.Renderer
	log        *slog.Logger
}

// NewBuilder wires the pipeline stages for one site.
//
// Fails if the configured templates or theme directory does not exist,
// or if a required config key is missing.
func NewBuilder(cfg *config.Config, log *slog.Logger) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(cfg, log)
	if err != nil {
		return nil, err
	}

	client := http.NewClient()
	return &Builder{
		cfg:        cfg,
		fetcher:    feed.NewFetcher(client, log),
		downloader: download.NewDownloader(client, cfg.OutputDir, log),
		renderer:   renderer,
		log:        log,
	}, nil
}

// Build runs the whole pipeline once.
//
// Any stage error aborts the run and is propagated; there are no retries.
// The only tolerated degradation is a feed without items, which produces
// a site with no episode pages.
func (b *Builder) Build(ctx context.Context) error {
	if err := b.makeDirs(); err != nil {
		return err
	}

	parsed, err := b.fetcher.Fetch(ctx, b.cfg.FeedURL)
	if err != nil {
		return err
	}

	episodes, err := b.fetcher.Episodes(parsed)
	if err != nil {
		return err
	}

	if err := b.downloader.Audio(ctx, episodes); err != nil {
		return err
	}
	if err := b.downloader.CoverArt(ctx, parsed.CoverURL()); err != nil {
		return err
	}

	if err := b.renderer.Sitemap(episodes); err != nil {
		return err
	}
	if err := b.renderer.FrontPage(episodes, parsed); err != nil {
		return err
	}
	if err := b.renderer.Episodes(episodes, parsed); err != nil {
		return err
	}

	b.log.Info("site built", "output", b.cfg.OutputDir, "episodes", len(episodes))
	return nil
}

// makeDirs creates the output tree skeleton.
func (b *Builder) makeDirs() error {
	b.log.Debug("making directories")
	for _, dir := range []string{"audio", "episode"} {
		if err := ioutils.EnsureDir(filepath.Join(b.cfg.OutputDir, dir)); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return nil
}
