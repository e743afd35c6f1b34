package render

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/flosch/pongo2/v6"

	"podsite/internal/config"
	"podsite/internal/feed"
	ioutils "podsite/internal/io"
	"podsite/internal/model"
)

// Template names the renderer looks up. Supplying these files is the
// site owner's responsibility; a missing one is fatal.
const (
	SitemapTemplate   = "sitemap.xml"
	FrontPageTemplate = "frontpage.html"
	EpisodeTemplate   = "episode.html"
)

// Renderer renders the site pages from two template sources.
//
// Structural templates (the sitemap) come from the templates directory;
// themeable pages (front page, episode pages) come from the configured
// theme directory, so swapping the theme never touches structural output.
//
// Unlike asset downloads, renders are not skipped when the destination
// exists: every run rewrites every page, which is how re-runs pick up
// feed changes even with fully cached assets.
//
// Example usage:
//
//	r, err := render.NewRenderer(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	err = r.Sitemap(episodes)
//	err = r.FrontPage(episodes, parsed)
//	err = r.Episodes(episodes, parsed)
type Renderer struct {
	cfg        *config.Config
	structural *pongo2.TemplateSet
	theme      *pongo2.TemplateSet
	log        *slog.Logger
}

// NewRenderer creates a Renderer with template sets rooted at the
// configured templates and theme directories.
//
// Fails if either directory does not exist.
func NewRenderer(cfg *config.Config, log *slog.Logger) (*Renderer, error) {
	structuralLoader, err := pongo2.NewLocalFileSystemLoader(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("templates dir %s: %w", cfg.TemplatesDir, err)
	}

	themeLoader, err := pongo2.NewLocalFileSystemLoader(cfg.ThemeDir)
	if err != nil {
		return nil, fmt.Errorf("theme dir %s: %w", cfg.ThemeDir, err)
	}

	return &Renderer{
		cfg:        cfg,
		structural: pongo2.NewSet("structural", structuralLoader),
		theme:      pongo2.NewSet("theme", themeLoader),
		log:        log,
	}, nil
}

// Sitemap renders the sitemap template to <output>/sitemap.xml.
//
// Context: config, episodes.
func (r *Renderer) Sitemap(episodes []*model.Episode) error {
	r.log.Debug("rendering sitemap")
	dest := filepath.Join(r.cfg.OutputDir, "sitemap.xml")
	return r.renderTo(r.structural, SitemapTemplate, pongo2.Context{
		"config":   r.cfg.TemplateContext(),
		"episodes": episodes,
	}, dest)
}

// FrontPage renders the theme's front page template to <output>/index.html.
//
// Context: config, episodes, podcast (the parsed feed).
func (r *Renderer) FrontPage(episodes []*model.Episode, parsed *feed.Feed) error {
	r.log.Debug("rendering front page")
	dest := filepath.Join(r.cfg.OutputDir, "index.html")
	return r.renderTo(r.theme, FrontPageTemplate, pongo2.Context{
		"config":   r.cfg.TemplateContext(),
		"episodes": episodes,
		"podcast":  parsed,
	}, dest)
}

// Episodes renders the theme's episode template once per episode to
// <output>/episode/<slug>/index.html, creating each directory as needed.
//
// Context per page: config, episode, podcast.
func (r *Renderer) Episodes(episodes []*model.Episode, parsed *feed.Feed) error {
	r.log.Debug("rendering episodes", "count", len(episodes))

	for _, ep := range episodes {
		dir := filepath.Join(r.cfg.OutputDir, "episode", ep.Slug)
		if err := ioutils.EnsureDir(dir); err != nil {
			return fmt.Errorf("create episode dir %s: %w", dir, err)
		}

		r.log.Debug("rendering episode", "slug", ep.Slug)
		dest := filepath.Join(dir, "index.html")
		err := r.renderTo(r.theme, EpisodeTemplate, pongo2.Context{
			"config":  r.cfg.TemplateContext(),
			"episode": ep,
			"podcast": parsed,
		}, dest)
		if err != nil {
			return err
		}
	}

	return nil
}

// renderTo looks up a template, executes it, and overwrites dest with the
// result. Lookup and execution failures are both fatal.
func (r *Renderer) renderTo(set *pongo2.TemplateSet, name string, ctx pongo2.Context, dest string) error {
	tpl, err := set.FromFile(name)
	if err != nil {
		return fmt.Errorf("load template %s: %w", name, err)
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return fmt.Errorf("render template %s: %w", name, err)
	}

	if err := ioutils.WriteFile(dest, []byte(out)); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	return nil
}
