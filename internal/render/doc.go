// Package render renders the site's pages from templates.
//
// # Two template sources
//
// Structural templates (sitemap.xml) live in the templates directory;
// themeable pages (frontpage.html, episode.html) live in the configured
// theme directory. Themes are swappable without affecting structural
// output.
//
// Templates use Django/Jinja2 syntax (pongo2) and receive:
//
//	sitemap:    config, episodes
//	front page: config, episodes, podcast
//	episode:    config, episode, podcast
//
// where config is the raw config map, episodes/episode are model.Episode
// values, and podcast is the parsed feed.
//
// # Overwrite semantics
//
// Rendered pages are written unconditionally on every run, unlike assets,
// which are skip-on-exists. Missing templates and execution failures are
// fatal; no partial output is suppressed.
package render
