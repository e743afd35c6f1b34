// Package site orchestrates the feed-to-site pipeline.
//
// The Builder wires config, feed fetcher, asset downloader, and renderer,
// and runs them in order:
//
//	builder, err := site.NewBuilder(cfg, logger)
//	err = builder.Build(ctx)
//
// Output tree (relative to the configured output directory):
//
//	index.html
//	sitemap.xml
//	cover_art.jpg
//	small_cover_art.jpg
//	audio/<file_name>
//	episode/<slug>/index.html
package site
