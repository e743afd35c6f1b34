// Package feed fetches podcast RSS feeds and extracts episodes from them.
//
// # Parsing
//
// Feeds are decoded into typed structs at the parse boundary rather than
// accessed as a generic mapping; consumers read fields, not string paths:
//
//	parsed, err := feed.Parse(body)
//	fmt.Println(parsed.Channel.Title)
//
// Parsing is best-effort: optional elements decode to zero values, and a
// channel-less or item-less feed is valid. Malformed XML is an error.
//
// # Extraction
//
// Episodes walks the channel's items in order and keeps those with a
// downloadable enclosure:
//
//	fetcher := feed.NewFetcher(client, logger)
//	parsed, err := fetcher.Fetch(ctx, feedURL)
//	episodes, err := fetcher.Episodes(parsed)
//
// Items without an enclosure are dropped silently. Items with an
// enclosure but an unusable title or URL are errors — the old behavior of
// collapsing every lookup failure into "zero episodes" masked malformed
// feeds.
package feed
