// Package model defines the core data structures used throughout podsite.
//
// # Episode
//
// Episode represents one enclosure-bearing feed item with derived fields
// computed at construction time:
//
//	ep, err := model.NewEpisode(title, desc, descHTML, enclosure, meta)
//	fmt.Println(ep.Slug)     // URL-safe page path segment
//	fmt.Println(ep.FileName) // Local audio file name
//
// Items without an enclosure never become episodes; the feed package drops
// them during extraction.
//
// # Determinism
//
// All derivations are pure functions of the feed item, so re-running the
// pipeline against an unchanged feed produces identical paths. This is what
// makes the downloader's skip-on-exists check safe.
package model
