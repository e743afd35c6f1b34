// Package http provides the HTTP client used by the feed fetcher and
// asset downloader.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Redirect following for audio CDNs
//   - Non-200 responses surfaced as errors
//   - Streaming downloads to disk
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch the feed
//	body, err := client.Get(ctx, feedURL)
//
//	// Download an audio file
//	err = client.DownloadFile(ctx, mp3URL, "/site/audio/ep1.mp3")
package http
