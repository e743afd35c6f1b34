// Package ioutils provides file system and image utilities for podsite.
//
// This package contains:
//   - File writing and existence checks
//   - Directory creation
//   - Cover art JPEG conversion and thumbnailing
//
// The existence check backs the downloader's idempotent re-runs: assets
// already on disk are never fetched again.
package ioutils
