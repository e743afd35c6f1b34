package download

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"podsite/internal/http"
	ioutils "podsite/internal/io"
	"podsite/internal/model"
)

// Cover art file names within the output directory, and the thumbnail
// bound in pixels.
const (
	CoverArtFile      = "cover_art.jpg"
	SmallCoverArtFile = "small_cover_art.jpg"
	thumbnailMaxSize  = 1000
)

// Downloader fetches episode audio and cover art into the output tree.
//
// Downloads are strictly sequential and idempotent: a file that already
// exists on disk is never fetched again, which is what makes re-running
// the whole pipeline cheap. There are no retries; the first failure
// aborts the run.
//
// Example usage:
//
//	dl := download.NewDownloader(client, outputDir, logger)
//
//	if err := dl.Audio(ctx, episodes); err != nil {
//	    return err
//	}
//	if err := dl.CoverArt(ctx, parsed.CoverURL()); err != nil {
//	    return err
//	}
type Downloader struct {
	client    *http.Client
	images    *ioutils.ImageService
	outputDir string
	log       *slog.Logger
}

// NewDownloader creates a Downloader writing into outputDir.
func NewDownloader(client *http.Client, outputDir string, log *slog.Logger) *Downloader {
	return &Downloader{
		client:    client,
		images:    ioutils.NewImageService(),
		outputDir: outputDir,
		log:       log,
	}
}

// Audio downloads each episode's audio file to <output>/audio/<FileName>.
//
// Files already present are skipped. A network failure aborts the
// remaining downloads and is propagated; no partial-file cleanup is
// attempted.
func (d *Downloader) Audio(ctx context.Context, episodes []*model.Episode) error {
	d.log.Debug("downloading episode files", "count", len(episodes))

	for _, ep := range episodes {
		dest := filepath.Join(d.outputDir, "audio", ep.FileName)

		if ioutils.FileExists(dest) {
			d.log.Debug("skipping existing audio file", "file", ep.FileName)
			continue
		}

		d.log.Debug("downloading episode file", "file", ep.FileName, "url", ep.AudioURL)
		if err := d.client.DownloadFile(ctx, ep.AudioURL, dest); err != nil {
			return fmt.Errorf("download audio for %q: %w", ep.Title, err)
		}
	}

	return nil
}

// CoverArt downloads the podcast cover art and writes both the full-size
// JPEG and a thumbnail bounded to 1000x1000.
//
// The two files are treated as one unit: when the full-size file already
// exists, both are skipped and the thumbnail is never regenerated on its
// own. The downloaded bytes must decode as an image; anything else is a
// fatal error for this step.
func (d *Downloader) CoverArt(ctx context.Context, coverURL string) error {
	fullPath := filepath.Join(d.outputDir, CoverArtFile)
	smallPath := filepath.Join(d.outputDir, SmallCoverArtFile)

	if ioutils.FileExists(fullPath) {
		d.log.Debug("skipping existing cover art")
		return nil
	}

	if coverURL == "" {
		return fmt.Errorf("feed has no cover art URL")
	}

	d.log.Debug("downloading cover art", "url", coverURL)
	data, err := d.client.Get(ctx, coverURL)
	if err != nil {
		return fmt.Errorf("download cover art: %w", err)
	}

	full, err := d.images.ToJPEG(data)
	if err != nil {
		return fmt.Errorf("decode cover art: %w", err)
	}
	if err := ioutils.WriteFile(fullPath, full); err != nil {
		return fmt.Errorf("write cover art: %w", err)
	}

	small, err := d.images.Thumbnail(data, thumbnailMaxSize, thumbnailMaxSize)
	if err != nil {
		return fmt.Errorf("thumbnail cover art: %w", err)
	}
	if err := ioutils.WriteFile(smallPath, small); err != nil {
		return fmt.Errorf("write small cover art: %w", err)
	}

	return nil
}
