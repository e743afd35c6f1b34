// Package download fetches podcast assets (episode audio, cover art)
// into the output tree.
//
// # Idempotence
//
// Every download is guarded by a file-existence check: audio files and
// the cover art pair are skipped when already on disk. Re-running the
// pipeline against an unchanged feed therefore leaves assets untouched.
//
// # Basic Usage
//
//	dl := download.NewDownloader(client, cfg.OutputDir, logger)
//
//	err := dl.Audio(ctx, episodes)
//	err = dl.CoverArt(ctx, parsed.CoverURL())
//
// # Failure policy
//
// No retries. The first network or decode failure aborts the run; partial
// files are not cleaned up. This is a batch tool, not a service.
package download
