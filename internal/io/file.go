package ioutils

import "os"

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Rendered pages go through this, so
// re-runs always refresh them.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// FileExists reports whether a regular file exists at path.
//
// The asset downloader uses this for its skip-on-exists check: a file
// that is already present is never re-fetched.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
//
// Example:
//
//	err := EnsureDir("/site/episode/episode-one")
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
