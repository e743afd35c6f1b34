package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Client wraps HTTP operations for feed and asset fetching.
//
// Client provides:
//   - A configured User-Agent header
//   - Redirect following (default transport behavior)
//   - Non-200 responses surfaced as errors
//   - Streaming file downloads that never buffer whole audio files
//
// No request timeout is configured: episode audio can be arbitrarily
// large, and the pipeline is a batch run where the context is the only
// interruption mechanism.
//
// Example usage:
//
//	client := http.NewClient()
//
//	// Fetch feed bytes
//	body, err := client.Get(ctx, "https://example.com/feed.xml")
//
//	// Stream an audio file to disk
//	err = client.DownloadFile(ctx, mp3URL, "/site/audio/ep1.mp3")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for the pipeline.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  "podsite",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/cover.jpg")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// DownloadFile downloads a file to the specified path.
//
// The file is created (or truncated if it exists) and the content is
// streamed directly to disk, avoiding loading the entire file into memory.
// Redirects are followed. The caller decides whether a download should
// happen at all; this method does not check for existing files.
//
// Example:
//
//	err := client.DownloadFile(ctx, mp3URL, "/site/audio/ep1.mp3")
func (c *Client) DownloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d: %s", url, resp.StatusCode, resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, resp.Body)
	return err
}
