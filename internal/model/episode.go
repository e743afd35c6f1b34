package model

import (
	"fmt"
	"net/url"
	"path"

	"github.com/gosimple/slug"
)

// Enclosure carries the downloadable media reference of a feed item.
//
// The fields mirror the attributes of the RSS <enclosure> element and are
// kept verbatim so templates can show the advertised length and MIME type.
type Enclosure struct {
	// URL is the media download URL.
	URL string

	// Length is the advertised size in bytes, as a string (feeds are not
	// reliable enough to parse this into a number).
	Length string

	// Type is the MIME type, e.g. "audio/mpeg".
	Type string
}

// Episode represents one enclosure-bearing feed item, ready for download
// and rendering.
//
// Episode contains everything the downloader and renderer need:
//   - AudioURL and FileName for fetching and storing the audio file
//   - Slug for the per-episode page path
//   - DescriptionHTML for rendering show notes
//   - Carried feed metadata for templates (PubDate, Link, Author, ...)
//
// Derived fields are computed once by NewEpisode and never change, so the
// same feed always produces the same output paths.
//
// Example:
//
//	ep, err := model.NewEpisode("Episode One!", desc, descHTML, enc, meta)
//	// ep.Slug = "episode-one"
//	// ep.FileName = "ep1.mp3" for enc.URL "https://cdn.example/ep1.mp3?token=abc"
type Episode struct {
	// Title is the episode title as published in the feed.
	Title string

	// Description is the raw description markup from the feed.
	Description string

	// DescriptionHTML is the description rendered to HTML, with bare
	// URLs and e-mail addresses converted to links.
	DescriptionHTML string

	// AudioURL is the enclosure URL the audio file is downloaded from.
	AudioURL string

	// FileName is the local audio file name: the final path segment of
	// AudioURL, query string and fragment excluded.
	FileName string

	// Slug is the URL-safe identifier derived from Title, used as the
	// episode page directory name.
	Slug string

	// Enclosure is the original enclosure metadata.
	Enclosure Enclosure

	// Meta carries the remaining feed item fields for templates.
	Meta Meta
}

// Meta holds feed item metadata carried through to templates unmodified.
type Meta struct {
	PubDate  string
	Link     string
	GUID     string
	Author   string
	Duration string
}

// NewEpisode creates an Episode with computed slug and file name.
//
// The slug is derived from the title: lowercased, non-alphanumeric runs
// collapsed to a single "-", leading/trailing separators trimmed. The
// derivation is deterministic, so re-running the pipeline yields the same
// episode paths.
//
// The file name is the base of the enclosure URL's path; query string and
// fragment never leak into it.
//
// Returns an error if:
//   - The enclosure URL cannot be parsed
//   - No file name can be derived (URL path is empty)
//   - The title yields an empty slug
func NewEpisode(title, description, descriptionHTML string, enc Enclosure, meta Meta) (*Episode, error) {
	fileName, err := fileNameFromURL(enc.URL)
	if err != nil {
		return nil, fmt.Errorf("episode %q: %w", title, err)
	}

	s := slug.Make(title)
	if s == "" {
		return nil, fmt.Errorf("episode %q: cannot derive slug from title", title)
	}

	return &Episode{
		Title:           title,
		Description:     description,
		DescriptionHTML: descriptionHTML,
		AudioURL:        enc.URL,
		FileName:        fileName,
		Slug:            s,
		Enclosure:       enc,
		Meta:            meta,
	}, nil
}

// fileNameFromURL extracts the final path segment of a URL.
//
// Example:
//
//	fileNameFromURL("https://cdn.example/shows/ep1.mp3?token=abc") // "ep1.mp3"
func fileNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid enclosure URL %q: %w", rawURL, err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("cannot derive file name from enclosure URL %q", rawURL)
	}

	return name, nil
}
