package feed

import (
	"encoding/xml"
	"fmt"
)

// Feed is a parsed podcast RSS document.
//
// Only the elements the pipeline consumes are mapped; everything is
// best-effort, so missing optional elements simply decode to zero values.
// A feed without a channel (or with an empty item list) is valid and
// yields zero episodes.
type Feed struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel *Channel `xml:"channel"`
}

// Channel holds podcast-level metadata plus the ordered item list.
type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Language    string `xml:"language"`
	Copyright   string `xml:"copyright"`

	// Author and Subtitle come from the itunes extension elements.
	Author   string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd author"`
	Subtitle string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd subtitle"`

	// Image is the itunes cover art reference. The plain RSS <image>
	// block is ignored; the itunes element is what podcast feeds use.
	Image ItunesImage `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd image"`

	Items []Item `xml:"item"`
}

// ItunesImage is the itunes:image element; the cover art URL lives in the
// href attribute.
type ItunesImage struct {
	Href string `xml:"href,attr"`
}

// Item is one raw feed item. Items without an Enclosure are dropped
// during episode extraction rather than treated as errors.
type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`

	Author   string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd author"`
	Duration string `xml:"http://www.itunes.com/dtds/podcast-1.0.dtd duration"`

	Enclosure *Enclosure `xml:"enclosure"`
}

// Enclosure is the feed item sub-element carrying the downloadable media
// URL and its advertised size and type.
type Enclosure struct {
	URL    string `xml:"url,attr"`
	Length string `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

// Parse decodes feed XML into a Feed.
//
// Malformed XML (including a non-rss root element) is an error. No schema
// validation happens beyond that; downstream consumers tolerate missing
// optional fields.
func Parse(data []byte) (*Feed, error) {
	var f Feed
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse feed XML: %w", err)
	}
	return &f, nil
}

// CoverURL returns the channel's cover art URL, or "" when the feed does
// not carry one.
func (f *Feed) CoverURL() string {
	if f.Channel == nil {
		return ""
	}
	return f.Channel.Image.Href
}
