package feed

import (
	"context"
	"fmt"
	"log/slog"

	"podsite/internal/http"
	"podsite/internal/markup"
	"podsite/internal/model"
)

// Fetcher retrieves and parses a podcast feed, and extracts episodes
// from it.
//
// Example usage:
//
//	fetcher := feed.NewFetcher(client, logger)
//
//	podcast, err := fetcher.Fetch(ctx, cfg.FeedURL)
//	if err != nil {
//	    return err
//	}
//
//	episodes, err := fetcher.Episodes(podcast)
type Fetcher struct {
	client *http.Client
	markup *markup.Renderer
	log    *slog.Logger
}

// NewFetcher creates a Fetcher using the given HTTP client.
func NewFetcher(client *http.Client, log *slog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		markup: markup.NewRenderer(),
		log:    log,
	}
}

// Fetch GETs the feed URL and parses the response body.
//
// Network failures (unreachable host, non-200 status) and XML parse
// failures are propagated, not retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Feed, error) {
	f.log.Debug("downloading feed", "url", url)
	body, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	f.log.Debug("parsing feed XML")
	parsed, err := Parse(body)
	if err != nil {
		return nil, err
	}

	return parsed, nil
}

// Episodes extracts episode records from a parsed feed.
//
// Items are walked in feed order. An item without an enclosure (or with
// an empty enclosure URL) is skipped silently; a feed without a channel
// or items yields an empty slice and no error. A malformed item that does
// have an enclosure — one whose title yields no slug, or whose URL yields
// no file name — is an error rather than being swallowed.
func (f *Fetcher) Episodes(parsed *Feed) ([]*model.Episode, error) {
	f.log.Debug("processing episodes")

	if parsed == nil || parsed.Channel == nil || len(parsed.Channel.Items) == 0 {
		f.log.Debug("feed has no items")
		return nil, nil
	}

	var episodes []*model.Episode
	for _, item := range parsed.Channel.Items {
		if item.Enclosure == nil || item.Enclosure.URL == "" {
			f.log.Debug("skipping item without enclosure", "title", item.Title)
			continue
		}

		descHTML, err := f.markup.Render(item.Description)
		if err != nil {
			return nil, fmt.Errorf("render description for %q: %w", item.Title, err)
		}

		ep, err := model.NewEpisode(item.Title, item.Description, descHTML,
			model.Enclosure{
				URL:    item.Enclosure.URL,
				Length: item.Enclosure.Length,
				Type:   item.Enclosure.Type,
			},
			model.Meta{
				PubDate:  item.PubDate,
				Link:     item.Link,
				GUID:     item.GUID,
				Author:   item.Author,
				Duration: item.Duration,
			})
		if err != nil {
			return nil, err
		}

		episodes = append(episodes, ep)
	}

	f.log.Debug("extracted episodes", "count", len(episodes))
	return episodes, nil
}
