// Package feed loads and normalizes a podcast syndication feed.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Enclosure is an item's embedded reference to a downloadable media file.
// Length is carried as reported by the feed, without interpretation.
type Enclosure struct {
	URL    string
	Length string
}

// Item is one feed entry.
type Item struct {
	Title       string
	Description string
	Published   *time.Time
	Created     *time.Time
	ImageURL    string
	Enclosures  []Enclosure
}

// Feed is a parsed syndication feed.
type Feed struct {
	Title    string
	ImageURL string
	Items    []Item
}

// Fetch downloads and parses the feed at url. Non-2xx responses are not an
// error: some feed hosts answer with odd status codes but still serve a
// parseable body, so only transport and parse failures are reported.
func Fetch(ctx context.Context, client *http.Client, url string) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	return fromGofeed(parsed), nil
}

func fromGofeed(parsed *gofeed.Feed) *Feed {
	f := &Feed{Title: parsed.Title}
	if parsed.Image != nil {
		f.ImageURL = parsed.Image.URL
	}

	for _, item := range parsed.Items {
		created := item.PublishedParsed
		if item.UpdatedParsed != nil {
			created = item.UpdatedParsed
		}

		out := Item{
			Title:       item.Title,
			Description: item.Description,
			Published:   item.PublishedParsed,
			Created:     created,
		}
		if item.Image != nil {
			out.ImageURL = item.Image.URL
		}
		for _, enc := range item.Enclosures {
			if enc == nil {
				continue
			}
			out.Enclosures = append(out.Enclosures, Enclosure{URL: enc.URL, Length: enc.Length})
		}
		f.Items = append(f.Items, out)
	}
	return f
}
