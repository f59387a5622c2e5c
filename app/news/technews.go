package news

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// TechNewsFetcher reads headlines from an RSS/Atom feed and normalizes
// them to records. RSS items carry no score, so Score stays zero.
type TechNewsFetcher struct {
	parser  *gofeed.Parser
	feedURL string
}

func NewTechNewsFetcher(feedURL, userAgent string) *TechNewsFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &TechNewsFetcher{
		parser:  parser,
		feedURL: feedURL,
	}
}

func (f *TechNewsFetcher) Fetch(ctx context.Context, limit int) ([]Record, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tech news feed: %w", err)
	}

	records := make([]Record, 0, limit)
	for _, item := range feed.Items {
		if len(records) >= limit {
			break
		}
		if item.Title == "" {
			continue
		}

		records = append(records, Record{
			Source: SourceTechNews,
			Title:  item.Title,
			URL:    item.Link,
		})
	}

	return records, nil
}
