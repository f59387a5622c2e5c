package news

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Collector runs one collection pass over both news sources. A failure in
// one source yields an empty list for it and never blocks the other.
type Collector struct {
	hackerNews *HackerNewsClient
	techNews   *TechNewsFetcher
	store      Store
	storyLimit int
}

func NewCollector(hackerNews *HackerNewsClient, techNews *TechNewsFetcher, store Store, storyLimit int) *Collector {
	return &Collector{
		hackerNews: hackerNews,
		techNews:   techNews,
		store:      store,
		storyLimit: storyLimit,
	}
}

func (c *Collector) Run(ctx context.Context) (int, error) {
	date := time.Now().In(time.Local).Format("2006-01-02")

	hnRecords, err := c.hackerNews.TopStories(ctx, c.storyLimit)
	if err != nil {
		slog.Error("Hacker News collection failed", "error", err)
		hnRecords = nil
	}

	techRecords, err := c.techNews.Fetch(ctx, c.storyLimit)
	if err != nil {
		slog.Error("Tech news collection failed", "error", err)
		techRecords = nil
	}

	records := make([]Record, 0, len(hnRecords)+len(techRecords))
	records = append(records, hnRecords...)
	records = append(records, techRecords...)
	for i := range records {
		records[i].Date = date
	}

	if err := c.store.Append(records); err != nil {
		return 0, fmt.Errorf("failed to store records: %w", err)
	}

	slog.Info("Collection pass completed",
		"date", date,
		"hacker_news", len(hnRecords),
		"tech_news", len(techRecords),
		"total", len(records))

	return len(records), nil
}
