package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const DefaultHackerNewsURL = "https://hacker-news.firebaseio.com/v0"

// topIDLimit caps how many top story IDs are considered per run.
const topIDLimit = 30

type HackerNewsClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewHackerNewsClient(httpClient *http.Client, baseURL, userAgent string) *HackerNewsClient {
	return &HackerNewsClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

type hnItem struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// TopStories returns up to limit normalized records from the Hacker News
// top stories listing. Individual item failures are logged and skipped;
// only a failure to fetch the listing itself is returned as an error.
func (c *HackerNewsClient) TopStories(ctx context.Context, limit int) ([]Record, error) {
	var ids []int
	if err := c.getJSON(ctx, c.baseURL+"/topstories.json", &ids); err != nil {
		return nil, fmt.Errorf("failed to fetch top stories: %w", err)
	}

	if len(ids) > topIDLimit {
		ids = ids[:topIDLimit]
	}

	records := make([]Record, 0, limit)
	for _, id := range ids {
		if len(records) >= limit {
			break
		}

		var item hnItem
		url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
		if err := c.getJSON(ctx, url, &item); err != nil {
			slog.Warn("Failed to fetch story, skipping", "id", id, "error", err)
			continue
		}

		if item.Title == "" {
			continue
		}

		storyURL := item.URL
		if storyURL == "" {
			// Ask HN and similar text posts have no external URL
			storyURL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", item.ID)
		}

		records = append(records, Record{
			Source: SourceHackerNews,
			Title:  item.Title,
			URL:    storyURL,
			Score:  item.Score,
		})
	}

	return records, nil
}

func (c *HackerNewsClient) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
