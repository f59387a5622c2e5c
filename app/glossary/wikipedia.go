package glossary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultRESTURL   = "https://en.wikipedia.org/api/rest_v1"
	DefaultActionURL = "https://en.wikipedia.org/w/api.php"
)

// Client wraps the two Wikipedia endpoints the collector needs: the REST
// summary endpoint and the action API category member listing. Every call
// is a single attempt; retrying is the selector's concern.
type Client struct {
	httpClient *http.Client
	restURL    string
	actionURL  string
	userAgent  string
}

func NewClient(httpClient *http.Client, restURL, actionURL, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		restURL:    restURL,
		actionURL:  actionURL,
		userAgent:  userAgent,
	}
}

type summaryResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Summary fetches the summary of a topic. It returns (nil, nil) when the
// page does not exist, has an empty extract, or is a disambiguation page.
func (c *Client) Summary(ctx context.Context, topic string) (*Record, error) {
	reqURL := c.restURL + "/page/summary/" + url.PathEscape(topic)

	data, status, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", status)
	}

	var summary summaryResponse
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary: %w", err)
	}

	if summary.Extract == "" || summary.Type == "disambiguation" {
		return nil, nil
	}

	title := summary.Title
	if title == "" {
		title = topic
	}

	return &Record{
		Topic:      title,
		Definition: summary.Extract,
		URL:        summary.ContentURLs.Desktop.Page,
	}, nil
}

type categoryMembersResponse struct {
	Query struct {
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
}

// CategoryMembers lists article titles in a category, filtered to usable
// glossary candidates. Returns nil when the category is empty or the
// listing yields no candidates.
func (c *Client) CategoryMembers(ctx context.Context, category string, limit int) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "categorymembers")
	params.Set("cmtitle", "Category:"+category)
	params.Set("cmlimit", strconv.Itoa(limit))
	params.Set("cmnamespace", "0")
	params.Set("format", "json")

	data, status, err := c.get(ctx, c.actionURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", status)
	}

	var result categoryMembersResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode category members: %w", err)
	}

	titles := make([]string, 0, len(result.Query.CategoryMembers))
	for _, member := range result.Query.CategoryMembers {
		titles = append(titles, member.Title)
	}

	return FilterCandidates(titles), nil
}

// FilterCandidates drops titles that make poor glossary entries:
// "List of ..." index pages and disambiguation pages.
func FilterCandidates(titles []string) []string {
	var candidates []string
	for _, title := range titles {
		if strings.HasPrefix(title, "List of") {
			continue
		}
		if strings.Contains(title, "(disambiguation)") {
			continue
		}
		candidates = append(candidates, title)
	}
	return candidates
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, resp.StatusCode, nil
}
