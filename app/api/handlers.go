package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Jeffin03/DevDigest/app/cfg"
	"github.com/gin-gonic/gin"
)

func NewHandler(newsSource NewsSource, glossarySource GlossarySource) *Handler {
	return &Handler{
		newsSource:     newsSource,
		glossarySource: glossarySource,
	}
}

type storyView struct {
	Date       string
	Source     string
	Title      string
	URL        string
	Score      int
	BadgeClass string
}

type dashboardView struct {
	Warning string
	Query   Query
	Dates   []string
	Sources []string
	Stats   Stats
	Stories []storyView
}

func (h *Handler) Dashboard(c *gin.Context) {
	query := ParseQuery(c)
	view := dashboardView{Query: query}

	records, err := h.newsSource.Load()
	if err != nil {
		slog.Error("Failed to load news data", "error", err)
		view.Warning = "Could not load the news data file. Run the collector or check the file."
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	if len(records) == 0 {
		view.Warning = "No data available yet. Run the collector or wait for the next scheduled run."
		c.HTML(http.StatusOK, "dashboard", view)
		return
	}

	view.Dates = DistinctDates(records)
	view.Sources = DistinctSources(records)

	filtered := ApplyQuery(records, query)
	view.Stats = Summarize(filtered)

	view.Stories = make([]storyView, 0, len(filtered))
	for _, record := range filtered {
		badge := "tech-badge"
		if strings.Contains(record.Source, "Hacker") {
			badge = "hn-badge"
		}

		view.Stories = append(view.Stories, storyView{
			Date:       record.Date,
			Source:     record.Source,
			Title:      record.Title,
			URL:        record.URL,
			Score:      record.Score,
			BadgeClass: badge,
		})
	}

	c.HTML(http.StatusOK, "dashboard", view)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
	}

	if records, err := h.newsSource.Load(); err == nil {
		health["stories"] = len(records)
	}
	if records, err := h.glossarySource.Load(); err == nil {
		health["glossary_entries"] = len(records)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) APIListStories(c *gin.Context) {
	records, err := h.newsSource.Load()
	if err != nil {
		slog.Error("Failed to load news data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load news data"})
		return
	}

	filtered := ApplyQuery(records, ParseQuery(c))

	stories := make([]map[string]interface{}, 0, len(filtered))
	for _, record := range filtered {
		stories = append(stories, map[string]interface{}{
			"date":   record.Date,
			"source": record.Source,
			"title":  record.Title,
			"url":    record.URL,
			"score":  record.Score,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"stories": stories,
		"total":   len(stories),
		"stats":   Summarize(filtered),
	})
}

func (h *Handler) APIListGlossary(c *gin.Context) {
	records, err := h.glossarySource.Load()
	if err != nil {
		slog.Error("Failed to load glossary data", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load glossary data"})
		return
	}

	entries := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		entries = append(entries, map[string]interface{}{
			"date_added": record.DateAdded,
			"category":   record.Category,
			"topic":      record.Topic,
			"definition": record.Definition,
			"url":        record.URL,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"entries": entries,
		"total":   len(entries),
	})
}
