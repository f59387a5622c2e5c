package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Jeffin03/DevDigest/app/cfg"
	"github.com/Jeffin03/DevDigest/app/news"
	"github.com/Jeffin03/DevDigest/app/store"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	c, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if c == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(c.Debug)

	httpClient := &http.Client{Timeout: c.GetHTTPTimeout()}

	hackerNews := news.NewHackerNewsClient(httpClient, news.DefaultHackerNewsURL, c.UserAgent)
	techNews := news.NewTechNewsFetcher(c.TechFeedURL, c.UserAgent)
	newsStore := store.NewNewsStore(c.NewsFile)

	collector := news.NewCollector(hackerNews, techNews, newsStore, c.StoryLimit)

	count, err := collector.Run(context.Background())
	if err != nil {
		slog.Error("Collection failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Collector finished", "stories", count, "file", c.NewsFile)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
