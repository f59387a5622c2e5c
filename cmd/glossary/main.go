package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Jeffin03/DevDigest/app/cfg"
	"github.com/Jeffin03/DevDigest/app/glossary"
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

	categories, err := glossary.LoadCategories(c.CategoriesFile)
	if err != nil {
		slog.Error("Failed to load categories", "error", err)
		os.Exit(1)
	}
	slog.Debug("Categories loaded", "count", len(categories))

	httpClient := &http.Client{Timeout: c.GetHTTPTimeout()}
	client := glossary.NewClient(httpClient, glossary.DefaultRESTURL, glossary.DefaultActionURL, c.UserAgent)
	glossaryStore := store.NewGlossaryStore(c.GlossaryFile)

	selector := glossary.NewSelector(client, glossaryStore, categories, c.MaxAttempts, c.GetAttemptDelay())

	state, record, err := selector.Run(context.Background())
	if err != nil {
		slog.Error("Selection failed", "error", err)
		os.Exit(1)
	}

	switch state {
	case glossary.StateFound:
		slog.Info("Saved glossary entry", "category", record.Category, "topic", record.Topic, "file", c.GlossaryFile)
	case glossary.StateExhausted:
		slog.Error("No new topic found", "attempts", c.MaxAttempts)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
