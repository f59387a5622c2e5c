package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// memberLimit is the page size for category member listings.
const memberLimit = 500

type State int

const (
	StateSearching State = iota
	StateFound
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateSearching:
		return "searching"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// API is the subset of the Wikipedia client the selector needs.
type API interface {
	Summary(ctx context.Context, topic string) (*Record, error)
	CategoryMembers(ctx context.Context, category string, limit int) ([]string, error)
}

var _ API = (*Client)(nil)

// Selector runs the bounded category-sampling loop: pick a random
// category, pick a random member, skip anything already collected, and
// stop on the first topic whose summary is retrieved and written. The loop
// gives up after maxAttempts attempts; categories may repeat across
// attempts.
type Selector struct {
	api         API
	store       Store
	categories  []string
	maxAttempts int
	delay       time.Duration
}

func NewSelector(api API, store Store, categories []string, maxAttempts int, delay time.Duration) *Selector {
	return &Selector{
		api:         api,
		store:       store,
		categories:  categories,
		maxAttempts: maxAttempts,
		delay:       delay,
	}
}

// Run executes one selection pass. It returns StateFound with the written
// record, or StateExhausted with a nil record once the attempt cap is hit.
// Once exhausted, nothing has been written.
func (s *Selector) Run(ctx context.Context) (State, *Record, error) {
	if len(s.categories) == 0 {
		return StateExhausted, nil, fmt.Errorf("no categories configured")
	}

	seen, err := s.store.SeenTopics()
	if err != nil {
		slog.Warn("Failed to load collected topics, continuing with empty set", "error", err)
		seen = make(map[string]struct{})
	}
	slog.Debug("Loaded de-duplication set", "topics", len(seen))

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		record, err := s.attempt(ctx, seen)
		if err != nil {
			return StateSearching, nil, err
		}
		if record != nil {
			slog.Info("Topic selected", "attempt", attempt, "category", record.Category, "topic", record.Topic)
			return StateFound, record, nil
		}

		if attempt < s.maxAttempts {
			select {
			case <-ctx.Done():
				return StateSearching, nil, ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	return StateExhausted, nil, nil
}

// attempt performs a single sampling round. A nil record with a nil error
// means the round failed and the loop should keep searching; an error is
// only returned for a write failure on the glossary file.
func (s *Selector) attempt(ctx context.Context, seen map[string]struct{}) (*Record, error) {
	category := s.categories[rand.Intn(len(s.categories))]

	members, err := s.api.CategoryMembers(ctx, category, memberLimit)
	if err != nil {
		slog.Warn("Failed to list category members", "category", category, "error", err)
		return nil, nil
	}
	if len(members) == 0 {
		slog.Debug("Category has no usable candidates", "category", category)
		return nil, nil
	}

	topic := members[rand.Intn(len(members))]
	if _, collected := seen[NormalizeTopic(topic)]; collected {
		slog.Debug("Topic already collected, skipping", "topic", topic)
		return nil, nil
	}

	record, err := s.api.Summary(ctx, topic)
	if err != nil {
		slog.Warn("Failed to fetch summary", "topic", topic, "error", err)
		return nil, nil
	}
	if record == nil {
		slog.Debug("No usable summary", "topic", topic)
		return nil, nil
	}

	record.DateAdded = time.Now().In(time.Local).Format("2006-01-02")
	record.Category = category

	if err := s.store.Append(*record); err != nil {
		return nil, fmt.Errorf("failed to store record: %w", err)
	}
	seen[NormalizeTopic(record.Topic)] = struct{}{}

	return record, nil
}
