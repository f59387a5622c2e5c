package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type captureStore struct {
	records []Record
	err     error
}

func (s *captureStore) Append(records []Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, records...)
	return nil
}

func TestCollector_Run_PartialFailure(t *testing.T) {
	// Hacker News listing fails, tech news succeeds; the tech records
	// must still be collected.
	hnServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer hnServer.Close()

	techServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testRSSFeed)
	}))
	defer techServer.Close()

	store := &captureStore{}
	collector := NewCollector(
		NewHackerNewsClient(hnServer.Client(), hnServer.URL, "test-agent"),
		NewTechNewsFetcher(techServer.URL, "test-agent"),
		store,
		5,
	)

	count, err := collector.Run(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if count != 3 {
		t.Errorf("Expected 3 records from the surviving source, got %d", count)
	}
	for i, record := range store.records {
		if record.Source != SourceTechNews {
			t.Errorf("Record %d: expected source '%s', got '%s'", i, SourceTechNews, record.Source)
		}
	}
}

func TestCollector_Run_StampsDate(t *testing.T) {
	hnServer := newHNTestServer(t, []int{1}, map[int]string{
		1: `{"id":1,"type":"story","title":"Story","url":"https://example.com","score":1}`,
	})
	defer hnServer.Close()

	techServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testRSSFeed)
	}))
	defer techServer.Close()

	store := &captureStore{}
	collector := NewCollector(
		NewHackerNewsClient(hnServer.Client(), hnServer.URL, "test-agent"),
		NewTechNewsFetcher(techServer.URL, "test-agent"),
		store,
		1,
	)

	if _, err := collector.Run(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	today := time.Now().In(time.Local).Format("2006-01-02")
	for i, record := range store.records {
		if record.Date != today {
			t.Errorf("Record %d: expected date '%s', got '%s'", i, today, record.Date)
		}
	}
}

func TestCollector_Run_StoreError(t *testing.T) {
	hnServer := newHNTestServer(t, []int{1}, map[int]string{
		1: `{"id":1,"type":"story","title":"Story","url":"https://example.com","score":1}`,
	})
	defer hnServer.Close()

	techServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testRSSFeed)
	}))
	defer techServer.Close()

	store := &captureStore{err: fmt.Errorf("disk full")}
	collector := NewCollector(
		NewHackerNewsClient(hnServer.Client(), hnServer.URL, "test-agent"),
		NewTechNewsFetcher(techServer.URL, "test-agent"),
		store,
		1,
	)

	if _, err := collector.Run(context.Background()); err == nil {
		t.Error("Expected error when the store rejects the append")
	}
}
