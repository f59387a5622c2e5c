package glossary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestFilterCandidates(t *testing.T) {
	titles := []string{"List of X", "Y (disambiguation)", "Z"}

	candidates := FilterCandidates(titles)

	expected := []string{"Z"}
	if !reflect.DeepEqual(candidates, expected) {
		t.Errorf("Expected %v, got %v", expected, candidates)
	}
}

func TestFilterCandidates_Empty(t *testing.T) {
	if candidates := FilterCandidates(nil); candidates != nil {
		t.Errorf("Expected nil for empty input, got %v", candidates)
	}
}

func TestClient_Summary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/page/summary/Firewall" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"type": "standard",
			"title": "Firewall (computing)",
			"extract": "A firewall is a network security system.",
			"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Firewall_(computing)"}}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	record, err := client.Summary(context.Background(), "Firewall")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record == nil {
		t.Fatal("Expected a record")
	}

	if record.Topic != "Firewall (computing)" {
		t.Errorf("Expected canonical title, got '%s'", record.Topic)
	}
	if record.Definition == "" {
		t.Error("Definition should not be empty")
	}
	if record.URL != "https://en.wikipedia.org/wiki/Firewall_(computing)" {
		t.Errorf("Unexpected URL: %s", record.URL)
	}
}

func TestClient_Summary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	record, err := client.Summary(context.Background(), "NoSuchPage")
	if err != nil {
		t.Fatalf("404 should not be an error, got: %v", err)
	}
	if record != nil {
		t.Error("Expected nil record for a missing page")
	}
}

func TestClient_Summary_Disambiguation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"type": "disambiguation", "title": "Shell", "extract": "Shell may refer to:"}`)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	record, err := client.Summary(context.Background(), "Shell")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record != nil {
		t.Error("Expected nil record for a disambiguation page")
	}
}

func TestClient_Summary_EmptyExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"type": "standard", "title": "Stub", "extract": ""}`)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	record, err := client.Summary(context.Background(), "Stub")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record != nil {
		t.Error("Expected nil record for an empty extract")
	}
}

func TestClient_CategoryMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("action") != "query" || query.Get("list") != "categorymembers" {
			t.Errorf("Unexpected query parameters: %s", r.URL.RawQuery)
		}
		if query.Get("cmtitle") != "Category:Cryptography" {
			t.Errorf("Expected cmtitle 'Category:Cryptography', got '%s'", query.Get("cmtitle"))
		}
		fmt.Fprint(w, `{"query": {"categorymembers": [
			{"title": "List of ciphers"},
			{"title": "Cipher (disambiguation)"},
			{"title": "Block cipher"}
		]}}`)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	members, err := client.CategoryMembers(context.Background(), "Cryptography", 500)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"Block cipher"}
	if !reflect.DeepEqual(members, expected) {
		t.Errorf("Expected %v, got %v", expected, members)
	}
}

func TestClient_CategoryMembers_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"query": {"categorymembers": []}}`)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, server.URL, "test-agent")

	members, err := client.CategoryMembers(context.Background(), "Empty", 500)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("Expected no members, got %v", members)
	}
}
