package search

import (
	"context"
	"testing"

	"github.com/goliatone/go-blog/content"
)

func testCollection() []*content.Record {
	return []*content.Record{
		{
			Slug:        "structured-logging",
			Title:       "Structured Logging in Go",
			Description: "Shaping log output for machines.",
			Tags:        []string{"go", "logging"},
		},
		{
			Slug:        "pagination-math",
			Title:       "Pagination Math",
			Description: "Windows, clamps, and page counts.",
			Tags:        []string{"go"},
		},
		{
			Slug:        "garden-notes",
			Title:       "Garden Notes",
			Description: "Nothing technical here.",
			Excerpt:     "Tomatoes and structured beds.",
		},
	}
}

func TestSearch_RanksMatches(t *testing.T) {
	idx, err := BuildIndex(testCollection())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(context.Background(), "logging", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatalf("expected hits for %q", "logging")
	}
	if hits[0].Slug != "structured-logging" {
		t.Fatalf("title match should rank first, got %q", hits[0].Slug)
	}
	if hits[0].Score <= 0 {
		t.Fatalf("hits must carry a positive score: %+v", hits[0])
	}
	if hits[0].Title != "Structured Logging in Go" {
		t.Fatalf("hit should carry the stored title, got %q", hits[0].Title)
	}
}

func TestSearch_MatchesExcerptAndTags(t *testing.T) {
	idx, err := BuildIndex(testCollection())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(context.Background(), "tomatoes", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Slug != "garden-notes" {
		t.Fatalf("excerpt terms must be searchable: %+v", hits)
	}
}

func TestSearch_LimitAndEmptyResult(t *testing.T) {
	idx, err := BuildIndex(testCollection())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(context.Background(), "go", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) > 1 {
		t.Fatalf("limit not honored: %+v", hits)
	}

	hits, err = idx.Search(context.Background(), "zebra", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits, got %+v", hits)
	}
}
