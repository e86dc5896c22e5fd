package query

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-blog/content"
)

func fixture() []*content.Record {
	return []*content.Record{
		{Slug: "go-generics", Title: "Generics in Go", Description: "Type parameters explained", Excerpt: "A tour of constraints", Tags: []string{"Go", "language"}},
		{Slug: "sql-tuning", Title: "SQL Tuning", Description: "Query plans and indexes", Excerpt: "EXPLAIN in anger", Tags: []string{"databases"}},
		{Slug: "go-profiling", Title: "Profiling Go Services", Description: "pprof from scratch", Excerpt: "Flame graphs", Tags: []string{"go", "performance"}},
	}
}

func slugs(records []*content.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Slug
	}
	return out
}

func TestFilter_TagIsCaseInsensitive(t *testing.T) {
	got := Filter(fixture(), Criteria{Tag: "GO"})
	want := []string{"go-generics", "go-profiling"}
	if !reflect.DeepEqual(slugs(got), want) {
		t.Fatalf("tag filter mismatch: %v", slugs(got))
	}
}

func TestFilter_QueryMatchesAnyOfThreeFields(t *testing.T) {
	records := fixture()

	if got := Filter(records, Criteria{Query: "generics"}); len(got) != 1 || got[0].Slug != "go-generics" {
		t.Fatalf("title match failed: %v", slugs(got))
	}
	if got := Filter(records, Criteria{Query: "query plans"}); len(got) != 1 || got[0].Slug != "sql-tuning" {
		t.Fatalf("description match failed: %v", slugs(got))
	}
	if got := Filter(records, Criteria{Query: "FLAME"}); len(got) != 1 || got[0].Slug != "go-profiling" {
		t.Fatalf("excerpt match failed: %v", slugs(got))
	}
}

func TestFilter_ConjunctiveAndCommutative(t *testing.T) {
	records := fixture()
	c := Criteria{Tag: "go", Query: "pprof"}

	both := Filter(records, c)
	if len(both) != 1 || both[0].Slug != "go-profiling" {
		t.Fatalf("conjunctive filter mismatch: %v", slugs(both))
	}

	tagFirst := Filter(Filter(records, Criteria{Tag: c.Tag}), Criteria{Query: c.Query})
	queryFirst := Filter(Filter(records, Criteria{Query: c.Query}), Criteria{Tag: c.Tag})

	if !reflect.DeepEqual(slugs(both), slugs(tagFirst)) || !reflect.DeepEqual(slugs(both), slugs(queryFirst)) {
		t.Fatalf("filters do not commute: both=%v tagFirst=%v queryFirst=%v",
			slugs(both), slugs(tagFirst), slugs(queryFirst))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := fixture()
	c := Criteria{Tag: "go"}

	once := Filter(records, c)
	twice := Filter(once, c)
	if !reflect.DeepEqual(slugs(once), slugs(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", slugs(once), slugs(twice))
	}
}

func TestFilter_EmptyCriteriaPassesThroughInOrder(t *testing.T) {
	records := fixture()
	got := Filter(records, Criteria{})

	if !reflect.DeepEqual(slugs(got), slugs(records)) {
		t.Fatalf("order not preserved: %v", slugs(got))
	}
	if len(got) > 0 && &got[0] == &records[0] {
		t.Fatalf("expected a new slice, not the input")
	}
}

func TestFilter_NoMatchesYieldsEmptySlice(t *testing.T) {
	got := Filter(fixture(), Criteria{Tag: "rust"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
