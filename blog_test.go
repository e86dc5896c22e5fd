package blog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/seo"
)

func post(title, date, body string, extra ...string) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: " + title + "\n")
	b.WriteString("description: About " + title + ".\n")
	b.WriteString("date: " + date + "\n")
	for _, line := range extra {
		b.WriteString(line + "\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	return []byte(b.String())
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	contentFS := fstest.MapFS{
		"alpha.md": {Data: post("Alpha", "2024-03-01", "## Setup\n\nAlpha body.\n\n## Setup\n\nMore.\n",
			"tags: [go]", "authorSlugs: [jane-doe]")},
		"beta.md": {Data: post("Beta", "2024-02-01", "Beta body.\n",
			"tags: [testing]", "authorSlugs: [jane-doe]")},
		"gamma.md": {Data: post("Gamma", "2024-01-01", "Gamma body.\n")},
	}
	authorsFS := fstest.MapFS{
		"authors.json": {Data: []byte(`[
			{"slug": "jane-doe", "name": "Jane Doe", "bio": "Writes Go.", "description": "Engineer."}
		]`)},
	}

	cfg := DefaultConfig()
	cfg.Site = seo.Site{BaseURL: "https://example.com", Name: "Example", Owner: "Jane Doe"}
	cfg.Authors.Path = "authors.json"

	engine, err := New(cfg,
		WithStore(content.NewFSStore(contentFS, content.StoreConfig{})),
		WithAuthorsFS(authorsFS),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return engine
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""

	if _, err := New(cfg); err == nil {
		t.Fatalf("expected config validation error")
	}
}

func TestEngine_Posts(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	page, err := engine.Posts(ctx, Criteria{}, 1, 2)
	if err != nil {
		t.Fatalf("Posts: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 || len(page.Data) != 2 {
		t.Fatalf("pagination mismatch: %+v", page)
	}
	if page.Data[0].Slug != "alpha" || page.Data[1].Slug != "beta" {
		t.Fatalf("expected date-descending order, got %q %q", page.Data[0].Slug, page.Data[1].Slug)
	}

	filtered, err := engine.Posts(ctx, Criteria{Tag: "GO"}, 1, 10)
	if err != nil {
		t.Fatalf("Posts filtered: %v", err)
	}
	if filtered.Total != 1 || filtered.Data[0].Slug != "alpha" {
		t.Fatalf("tag filter mismatch: %+v", filtered)
	}
}

func TestEngine_Post(t *testing.T) {
	engine := testEngine(t)

	rec, err := engine.Post(context.Background(), "beta")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if rec.Title != "Beta" || rec.ReadingTime < 1 {
		t.Fatalf("record mismatch: %+v", rec)
	}

	if _, err := engine.Post(context.Background(), "missing"); !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEngine_AuthorPage(t *testing.T) {
	engine := testEngine(t)

	author, page, err := engine.AuthorPage(context.Background(), "jane-doe", 1, 10)
	if err != nil {
		t.Fatalf("AuthorPage: %v", err)
	}
	if author.Name != "Jane Doe" {
		t.Fatalf("author mismatch: %+v", author)
	}
	if page.Total != 2 || page.Data[0].Slug != "alpha" {
		t.Fatalf("author posts mismatch: %+v", page)
	}
}

func TestEngine_RenderPost(t *testing.T) {
	engine := testEngine(t)

	rendered, err := engine.RenderPost(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("RenderPost: %v", err)
	}
	if rendered.Record.Slug != "alpha" {
		t.Fatalf("record mismatch: %+v", rendered.Record)
	}
	if len(rendered.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %+v", rendered.Headings)
	}
	if rendered.Headings[0].ID == rendered.Headings[1].ID {
		t.Fatalf("duplicate heading text must yield distinct ids: %+v", rendered.Headings)
	}
	if !strings.Contains(rendered.HTML, `id="`+rendered.Headings[1].ID+`"`) {
		t.Fatalf("HTML must carry the assigned ids: %s", rendered.HTML)
	}
}

func TestEngine_SearchIndex(t *testing.T) {
	engine := testEngine(t)
	ctx := context.Background()

	idx, err := engine.SearchIndex(ctx)
	if err != nil {
		t.Fatalf("SearchIndex: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(ctx, "Beta", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 || hits[0].Slug != "beta" {
		t.Fatalf("search mismatch: %+v", hits)
	}
}

func TestEngine_SEO(t *testing.T) {
	engine := testEngine(t)

	rec, err := engine.Post(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("Post: %v", err)
	}

	obj, err := engine.SEO().ArticleSchema(rec, nil)
	if err != nil {
		t.Fatalf("ArticleSchema: %v", err)
	}
	if obj.ID != "https://example.com/blog/alpha#article" {
		t.Fatalf("schema id mismatch: %q", obj.ID)
	}
}
