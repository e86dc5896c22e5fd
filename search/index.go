// Package search provides a ranked full-text index over a loaded content
// collection. It complements the exact tag/substring filters in package
// query with relevance-scored lookups.
package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/goliatone/go-blog/content"
)

// indexedRecord is the shape of one content unit inside the index.
type indexedRecord struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
}

// Result is one ranked hit.
type Result struct {
	Slug  string  `json:"slug"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Index wraps an in-memory bleve index over a content collection.
type Index struct {
	index bleve.Index
}

// BuildIndex indexes a loaded collection in memory. Records are indexed by
// slug; rebuilding after a reload means calling BuildIndex again with the
// fresh collection.
func BuildIndex(records []*content.Record) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("search: create index: %w", err)
	}

	batch := idx.NewBatch()
	for _, rec := range records {
		doc := indexedRecord{
			Slug:        rec.Slug,
			Title:       rec.Title,
			Description: rec.Description,
			Excerpt:     rec.Excerpt,
			Tags:        rec.Tags,
		}
		if err := batch.Index(rec.Slug, doc); err != nil {
			return nil, fmt.Errorf("search: index %s: %w", rec.Slug, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("search: apply batch: %w", err)
	}

	return &Index{index: idx}, nil
}

// buildIndexMapping boosts titles with the English analyzer for stemming;
// the remaining text fields use the standard analyzer.
func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()

	titleFieldMapping := bleve.NewTextFieldMapping()
	titleFieldMapping.Analyzer = "en"

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("slug", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("title", titleFieldMapping)
	docMapping.AddFieldMappingsAt("description", textFieldMapping)
	docMapping.AddFieldMappingsAt("excerpt", textFieldMapping)
	docMapping.AddFieldMappingsAt("tags", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

// Search runs a query string (quotes, boolean operators, and fuzzy ~ are
// supported) and returns up to limit hits ranked by score.
func (i *Index) Search(ctx context.Context, queryStr string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	query := bleve.NewQueryStringQuery(queryStr)
	request := bleve.NewSearchRequestOptions(query, limit, 0, false)
	request.Fields = []string{"title"}

	results, err := i.index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits := make([]Result, 0, len(results.Hits))
	for _, hit := range results.Hits {
		result := Result{Slug: hit.ID, Score: hit.Score}
		if title, ok := hit.Fields["title"].(string); ok {
			result.Title = title
		}
		hits = append(hits, result)
	}

	return hits, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.index.Close()
}
