// Package query filters a content collection by tag and free text. Filters
// are pure predicates over immutable records: they commute, they are
// idempotent, and they never re-sort the input.
package query

import (
	"strings"

	"github.com/goliatone/go-blog/content"
)

// Criteria describes an optional tag filter and an optional free-text
// filter. Empty fields pass all records through.
type Criteria struct {
	// Tag matches case-insensitively against any tag in the record's tag set.
	Tag string
	// Query matches case-insensitively as a substring of the record's title,
	// description, or excerpt.
	Query string
}

// IsZero reports whether the criteria filter nothing.
func (c Criteria) IsZero() bool {
	return c.Tag == "" && c.Query == ""
}

// Filter applies the criteria conjunctively and returns a new slice with the
// surviving records in their original order.
func Filter(records []*content.Record, c Criteria) []*content.Record {
	out := make([]*content.Record, 0, len(records))
	for _, rec := range records {
		if !matchesTag(rec, c.Tag) {
			continue
		}
		if !matchesQuery(rec, c.Query) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesTag(rec *content.Record, tag string) bool {
	if tag == "" {
		return true
	}
	for _, t := range rec.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func matchesQuery(rec *content.Record, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(rec.Title), q) ||
		strings.Contains(strings.ToLower(rec.Description), q) ||
		strings.Contains(strings.ToLower(rec.Excerpt), q)
}
