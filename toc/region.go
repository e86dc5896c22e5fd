// Package toc maintains a table of contents over a rendered markup region:
// it walks section headings in document order, assigns stable unique ids,
// and publishes the heading list to a subscriber whenever the region changes.
package toc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one table-of-contents entry, in document order.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// DocumentRegion is the markup region an indexer observes. It owns the
// parsed document, so id writes are visible to later passes and to HTML().
type DocumentRegion struct {
	doc  *goquery.Document
	root *goquery.Selection
}

// NewDocumentRegion parses markup and locates the article region: the first
// <article> element, else the element with id "article-body". Returns nil
// when the markup carries no such region.
func NewDocumentRegion(markup string) (*DocumentRegion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("toc: parse markup: %w", err)
	}

	root := doc.Find("article").First()
	if root.Length() == 0 {
		root = doc.Find("#article-body").First()
	}
	if root.Length() == 0 {
		return nil, nil
	}

	return &DocumentRegion{doc: doc, root: root}, nil
}

// NewFragmentRegion parses a markup fragment and treats the whole fragment
// as the region. Rendered article bodies arrive without a wrapping element,
// so this is the region constructor the engine uses.
func NewFragmentRegion(markup string) (*DocumentRegion, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("toc: parse fragment: %w", err)
	}
	return &DocumentRegion{doc: doc, root: doc.Find("body").First()}, nil
}

// HTML returns the region's current markup, including any ids written by an
// indexing pass.
func (r *DocumentRegion) HTML() (string, error) {
	html, err := r.root.Html()
	if err != nil {
		return "", fmt.Errorf("toc: serialize region: %w", err)
	}
	return html, nil
}

// headings returns the region's h2/h3 elements in document order.
func (r *DocumentRegion) headings() *goquery.Selection {
	return r.root.Find("h2, h3")
}

// usedIDs collects every non-empty id in the whole document, not just the
// region, so assigned ids never collide with ids outside the region.
func (r *DocumentRegion) usedIDs() map[string]struct{} {
	used := map[string]struct{}{}
	r.doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			used[id] = struct{}{}
		}
	})
	return used
}
