// Package content loads the directory of published units (articles) and
// produces the canonical, immutable collection every other component reads.
// Records are rebuilt wholesale per load cycle; consumers receive copies and
// never mutate the master collection.
package content

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FAQ is one question/answer pair declared in a unit's metadata.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer"   json:"answer"`
}

// Record is one published content unit. Constructed once per load cycle from
// a content file and immutable afterward.
type Record struct {
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Excerpt      string     `json:"excerpt,omitempty"`
	PublishDate  time.Time  `json:"date"`
	UpdatedDate  *time.Time `json:"updatedDate,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	OGImage      string     `json:"ogImage,omitempty"`
	HeroImage    string     `json:"image,omitempty"`
	ReadingTime  int        `json:"readingTime"`
	WordCount    int        `json:"wordCount"`
	Featured     bool       `json:"featured,omitempty"`
	FAQs         []FAQ      `json:"faqs,omitempty"`
	AuthorSlugs  []string   `json:"authorSlugs,omitempty"`
	CanonicalURL string     `json:"canonicalUrl,omitempty"`
}

// Validate enforces the record invariants beyond required metadata: a
// well-formed slug and a reading time of at least one minute.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Slug, validation.Required, validation.By(func(value any) error {
			if !IsValidSlug(value.(string)) {
				return validation.NewError("blog.content.slug_invalid", "slug contains invalid characters")
			}
			return nil
		})),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.ReadingTime, validation.Required, validation.Min(1)),
		validation.Field(&r.WordCount, validation.Min(0)),
	)
}

// HasAuthor reports whether slug appears in the record's author set.
func (r Record) HasAuthor(slug string) bool {
	for _, s := range r.AuthorSlugs {
		if s == slug {
			return true
		}
	}
	return false
}

// Modified returns the update date when present, falling back to the publish
// date. Schema builders rely on this for dateModified.
func (r Record) Modified() time.Time {
	if r.UpdatedDate != nil {
		return *r.UpdatedDate
	}
	return r.PublishDate
}
