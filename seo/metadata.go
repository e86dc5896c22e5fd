package seo

import (
	"strings"

	"github.com/goliatone/go-blog/internal/util"
)

// PageMetadata is the per-page head metadata the presentation layer renders:
// title, description, canonical URL, and social card images.
type PageMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"`
	Keywords    []string `json:"keywords,omitempty"`
	OGImage     string   `json:"ogImage"`
	OGType      string   `json:"ogType"`
	SiteName    string   `json:"siteName"`
	TwitterCard string   `json:"twitterCard"`
}

// PageParams describe one page for metadata assembly. Slug is the page path
// relative to the site root; empty means the site root itself.
type PageParams struct {
	Title       string
	Description string
	Slug        string
	Tags        []string
	OGImage     string
}

// PageMetadata assembles head metadata for a page, absolutizing the OG image
// against the site root and falling back to the site default.
func (b *Builder) PageMetadata(p PageParams) PageMetadata {
	canonical := b.routes.Home()
	if slug := strings.Trim(p.Slug, "/"); slug != "" {
		canonical += "/" + slug
	}

	return PageMetadata{
		Title:       p.Title,
		Description: p.Description,
		Canonical:   canonical,
		Keywords:    append([]string(nil), p.Tags...),
		OGImage:     b.absolutize(util.FirstNonEmpty(p.OGImage, b.site.DefaultOGImage)),
		OGType:      "website",
		SiteName:    util.FirstNonEmpty(b.site.Name, b.site.Owner),
		TwitterCard: "summary_large_image",
	}
}
