package seo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-blog/authors"
	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/util"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const schemaContext = "https://schema.org"

// socialPriority fixes which platform supplies an author's primary URL.
var socialPriority = []string{"twitter", "github", "linkedin"}

// Object is one schema document: a canonical fragment identifier plus the
// JSON-LD payload. Objects are independently serializable; fields are
// omitted rather than nulled when data is absent.
type Object struct {
	ID      string         `json:"id"`
	Content map[string]any `json:"content"`
}

// InlineJSON renders the payload for embedding in a page.
func (o Object) InlineJSON() ([]byte, error) {
	return json.Marshal(o.Content)
}

// Breadcrumb is one entry of a breadcrumb trail, in display order.
type Breadcrumb struct {
	Name string
	URL  string
}

// Builder assembles schema documents for a configured site.
type Builder struct {
	site   Site
	routes *Routes
	logger interfaces.Logger
}

// NewBuilder constructs a builder. A nil logger is replaced with a no-op
// implementation.
func NewBuilder(site Site, logger interfaces.Logger) *Builder {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Builder{
		site:   site,
		routes: NewRoutes(site),
		logger: logger,
	}
}

// Routes exposes the builder's route table so hosts share one URL shape.
func (b *Builder) Routes() *Routes {
	return b.routes
}

// ArticleSchema describes one content unit. Each author's primary URL is the
// first non-empty social link in priority order, falling back to the site
// root; sameAs collects every non-empty social URL.
func (b *Builder) ArticleSchema(rec *content.Record, auths []*authors.Author) (Object, error) {
	shareURL, err := b.routes.Post(rec.Slug)
	if err != nil {
		return Object{}, fmt.Errorf("seo: article url for %s: %w", rec.Slug, err)
	}

	payload := map[string]any{
		"@context":    schemaContext,
		"@type":       "Article",
		"headline":    rec.Title,
		"description": rec.Description,
		"image":       b.absolutize(rec.OGImage),
		"author":      b.authorEntities(auths),
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  b.site.Name,
			"logo": map[string]any{
				"@type": "ImageObject",
				"url":   b.absolutize(util.FirstNonEmpty(b.site.LogoPath, "/logo.png")),
			},
		},
		"datePublished": rec.PublishDate.Format(time.RFC3339),
		"dateModified":  rec.Modified().Format(time.RFC3339),
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   util.FirstNonEmpty(rec.CanonicalURL, shareURL),
		},
	}

	if rec.WordCount > 0 {
		payload["wordCount"] = rec.WordCount
	}
	if len(rec.Tags) > 0 {
		payload["keywords"] = strings.Join(rec.Tags, ", ")
	}

	return Object{ID: shareURL + "#article", Content: payload}, nil
}

// BlogSchema describes the listing page.
func (b *Builder) BlogSchema() (Object, error) {
	blogURL, err := b.routes.Blog()
	if err != nil {
		return Object{}, fmt.Errorf("seo: blog url: %w", err)
	}

	return Object{
		ID: blogURL + "#blog",
		Content: map[string]any{
			"@context":    schemaContext,
			"@type":       "Blog",
			"headline":    fmt.Sprintf("%s Blog", b.site.Owner),
			"description": fmt.Sprintf("Articles, tutorials, and insights by %s.", b.site.Owner),
			"url":         blogURL,
			"publisher": map[string]any{
				"@type": "Person",
				"name":  b.site.Owner,
				"url":   b.routes.Home(),
			},
		},
	}, nil
}

// PersonSchema describes the site owner.
func (b *Builder) PersonSchema() Object {
	payload := map[string]any{
		"@context": schemaContext,
		"@type":    "Person",
		"name":     b.site.Owner,
		"url":      b.routes.Home(),
	}
	if b.site.OwnerJobTitle != "" {
		payload["jobTitle"] = b.site.OwnerJobTitle
	}
	if len(b.site.OwnerSameAs) > 0 {
		payload["sameAs"] = append([]string(nil), b.site.OwnerSameAs...)
	}
	if b.site.Organization != "" {
		payload["worksFor"] = map[string]any{
			"@type": "Organization",
			"name":  b.site.Organization,
		}
	}
	return Object{ID: b.routes.Home() + "#person", Content: payload}
}

// WebSiteSchema describes the site itself, including the search action.
func (b *Builder) WebSiteSchema() Object {
	return Object{
		ID: b.routes.Home() + "#website",
		Content: map[string]any{
			"@context": schemaContext,
			"@type":    "WebSite",
			"name":     util.FirstNonEmpty(b.site.Name, b.site.Owner),
			"url":      b.routes.Home(),
			"potentialAction": map[string]any{
				"@type":       "SearchAction",
				"target":      b.routes.Home() + "/search?q={search_term_string}",
				"query-input": "required name=search_term_string",
			},
		},
	}
}

// BreadcrumbSchema maps a breadcrumb trail to a 1-indexed position list,
// preserving input order exactly.
func (b *Builder) BreadcrumbSchema(items []Breadcrumb) Object {
	elements := make([]map[string]any, 0, len(items))
	for i, item := range items {
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}

	return Object{
		ID: b.routes.Home() + "#breadcrumb",
		Content: map[string]any{
			"@context":        schemaContext,
			"@type":           "BreadcrumbList",
			"itemListElement": elements,
		},
	}
}

// FAQSchema maps a unit's FAQ pairs to an FAQPage document. Empty input
// yields an empty entity list, not an error.
func (b *Builder) FAQSchema(faqs []content.FAQ, section, kind, slug string) Object {
	id := b.routes.Home() + "/" + strings.Trim(section, "/")
	if slug != "" {
		id += "/" + slug
	}
	id += "#" + kind + "-faq"

	entities := make([]map[string]any, 0, len(faqs))
	for _, faq := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}

	return Object{
		ID: id,
		Content: map[string]any{
			"@context":   schemaContext,
			"@type":      "FAQPage",
			"mainEntity": entities,
		},
	}
}

func (b *Builder) authorEntities(auths []*authors.Author) []map[string]any {
	entities := make([]map[string]any, 0, len(auths))
	for _, author := range auths {
		primary := util.FirstNonEmpty(
			author.SocialURL("twitter"),
			author.SocialURL("github"),
			author.SocialURL("linkedin"),
			b.routes.Home(),
		)

		sameAs := make([]string, 0, len(author.Social))
		for _, platform := range socialPriority {
			if u := author.SocialURL(platform); u != "" {
				sameAs = append(sameAs, u)
			}
		}
		for _, platform := range extraPlatforms(author.Social) {
			sameAs = append(sameAs, author.Social[platform])
		}

		entity := map[string]any{
			"@type": "Person",
			"name":  author.Name,
			"url":   primary,
		}
		if len(sameAs) > 0 {
			entity["sameAs"] = sameAs
		}
		entities = append(entities, entity)
	}
	return entities
}

// extraPlatforms returns declared platforms outside the priority list,
// sorted for deterministic output.
func extraPlatforms(social map[string]string) []string {
	known := map[string]struct{}{}
	for _, p := range socialPriority {
		known[p] = struct{}{}
	}

	var extras []string
	for platform, u := range social {
		if _, ok := known[platform]; ok || u == "" {
			continue
		}
		extras = append(extras, platform)
	}
	sort.Strings(extras)
	return extras
}

func (b *Builder) absolutize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = b.site.DefaultOGImage
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return b.routes.Home()
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.routes.Home() + path
}
