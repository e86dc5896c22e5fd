// Package seo assembles the machine-readable descriptions embedded per page:
// schema.org documents and page metadata. Builders are pure assembly over
// already-loaded records; nothing here performs I/O.
package seo

import (
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Site carries the site-wide identity every schema document references.
type Site struct {
	// BaseURL is the canonical site root, no trailing slash.
	BaseURL string
	// Name is the site name used for publisher and website entities.
	Name string
	// Owner is the person the blog belongs to.
	Owner string
	// OwnerJobTitle feeds the Person schema.
	OwnerJobTitle string
	// OwnerSameAs lists the owner's public profile URLs.
	OwnerSameAs []string
	// Organization, when set, is recorded as who the owner works for.
	Organization string
	// LogoPath is the publisher logo, absolute or site-relative.
	LogoPath string
	// DefaultOGImage is used when a page declares no image of its own.
	DefaultOGImage string
}

const (
	routeGroup  = "site"
	routeBlog   = "blog"
	routePost   = "post"
	routeAuthor = "author"
)

// Routes builds canonical page URLs through a go-urlkit route manager so URL
// shapes live in one place.
type Routes struct {
	base  string
	group *urlkit.Group
}

// NewRoutes constructs the route table for a site.
func NewRoutes(site Site) *Routes {
	base := strings.TrimRight(strings.TrimSpace(site.BaseURL), "/")

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: base,
				Paths: map[string]string{
					routeBlog:   "/blog",
					routePost:   "/blog/:slug",
					routeAuthor: "/blog/author/:slug",
				},
			},
		},
	})

	return &Routes{
		base:  base,
		group: manager.Group(routeGroup),
	}
}

// Home returns the site root.
func (r *Routes) Home() string {
	return r.base
}

// Blog returns the listing page URL.
func (r *Routes) Blog() (string, error) {
	return r.group.Builder(routeBlog).Build()
}

// Post returns the canonical URL for a content unit.
func (r *Routes) Post(slug string) (string, error) {
	return r.group.Builder(routePost).WithParam("slug", slug).Build()
}

// Author returns the canonical URL for an author page.
func (r *Routes) Author(slug string) (string, error) {
	return r.group.Builder(routeAuthor).WithParam("slug", slug).Build()
}
