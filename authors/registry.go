// Package authors loads the static author registry and resolves
// author/content associations. The registry file is read-only for the
// lifetime of a load cycle.
package authors

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/util"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const registryInvalidCode = "BLOG_AUTHOR_REGISTRY_INVALID"

// Author is one author record as declared in the registry file.
type Author struct {
	Slug        string            `json:"slug"`
	Name        string            `json:"name"`
	Bio         string            `json:"bio"`
	Description string            `json:"description"`
	Avatar      string            `json:"avatar,omitempty"`
	Social      map[string]string `json:"social,omitempty"`
}

// SocialURL returns the author's URL for a platform, empty when undeclared.
func (a Author) SocialURL(platform string) string {
	if a.Social == nil {
		return ""
	}
	return a.Social[platform]
}

// RegistryConfig locates the static registry file.
type RegistryConfig struct {
	// FS is the filesystem the registry file is read from.
	FS fs.FS
	// Path is the registry file path within FS.
	Path string
}

// Registry reads the author file and answers author lookups. Each load
// re-reads and re-validates the file; no state is carried between calls.
type Registry struct {
	fs     fs.FS
	path   string
	logger interfaces.Logger
}

// NewRegistry constructs a registry. A nil logger is replaced with a no-op
// implementation.
func NewRegistry(cfg RegistryConfig, logger interfaces.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Registry{
		fs:     cfg.FS,
		path:   cfg.Path,
		logger: logger,
	}
}

// LoadAuthors returns the full author collection, order as declared in the
// registry file.
func (r *Registry) LoadAuthors(ctx context.Context) ([]*Author, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrRegistryUnavailable, r.path, err)
	}

	if err := validateRegistry(data); err != nil {
		return nil, err
	}

	var authors []*Author
	if err := json.Unmarshal(data, &authors); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrRegistryInvalid, r.path, err)
	}

	seen := make(map[string]struct{}, len(authors))
	for _, author := range authors {
		if _, ok := seen[author.Slug]; ok {
			return nil, fmt.Errorf("%w: slug=%s", ErrDuplicateSlug, author.Slug)
		}
		seen[author.Slug] = struct{}{}
		author.Social = util.CloneStringMap(author.Social)
	}

	r.logger.Debug("authors: registry loaded", "authors", len(authors))
	return authors, nil
}

// Get resolves a single author by slug. Returns an error wrapping
// ErrNotFound for slugs absent from the registry.
func (r *Registry) Get(ctx context.Context, slug string) (*Author, error) {
	authors, err := r.LoadAuthors(ctx)
	if err != nil {
		return nil, err
	}
	for _, author := range authors {
		if author.Slug == slug {
			return author, nil
		}
	}
	return nil, &NotFoundError{Slug: slug}
}

// PostsByAuthor returns every content record whose author set contains slug,
// preserving the repository's date-descending order. The author must exist
// in the registry; resolving an unknown slug is a not-found condition.
func (r *Registry) PostsByAuthor(ctx context.Context, repo *content.Repository, slug string) ([]*content.Record, error) {
	if _, err := r.Get(ctx, slug); err != nil {
		return nil, err
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*content.Record, 0)
	for _, rec := range records {
		if rec.HasAuthor(slug) {
			posts = append(posts, rec)
		}
	}
	return posts, nil
}

func validateRegistry(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("%w: compile schema: %v", ErrRegistryInvalid, err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrRegistryInvalid, err)
	}

	if err := sch.Validate(decoded); err != nil {
		return goerrors.Wrap(ErrRegistryInvalid, goerrors.CategoryValidation, err.Error()).
			WithTextCode(registryInvalidCode)
	}
	return nil
}
