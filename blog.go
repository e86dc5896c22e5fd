// Package blog wires the content pipeline into one engine: file-backed
// content loading, author resolution, filtering, pagination, rendering with
// stable heading ids, structured-data assembly, and full-text search.
package blog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-blog/authors"
	"github.com/goliatone/go-blog/content"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/pagination"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/query"
	"github.com/goliatone/go-blog/search"
	"github.com/goliatone/go-blog/seo"
	"github.com/goliatone/go-blog/toc"
)

// Criteria re-exports the query contract so hosts only import this package.
type Criteria = query.Criteria

// Engine is the top-level runtime facade.
type Engine struct {
	config   Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	store    interfaces.ContentStore
	renderer interfaces.MarkdownParser
	repo     *content.Repository
	registry *authors.Registry
	builder  *seo.Builder
}

// Option overrides one engine dependency.
type Option func(*options)

type options struct {
	provider  interfaces.LoggerProvider
	store     interfaces.ContentStore
	renderer  interfaces.MarkdownParser
	authorsFS fs.FS
}

// WithLoggerProvider supplies module loggers; absent this, the engine builds
// a go-logger provider from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) { o.provider = provider }
}

// WithStore replaces the default directory-backed content store.
func WithStore(store interfaces.ContentStore) Option {
	return func(o *options) { o.store = store }
}

// WithMarkdownParser replaces the default goldmark renderer.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) { o.renderer = parser }
}

// WithAuthorsFS reads the author registry from fsys instead of the host
// filesystem. Config.Authors.Path is then resolved within fsys.
func WithAuthorsFS(fsys fs.FS) Option {
	return func(o *options) { o.authorsFS = fsys }
}

// New validates the configuration and assembles the engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("blog: invalid config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		built, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		provider = built
	}
	logger := logging.ModuleLogger(provider, "engine")

	store := o.store
	if store == nil {
		opened, err := content.OpenDirStore(content.StoreConfig{
			BasePath:  cfg.Content.Dir,
			Pattern:   cfg.Content.Pattern,
			Recursive: cfg.Content.Recursive,
		})
		if err != nil {
			return nil, err
		}
		store = opened
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = markdown.NewRenderer(cfg.Markdown.parseOptions())
	}

	authorsFS := o.authorsFS
	authorsPath := cfg.Authors.Path
	if authorsFS == nil {
		authorsFS = os.DirFS(filepath.Dir(authorsPath))
		authorsPath = filepath.Base(authorsPath)
	}

	parser := content.NewParser(renderer)
	repo := content.NewRepository(store, parser, logging.ModuleLogger(provider, "content"))
	registry := authors.NewRegistry(authors.RegistryConfig{
		FS:   authorsFS,
		Path: authorsPath,
	}, logging.ModuleLogger(provider, "authors"))
	builder := seo.NewBuilder(cfg.Site, logging.ModuleLogger(provider, "seo"))

	return &Engine{
		config:   cfg,
		provider: provider,
		logger:   logger,
		store:    store,
		renderer: renderer,
		repo:     repo,
		registry: registry,
		builder:  builder,
	}, nil
}

// Repository exposes the content repository for advanced integrations.
func (e *Engine) Repository() *content.Repository {
	return e.repo
}

// Authors exposes the author registry.
func (e *Engine) Authors() *authors.Registry {
	return e.registry
}

// SEO exposes the structured-data builder and its route table.
func (e *Engine) SEO() *seo.Builder {
	return e.builder
}

// Posts loads the collection, applies the criteria, and returns the
// requested page in date-descending order.
func (e *Engine) Posts(ctx context.Context, criteria Criteria, page, pageSize int) (pagination.Result[*content.Record], error) {
	records, err := e.repo.LoadAll(ctx)
	if err != nil {
		return pagination.Result[*content.Record]{}, err
	}
	return pagination.Paginate(query.Filter(records, criteria), page, pageSize), nil
}

// Post loads a single content unit by slug.
func (e *Engine) Post(ctx context.Context, slug string) (*content.Record, error) {
	return e.repo.LoadOne(ctx, slug)
}

// AuthorPage resolves an author and the requested page of their posts.
func (e *Engine) AuthorPage(ctx context.Context, slug string, page, pageSize int) (*authors.Author, pagination.Result[*content.Record], error) {
	author, err := e.registry.Get(ctx, slug)
	if err != nil {
		return nil, pagination.Result[*content.Record]{}, err
	}

	posts, err := e.registry.PostsByAuthor(ctx, e.repo, slug)
	if err != nil {
		return nil, pagination.Result[*content.Record]{}, err
	}
	return author, pagination.Paginate(posts, page, pageSize), nil
}

// RenderedPost is a fully rendered content unit: HTML with stable unique
// heading ids plus the table of contents derived from them.
type RenderedPost struct {
	Record   *content.Record
	HTML     string
	Headings []toc.Heading
}

// RenderPost loads, renders, and indexes a content unit.
func (e *Engine) RenderPost(ctx context.Context, slug string) (*RenderedPost, error) {
	rec, body, err := e.repo.LoadSource(ctx, slug)
	if err != nil {
		return nil, err
	}

	html, err := e.renderer.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("blog: render %s: %w", slug, err)
	}

	region, err := toc.NewFragmentRegion(string(html))
	if err != nil {
		return nil, err
	}

	indexer := toc.NewIndexer(nil, logging.ModuleLogger(e.provider, "toc"))
	indexer.Attach(region, nil)
	defer indexer.Detach()

	annotated, err := region.HTML()
	if err != nil {
		return nil, err
	}

	return &RenderedPost{
		Record:   rec,
		HTML:     annotated,
		Headings: indexer.Headings(),
	}, nil
}

// SearchIndex builds a fresh full-text index over the current collection.
// The caller owns the returned index and should Close it when done.
func (e *Engine) SearchIndex(ctx context.Context) (*search.Index, error) {
	records, err := e.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.BuildIndex(records)
}
