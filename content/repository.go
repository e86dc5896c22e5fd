package content

import (
	"context"
	"sort"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Repository produces the canonical content collection from a store. Every
// call re-reads the store and rebuilds the collection atomically: a parse
// failure for one unit aborts the whole load so callers never observe a
// partial index.
type Repository struct {
	store  interfaces.ContentStore
	parser *Parser
	logger interfaces.Logger
}

// NewRepository constructs a repository over the supplied store. A nil
// parser gets default goldmark rendering; a nil logger is replaced with a
// no-op implementation.
func NewRepository(store interfaces.ContentStore, parser *Parser, logger interfaces.Logger) *Repository {
	if parser == nil {
		parser = NewParser(nil)
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Repository{
		store:  store,
		parser: parser,
		logger: logger,
	}
}

// LoadAll enumerates every content file, parses each, and returns the
// collection sorted by publish date descending. Equal dates preserve
// filename-ascending order for determinism.
func (r *Repository) LoadAll(ctx context.Context) ([]*Record, error) {
	files, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	type entry struct {
		record *Record
		path   string
	}

	entries := make([]entry, 0, len(files))
	for _, file := range files {
		rec, err := r.parser.Parse(file.Slug, file.Data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{record: rec, path: file.Path})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].record.PublishDate, entries[j].record.PublishDate
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return entries[i].path < entries[j].path
	})

	records := make([]*Record, len(entries))
	for i, e := range entries {
		records[i] = e.record
	}

	r.logger.Debug("content: collection loaded", "records", len(records))
	return records, nil
}

// LoadOne parses the single unit addressed by slug. Returns an error
// wrapping ErrNotFound when the slug has no corresponding file.
func (r *Repository) LoadOne(ctx context.Context, slug string) (*Record, error) {
	file, err := r.store.Read(ctx, slug)
	if err != nil {
		return nil, err
	}
	return r.parser.Parse(file.Slug, file.Data)
}

// LoadSource behaves like LoadOne but additionally returns the Markdown body
// so callers can render the unit.
func (r *Repository) LoadSource(ctx context.Context, slug string) (*Record, []byte, error) {
	file, err := r.store.Read(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	return r.parser.ParseSource(file.Slug, file.Data)
}
