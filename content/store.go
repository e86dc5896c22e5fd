package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// StoreConfig configures how content files are discovered within a base
// directory.
type StoreConfig struct {
	// BasePath is the root directory where content files live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// FSStore enumerates content files from an fs.FS. It satisfies
// interfaces.ContentStore.
type FSStore struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

var _ interfaces.ContentStore = (*FSStore)(nil)

// NewFSStore constructs a store over the provided filesystem.
func NewFSStore(filesystem fs.FS, cfg StoreConfig) *FSStore {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &FSStore{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// OpenDirStore constructs a store rooted at cfg.BasePath on the host
// filesystem.
func OpenDirStore(cfg StoreConfig) (*FSStore, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, &StoreUnavailableError{Op: "open", Path: basePath, Err: err}
	}
	return NewFSStore(os.DirFS(basePath), cfg), nil
}

// List enumerates every content file matching the store pattern.
func (s *FSStore) List(ctx context.Context) ([]interfaces.ContentFile, error) {
	paths, _, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]interfaces.ContentFile, 0, len(paths))
	for _, p := range paths {
		file, err := s.readFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, nil
}

// Read returns the single content file addressed by slug. The slug is
// resolved against the same walked tree List enumerates, so every listed
// unit is addressable regardless of nesting.
func (s *FSStore) Read(ctx context.Context, slug string) (*interfaces.ContentFile, error) {
	_, bySlug, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	p, ok := bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Slug: slug}
	}

	file, err := s.readFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Slug: slug}
		}
		return nil, err
	}
	return file, nil
}

// scan walks the store once, returning matched paths in walk order plus the
// slug-to-path index lookups resolve against. Two files deriving the same
// slug abort the scan so a unit is never shadowed silently.
func (s *FSStore) scan(ctx context.Context) ([]string, map[string]string, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	var paths []string
	bySlug := map[string]string{}

	walkErr := fs.WalkDir(s.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return &StoreUnavailableError{Op: "list", Path: p, Err: err}
		}
		if d.IsDir() {
			if !s.recursive && p != "." {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		match, err := path.Match(s.pattern, path.Base(p))
		if err != nil || !match {
			return nil
		}

		slug := slugFromPath(p)
		if prev, ok := bySlug[slug]; ok {
			return &DuplicateSlugError{Slug: slug, Paths: []string{prev, p}}
		}
		bySlug[slug] = p
		paths = append(paths, p)
		return nil
	})

	if walkErr != nil {
		return nil, nil, walkErr
	}
	return paths, bySlug, nil
}

func (s *FSStore) readFile(p string) (*interfaces.ContentFile, error) {
	data, err := fs.ReadFile(s.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &StoreUnavailableError{Op: "read", Path: p, Err: err}
	}

	file := interfaces.ContentFile{
		Slug: slugFromPath(p),
		Path: p,
		Data: data,
	}
	if info, err := fs.Stat(s.fs, p); err == nil {
		file.Modified = info.ModTime()
	}
	return &file, nil
}

// slugFromPath derives the unit slug from its filename: the base name minus
// extension, normalized to slug form so unconventional filenames still yield
// addressable slugs. One file per slug keeps slugs unique across the store.
func slugFromPath(p string) string {
	base := path.Base(p)
	base = strings.TrimSuffix(base, path.Ext(base))
	if normalized, err := NormalizeSlug(base); err == nil && normalized != "" {
		return normalized
	}
	return base
}
