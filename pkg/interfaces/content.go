package interfaces

import (
	"context"
	"time"
)

// ContentFile is one raw unit handed out by a content store: the slug the
// unit is addressed by, the path it was discovered at, and the file bytes.
type ContentFile struct {
	Slug     string
	Path     string
	Data     []byte
	Modified time.Time
}

// ContentStore abstracts the directory of content units the repository reads
// from. The default implementation walks an fs.FS, but anything that can
// enumerate named files (embedded bundle, remote store) satisfies the
// contract. Read must return an error wrapping content.ErrNotFound when the
// slug has no corresponding file.
type ContentStore interface {
	// List enumerates every content file in the store. Order is not
	// significant; callers establish their own ordering.
	List(ctx context.Context) ([]ContentFile, error)
	// Read returns the single content file addressed by slug.
	Read(ctx context.Context, slug string) (*ContentFile, error)
}
