package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingMetadata  = errors.New("content: required metadata missing")
	ErrNotFound         = errors.New("content: record not found")
	ErrStoreUnavailable = errors.New("content: store unavailable")
	ErrDuplicateSlug    = errors.New("content: duplicate slug")
)

// MissingMetadataError captures required frontmatter fields absent from a
// content unit. A single missing field fails the whole load.
type MissingMetadataError struct {
	Slug   string
	Fields []string
}

func (e *MissingMetadataError) Error() string {
	if e == nil {
		return ErrMissingMetadata.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: slug=%s", ErrMissingMetadata.Error(), slug)
	}
	return fmt.Sprintf("%s: slug=%s fields=%s", ErrMissingMetadata.Error(), slug, strings.Join(e.Fields, ","))
}

func (e *MissingMetadataError) Unwrap() error {
	return ErrMissingMetadata
}

// NotFoundError captures lookups for slugs with no corresponding content file.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrNotFound.Error(), slug)
	}
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateSlugError captures two content files deriving the same slug.
// Slugs address units, so a collision aborts the whole operation.
type DuplicateSlugError struct {
	Slug  string
	Paths []string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	msg := fmt.Sprintf("%s: slug=%s", ErrDuplicateSlug.Error(), strings.TrimSpace(e.Slug))
	if len(e.Paths) > 0 {
		msg = fmt.Sprintf("%s paths=%s", msg, strings.Join(e.Paths, ","))
	}
	return msg
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// StoreUnavailableError captures content store read failures. These abort the
// whole operation so callers never observe a partial collection.
type StoreUnavailableError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreUnavailableError) Error() string {
	if e == nil {
		return ErrStoreUnavailable.Error()
	}
	msg := ErrStoreUnavailable.Error()
	if op := strings.TrimSpace(e.Op); op != "" {
		msg = fmt.Sprintf("%s: op=%s", msg, op)
	}
	if path := strings.TrimSpace(e.Path); path != "" {
		msg = fmt.Sprintf("%s path=%s", msg, path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}
