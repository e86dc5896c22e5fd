package authors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("authors: author not found")
	ErrRegistryUnavailable = errors.New("authors: registry unavailable")
	ErrRegistryInvalid     = errors.New("authors: registry invalid")
	ErrDuplicateSlug       = errors.New("authors: duplicate author slug")
)

// NotFoundError captures lookups for slugs absent from the registry.
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
