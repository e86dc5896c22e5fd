// Package pagination slices an ordered collection into fixed-size pages.
package pagination

// Result is one page of a collection plus the page metadata needed to render
// pagination controls.
type Result[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
}

// Paginate returns the requested page of items. page and pageSize are
// clamped to a minimum of 1; requesting a page beyond the last yields an
// empty Data slice, not an error.
func Paginate[T any](items []T, page, pageSize int) Result[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Data:        append([]T(nil), items[start:end]...),
		CurrentPage: page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
	}
}
