// Package pagination slices ordered result sets into fixed-size pages.
package pagination

import (
	"strconv"
)

// Page is one window of an ordered result set.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"number"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// HasPrevious reports whether a page exists before this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page exists after this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

// Paginate returns the requested page of items. rawPage is the raw query
// parameter: anything that is not a positive integer falls back to page 1,
// and a page past the end is clamped to the last page. The input ordering is
// preserved; Paginate never fails. An empty input yields an empty page 1.
func Paginate[T any](items []T, pageSize int, rawPage string) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil || number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
