// Package pagekit provides page/pageSize pagination over in-memory slices
// and the page metadata block ranked endpoints return
package pagekit

import (
	perr "driftlog/internal/platform/errors"
)

// Info describes the position of a page within a full result set
type Info struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
}

// Window returns the half-open [start, end) slice bounds for a page over
// total items. Bounds are clamped so a page past the end yields start == end
func Window(total, page, pageSize int) (start, end int) {
	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// Pages returns the page count for total items, never less than 1
func Pages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	n := (total + pageSize - 1) / pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Paginate slices items down to the requested page and reports positioning.
// page must be >= 1 and pageSize must be > 0, anything else is an invalid
// argument. A page past the end returns an empty window with Info populated
func Paginate[T any](items []T, page, pageSize int) ([]T, Info, error) {
	if page < 1 {
		return nil, Info{}, perr.InvalidArgf("page must be >= 1, got %d", page)
	}
	if pageSize <= 0 {
		return nil, Info{}, perr.InvalidArgf("page_size must be > 0, got %d", pageSize)
	}

	total := len(items)
	start, end := Window(total, page, pageSize)

	info := Info{
		CurrentPage: page,
		TotalPages:  Pages(total, pageSize),
		TotalItems:  total,
	}
	return items[start:end], info, nil
}
