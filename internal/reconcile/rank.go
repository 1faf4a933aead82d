package reconcile

import (
	"fmt"
	"math"
	"slices"
)

// Rank orders entries by completion time, newest first, and keeps at most
// limit of them. Entries completed at the same time keep their input order.
// limit must be positive.
func Rank(entries []Download, limit int) []Download {
	if limit <= 0 {
		panic(fmt.Sprintf("reconcile: rank limit must be positive, got %d", limit))
	}
	out := append(make([]Download, 0, len(entries)), entries...)
	slices.SortStableFunc(out, func(a, b Download) int {
		return b.Slot.CompletedAt.Compare(a.Slot.CompletedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate returns page (1-based) of all. Pages below 1 are treated as 1.
// A page past the end has no items but correct totals. pageSize must be
// positive.
func Paginate[T any](all []T, page, pageSize int) Page[T] {
	p := NewPage[T](nil, page, pageSize, len(all))
	if len(all) > 0 && p.Page-1 <= (len(all)-1)/pageSize {
		start := (p.Page - 1) * pageSize
		end := min(start+pageSize, len(all))
		p.Items = append(p.Items, all[start:end]...)
	}
	return p
}

// NewPage wraps items already fetched for page out of total entries.
// Items beyond pageSize are dropped.
func NewPage[T any](items []T, page, pageSize, total int) Page[T] {
	if pageSize <= 0 {
		panic(fmt.Sprintf("reconcile: page size must be positive, got %d", pageSize))
	}
	page = max(page, 1)
	total = max(total, 0)
	if len(items) > pageSize {
		items = items[:pageSize]
	}
	pages := 0
	if total > 0 {
		pages = (total-1)/pageSize + 1
	}
	return Page[T]{
		Items:      append(make([]T, 0, len(items)), items...),
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Offset returns the zero-based index of the first entry on page. Offsets
// that do not fit in an int saturate at math.MaxInt.
func Offset(page, pageSize int) int {
	page = max(page, 1)
	if pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}
