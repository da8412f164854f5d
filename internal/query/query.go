// Package query holds the list parameters and paged result shared by
// collection and link listings.
package query

import "strings"

// Sort is a fixed list ordering.
type Sort string

const (
	SortNewest Sort = "newest" // created_at descending
	SortOldest Sort = "oldest" // created_at ascending
	SortName   Sort = "name"   // name ascending
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParseSort lowercases raw and returns it when it is one of allowed.
// Anything else falls back to SortNewest.
func ParseSort(raw string, allowed ...Sort) Sort {
	s := Sort(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return SortNewest
}

// Params describes a filtered, sorted page request.
type Params struct {
	Q        string
	Sort     Sort
	Page     int
	PageSize int
}

// Normalize trims the search term and clamps paging:
// page < 1 becomes 1, pageSize < 1 becomes 20, pageSize > 100 becomes 100.
func (p Params) Normalize() Params {
	p.Q = strings.TrimSpace(p.Q)
	if p.Sort == "" {
		p.Sort = SortNewest
	}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Limit is the number of rows to fetch.
func (p Params) Limit() uint64 {
	return uint64(p.PageSize)
}

// Offset is the number of rows to skip.
func (p Params) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.PageSize)
}

// Page is a single page of a listing.
type Page[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

// NewPage wraps items fetched with p into a Page.
func NewPage[T any](items []T, p Params, totalCount int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, p.PageSize),
		Items:      items,
	}
}

// TotalPages returns ceil(totalCount / pageSize).
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Map converts the items of a page, keeping its paging fields.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		Items:      items,
	}
}
