package entity

import "strings"

// Paging defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "id"
)

// SortDirection orders a listing
type SortDirection string

// SortDirection constants
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PageRequest describes which slice of a listing to return
type PageRequest struct {
	Page      int // 1-based
	Size      int
	SortBy    string
	Direction SortDirection
	Search    string
}

// Normalize fills defaults and drops sort fields outside allowed
func (p PageRequest) Normalize(allowed ...string) PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	p.SortBy = strings.TrimSpace(p.SortBy)
	if !containsField(allowed, p.SortBy) {
		p.SortBy = DefaultSortBy
	}

	if SortDirection(strings.ToLower(string(p.Direction))) == SortDesc {
		p.Direction = SortDesc
	} else {
		p.Direction = SortAsc
	}

	p.Search = strings.TrimSpace(p.Search)
	return p
}

// Offset is the number of rows to skip
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

func containsField(allowed []string, field string) bool {
	for _, a := range allowed {
		if a == field {
			return true
		}
	}
	return false
}

// Page is one slice of a listing
type Page[T any] struct {
	Content    []T
	Page       int
	Size       int
	TotalItems int64
}

// NewPage builds a page from its content and the request that produced it
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{
		Content:    content,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
	}
}

// TotalPages returns the number of pages at the current size
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalItems + int64(p.Size) - 1) / int64(p.Size))
}

// IsFirst reports whether this is the first page
func (p Page[T]) IsFirst() bool {
	return p.Page <= 1
}

// IsLast reports whether no page follows this one
func (p Page[T]) IsLast() bool {
	return p.Page >= p.TotalPages()
}

// MapPage converts the content of a page, keeping its paging data
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[R]{Content: out, Page: p.Page, Size: p.Size, TotalItems: p.TotalItems}
}
