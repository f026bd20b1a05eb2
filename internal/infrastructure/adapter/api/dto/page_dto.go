package dto

import "github.com/amirhossein-jamali/bankcards/internal/domain/entity"

// PageResponse is the paginated listing envelope
type PageResponse[T any] struct {
	Content     []T   `json:"content"`
	CurrentPage int   `json:"currentPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	Size        int   `json:"size"`
	First       bool  `json:"first"`
	Last        bool  `json:"last"`
}

// NewPageResponse converts a domain page, mapping each item with fn
func NewPageResponse[T, R any](page entity.Page[T], fn func(T) R) PageResponse[R] {
	mapped := entity.MapPage(page, fn)
	return PageResponse[R]{
		Content:     mapped.Content,
		CurrentPage: mapped.Page,
		TotalItems:  mapped.TotalItems,
		TotalPages:  mapped.TotalPages(),
		Size:        mapped.Size,
		First:       mapped.IsFirst(),
		Last:        mapped.IsLast(),
	}
}
