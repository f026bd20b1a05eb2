package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	t.Run("should fill defaults", func(t *testing.T) {
		req := PageRequest{}.Normalize("id", "status")

		assert.Equal(t, DefaultPage, req.Page)
		assert.Equal(t, DefaultPageSize, req.Size)
		assert.Equal(t, DefaultSortBy, req.SortBy)
		assert.Equal(t, SortAsc, req.Direction)
		assert.Equal(t, 0, req.Offset())
	})

	t.Run("should keep allowed sort and clamp size", func(t *testing.T) {
		req := PageRequest{Page: 3, Size: 1000, SortBy: "status", Direction: "DESC", Search: " 1234 "}.Normalize("id", "status")

		assert.Equal(t, MaxPageSize, req.Size)
		assert.Equal(t, "status", req.SortBy)
		assert.Equal(t, SortDesc, req.Direction)
		assert.Equal(t, "1234", req.Search)
		assert.Equal(t, 200, req.Offset())
	})

	t.Run("should drop unknown sort field", func(t *testing.T) {
		req := PageRequest{SortBy: "number; DROP TABLE cards"}.Normalize("id")

		assert.Equal(t, DefaultSortBy, req.SortBy)
	})
}

func TestPage(t *testing.T) {
	req := PageRequest{Page: 2, Size: 10}
	page := NewPage([]int{1, 2, 3}, req, 23)

	assert.Equal(t, 3, page.TotalPages())
	assert.False(t, page.IsFirst())
	assert.False(t, page.IsLast())

	mapped := MapPage(page, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c", "d"}, mapped.Content)
	assert.Equal(t, int64(23), mapped.TotalItems)

	empty := NewPage[int](nil, PageRequest{Page: 1, Size: 10}, 0)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.IsLast())
}
