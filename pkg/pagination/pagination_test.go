package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	// limit is accepted as a per_page alias
	p = &PaginationParams{Page: 2, Limit: 5}
	p.Validate()
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.PerPage)

	// per_page wins when both are supplied
	p = &PaginationParams{PerPage: 25, Limit: 5}
	p.Validate()
	assert.Equal(t, 25, p.PerPage)

	p = &PaginationParams{Page: -1, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestPaginationParamsOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	pg = NewPagination(1, 15, 10)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}
