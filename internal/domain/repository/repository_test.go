package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Pagination
	}{
		{"默认值", 0, 0, Pagination{Page: 1, PageSize: 20}},
		{"负数", -1, -5, Pagination{Page: 1, PageSize: 20}},
		{"正常值", 3, 50, Pagination{Page: 3, PageSize: 50}},
		{"超出上限", 1, 500, Pagination{Page: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.pageSize))
		})
	}
}

func TestPagination_OffsetLimit(t *testing.T) {
	p := NewPagination(3, 25)

	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestNewPagedResult_TotalPages(t *testing.T) {
	p := NewPagination(1, 20)

	assert.Equal(t, 0, NewPagedResult([]int{}, 0, p).TotalPages)
	assert.Equal(t, 1, NewPagedResult([]int{1}, 20, p).TotalPages)
	assert.Equal(t, 2, NewPagedResult([]int{1}, 21, p).TotalPages)
}
