package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Visible(t *testing.T) {
	tests := []struct {
		name  string
		total uint64
		limit int
		want  bool
	}{
		{"empty list", 0, 5, false},
		{"fits in one page", 5, 5, false},
		{"one more than a page", 6, 5, true},
		{"many pages", 42, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.total, 1, tt.limit).Visible())
		})
	}
}

func TestPagination_Pages(t *testing.T) {
	p := NewPagination(11, 2, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, p.Pages())
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())

	last := NewPagination(11, 3, 5)
	assert.False(t, last.HasNext())

	assert.Equal(t, 1, NewPagination(3, 0, 5).Page)
}

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{Page: 1, Limit: 5}.Offset())
	assert.Equal(t, 10, Filter{Page: 3, Limit: 5}.Offset())
	assert.Equal(t, 0, Filter{Page: 0, Limit: 5}.Offset())
}
