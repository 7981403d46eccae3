package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		skip       int
		limit      int
		page       int
		totalPages int
	}{
		{"middle page", 45, 20, 20, 2, 3},
		{"empty result", 0, 0, 20, 1, 0},
		{"first page", 45, 0, 20, 1, 3},
		{"exact multiple", 40, 20, 20, 2, 2},
		{"single item", 1, 0, 1, 1, 1},
		{"skip beyond total", 10, 100, 20, 6, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage([]int{}, tt.total, tt.skip, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.PageSize)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}

func TestPageRequestValidate(t *testing.T) {
	assert.NoError(t, PageRequest{Skip: 0, Limit: 20}.Validate())
	assert.NoError(t, PageRequest{Skip: 100, Limit: 100}.Validate())
	assert.NoError(t, PageRequest{Skip: 0, Limit: 1}.Validate())
	assert.Error(t, PageRequest{Skip: -1, Limit: 20}.Validate())
	assert.Error(t, PageRequest{Skip: 0, Limit: 0}.Validate())
	assert.Error(t, PageRequest{Skip: 0, Limit: 101}.Validate())
}
