package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		in           SearchQuery
		wantPage     int
		wantPageSize int
	}{
		{"zero values", SearchQuery{}, 1, DefaultPageSize},
		{"negative page", SearchQuery{Page: -3, PageSize: 10}, 1, 10},
		{"page size capped", SearchQuery{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"page size at cap", SearchQuery{Page: 5, PageSize: 100}, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestSearchQuery_NormalizeKeepsFilters(t *testing.T) {
	q := SearchQuery{Type: "cat", Location: "10001", Gender: "female"}.Normalize()
	assert.Equal(t, "cat", q.Type)
	assert.Equal(t, "10001", q.Location)
	assert.Equal(t, "female", q.Gender)
}

func TestSinglePage(t *testing.T) {
	pets := []Pet{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	page := SinglePage(pets)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.Count)
	assert.Len(t, page.Items, 2)
}

func TestSinglePage_Empty(t *testing.T) {
	page := SinglePage(nil)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 1, page.TotalPages)
}
