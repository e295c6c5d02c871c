package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name       string
		rawPage    string
		wantItems  []int
		wantNumber int
	}{
		{"default first page", "", []int{1, 2, 3}, 1},
		{"explicit first page", "1", []int{1, 2, 3}, 1},
		{"middle page", "2", []int{4, 5, 6}, 2},
		{"short last page", "3", []int{7}, 3},
		{"past the end clamps to last", "99", []int{7}, 3},
		{"non-numeric falls back to first", "abc", []int{1, 2, 3}, 1},
		{"zero falls back to first", "0", []int{1, 2, 3}, 1},
		{"negative falls back to first", "-2", []int{1, 2, 3}, 1},
		{"float falls back to first", "1.5", []int{1, 2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, 3, tt.rawPage)
			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, len(items), page.TotalItems)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]string{}, 3, "5")
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.False(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page := Paginate([]int{1, 2, 3, 4, 5, 6}, 3, "2")
	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasPrevious())
	assert.False(t, page.HasNext())
}

func TestPaginate_PreservesOrder(t *testing.T) {
	items := []string{"c", "a", "b"}
	page := Paginate(items, 10, "1")
	assert.Equal(t, items, page.Items)
}

func TestPaginate_InvalidPageSize(t *testing.T) {
	page := Paginate([]int{1, 2}, 0, "2")
	assert.Equal(t, []int{2}, page.Items)
	assert.Equal(t, 2, page.TotalPages)
}
