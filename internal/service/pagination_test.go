package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0))
	assert.Equal(t, 0, TotalPages(-5))
	assert.Equal(t, 1, TotalPages(1))
	assert.Equal(t, 1, TotalPages(10))
	assert.Equal(t, 2, TotalPages(11))
	assert.Equal(t, 5, TotalPages(47))
	assert.Equal(t, 124, TotalPages(1234))
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{name: "single page", current: 1, totalPages: 1, want: nil},
		{name: "no pages", current: 1, totalPages: 0, want: nil},
		{name: "47 results, first page", current: 1, totalPages: TotalPages(47), want: []int{1, 2, 3, 4, 5}},
		{name: "47 results, middle page", current: 3, totalPages: TotalPages(47), want: []int{1, 2, 3, 4, 5}},
		{name: "47 results, last page", current: 5, totalPages: TotalPages(47), want: []int{1, 2, 3, 4, 5}},
		{name: "fewer pages than window", current: 2, totalPages: 3, want: []int{1, 2, 3}},
		{name: "centered", current: 10, totalPages: 124, want: []int{8, 9, 10, 11, 12}},
		{name: "near start", current: 2, totalPages: 124, want: []int{1, 2, 3, 4, 5}},
		{name: "near end", current: 123, totalPages: 124, want: []int{120, 121, 122, 123, 124}},
		{name: "at end", current: 124, totalPages: 124, want: []int{120, 121, 122, 123, 124}},
		{name: "current beyond range", current: 40, totalPages: 7, want: []int{3, 4, 5, 6, 7}},
		{name: "current below range", current: 0, totalPages: 7, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.totalPages))
		})
	}
}

func TestPageWindow_Properties(t *testing.T) {
	for totalPages := 2; totalPages <= 30; totalPages++ {
		for current := 1; current <= totalPages; current++ {
			window := PageWindow(current, totalPages)

			assert.Len(t, window, min(WindowSize, totalPages))
			assert.Contains(t, window, current)
			for i := 1; i < len(window); i++ {
				assert.Equal(t, window[i-1]+1, window[i])
			}
			assert.GreaterOrEqual(t, window[0], 1)
			assert.LessOrEqual(t, window[len(window)-1], totalPages)
		}
	}
}

func TestPrevNext(t *testing.T) {
	assert.False(t, HasPrevPage(1))
	assert.True(t, HasPrevPage(2))
	assert.True(t, HasNextPage(4, 5))
	assert.False(t, HasNextPage(5, 5))
}
