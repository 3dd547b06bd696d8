package pagination_test

import (
	"math"
	"testing"

	"notes-api/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 10, want: 0},
		{name: "second page", page: 2, limit: 10, want: 10},
		{name: "third page small limit", page: 3, limit: 5, want: 10},
		{name: "page zero clamps", page: 0, limit: 10, want: 0},
		{name: "overflow saturates", page: math.MaxInt, limit: 100, want: math.MaxInt},
		{name: "largest exact offset", page: math.MaxInt, limit: 1, want: math.MaxInt - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateOffset(tt.page, tt.limit); got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "empty", total: 0, limit: 10, want: 1},
		{name: "less than one page", total: 7, limit: 10, want: 1},
		{name: "exact page", total: 10, limit: 10, want: 1},
		{name: "one over", total: 11, limit: 10, want: 2},
		{name: "many pages", total: 1000, limit: 100, want: 10},
		{name: "zero limit", total: 5, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := pagination.CalculateTotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}
