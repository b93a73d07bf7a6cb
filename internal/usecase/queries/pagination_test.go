//go:build unit

package queries_test

import (
	"math"
	"testing"

	"rovera-leads/internal/pkg/config"
	"rovera-leads/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestPagination(t *testing.T) {
	t.Run("unset config falls back to defaults", func(t *testing.T) {
		p := queries.NewPagination(config.PaginationConfig{})

		assert.Equal(t, queries.DefaultListLimit, p.NormalizeLimit(0))
		assert.Equal(t, queries.MaxListLimit, p.NormalizeLimit(1000))
	})

	t.Run("limit normalization", func(t *testing.T) {
		p := queries.NewPagination(config.PaginationConfig{DefaultLimit: 20, MaxLimit: 50})
		cases := map[int]int{-1: 20, 0: 20, 1: 1, 50: 50, 51: 50}
		for in, want := range cases {
			assert.Equal(t, want, p.NormalizeLimit(in), "limit %d", in)
		}
	})

	t.Run("page normalization", func(t *testing.T) {
		assert.Equal(t, 1, queries.NormalizePage(-3))
		assert.Equal(t, 1, queries.NormalizePage(0))
		assert.Equal(t, 7, queries.NormalizePage(7))
	})

	t.Run("offset", func(t *testing.T) {
		assert.Equal(t, int64(0), queries.Offset(1, 10))
		assert.Equal(t, int64(20), queries.Offset(3, 10))
		assert.Equal(t, int64(math.MaxInt64), queries.Offset(math.MaxInt, queries.MaxListLimit))
		assert.Equal(t, int64(math.MaxInt64), queries.Offset(math.MaxInt64/10+2, 10))
		assert.Equal(t, int64(math.MaxInt64/10)*10, queries.Offset(math.MaxInt64/10+1, 10))
	})

	t.Run("total pages", func(t *testing.T) {
		tests := []struct {
			total int64
			limit int
			want  int
		}{
			{total: 0, limit: 10, want: 0},
			{total: 1, limit: 10, want: 1},
			{total: 10, limit: 10, want: 1},
			{total: 11, limit: 10, want: 2},
			{total: 5, limit: 0, want: 0},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, queries.TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
		}
	})
}
