package queries

import (
	"math"

	"rovera-leads/internal/pkg/config"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

type Pagination struct {
	defaultLimit int
	maxLimit     int
}

// NewPagination falls back to the package defaults for unset values.
func NewPagination(cfg config.PaginationConfig) Pagination {
	p := Pagination{defaultLimit: cfg.DefaultLimit, maxLimit: cfg.MaxLimit}
	if p.defaultLimit <= 0 {
		p.defaultLimit = DefaultListLimit
	}
	if p.maxLimit <= 0 {
		p.maxLimit = MaxListLimit
	}
	return p
}

func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func (p Pagination) NormalizeLimit(limit int) int {
	if limit < 1 {
		return p.defaultLimit
	}
	if limit > p.maxLimit {
		return p.maxLimit
	}
	return limit
}

// Offset is the number of records before the given 1-based page. It
// saturates at math.MaxInt64, so an absurd page is simply past the end.
func Offset(page, limit int) int64 {
	if page <= 1 || limit <= 0 {
		return 0
	}
	if int64(page-1) > math.MaxInt64/int64(limit) {
		return math.MaxInt64
	}
	return int64(page-1) * int64(limit)
}

// TotalPages is ceil(total/limit); zero records give zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
