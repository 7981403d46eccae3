package domain

import "fmt"

// Pagination limits enforced at the request boundary. Violations are caller
// errors and are rejected, never clamped.
const (
	MinLimit = 1
	MaxLimit = 100
)

// PageRequest carries the window and ordering of a search. OrderBy names a
// sortable field; an unrecognized name falls back to the category's default
// date column inside the query builder, it is not an error.
type PageRequest struct {
	Skip      int
	Limit     int
	OrderBy   string
	OrderDesc bool
}

// Validate enforces the skip/limit contract.
func (p PageRequest) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("skip must be >= 0, got %d", p.Skip)
	}
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("limit must be between %d and %d, got %d", MinLimit, MaxLimit, p.Limit)
	}
	return nil
}

// Page is one window of a fully-filtered result set. Total counts the whole
// filtered set, not the window, so page math is stable across pages.
type Page[T any] struct {
	Total      int
	Items      []T
	Page       int
	PageSize   int
	TotalPages int
}

// NewPage derives the page descriptor from the filtered total and the window
// that produced items. Pages are 1-indexed; an empty result set has
// total_pages 0 but still reports page 1.
func NewPage[T any](items []T, total, skip, limit int) *Page[T] {
	return &Page[T]{
		Total:      total,
		Items:      items,
		Page:       skip/limit + 1,
		PageSize:   limit,
		TotalPages: (total + limit - 1) / limit,
	}
}
