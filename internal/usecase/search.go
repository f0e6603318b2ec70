package usecase

import (
	"strings"
)

// Search keeps the records where at least one of fields(record) contains query,
// case-insensitively. A blank query returns items unchanged. Relative order is kept.
func Search[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Where keeps the records matching pred, in order.
func Where[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// MatchExact is the dropdown filter: an empty filter matches everything.
func MatchExact(value, filter string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || value == filter
}

// PageInfo carries pagination metadata.
type PageInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

const MaxPerPage = 100

// Paginate slices items for page (1-indexed). page is clamped into [1, TotalPages].
func Paginate[T any](items []T, page, perPage int) ([]T, PageInfo) {
	if perPage < 1 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	return items[start:end], PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}
