// Package pagination implements the search engine shared by every entity
// repository: case-insensitive substring filtering, stable multi-record
// sorting and page window arithmetic over an already materialized set.
package pagination

import (
	"sort"
	"strings"
	"time"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15

	SortAsc  = "asc"
	SortDesc = "desc"
)

// SearchParams carries the per-request list parameters. Zero or negative
// page/perPage values fall back to the defaults during Normalized.
type SearchParams struct {
	Page    int    `json:"page" form:"page"`
	PerPage int    `json:"perPage" form:"per_page"`
	Sort    string `json:"sort" form:"sort"`
	SortDir string `json:"sortDir" form:"sort_dir"`
	Filter  string `json:"filter" form:"filter"`
}

// Normalized returns a copy with defaults applied: page 1, perPage 15 and
// ascending direction unless "desc" was requested explicitly.
func (p SearchParams) Normalized() SearchParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.SortDir != SortDesc {
		p.SortDir = SortAsc
	}
	return p
}

// Descending reports whether the requested sort direction is descending.
func (p SearchParams) Descending() bool {
	return p.SortDir == SortDesc
}

// Offset is the number of records skipped before the requested page.
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Result is one page of a filtered set plus its window metadata.
type Result[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	LastPage    int `json:"lastPage"`
	Total       int `json:"total"`
}

// NewResult builds a Result with LastPage = max(1, ceil(total/perPage)).
// Repositories that push filtering and ordering down to SQL use this to
// keep the metadata contract identical to the in-memory engine.
func NewResult[T any](items []T, total, page, perPage int) Result[T] {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:       items,
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    lastPage,
		Total:       total,
	}
}

// Map projects a Result onto another item type, preserving the window.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, len(r.Items))
	for i, item := range r.Items {
		items[i] = fn(item)
	}
	return Result[U]{
		Items:       items,
		CurrentPage: r.CurrentPage,
		PerPage:     r.PerPage,
		LastPage:    r.LastPage,
		Total:       r.Total,
	}
}

// Accessors tells the engine how to read an entity: the designated filter
// field, the ascending comparator per sortable field, and the creation
// timestamp used for the default newest-first order.
type Accessors[T any] struct {
	FilterValue func(T) string
	SortLess    map[string]func(a, b T) bool
	CreatedAt   func(T) time.Time
}

// Search filters, sorts and paginates records in that order.
//
// Filtering keeps records whose designated field contains the filter text,
// case-insensitively. Sorting is stable so equal keys keep their original
// relative order, which makes pagination deterministic across pages. An
// unknown or absent sort field falls back to creation time descending.
// A page past the last one yields empty items, not an error.
func Search[T any](records []T, params SearchParams, acc Accessors[T]) Result[T] {
	params = params.Normalized()

	filtered := make([]T, 0, len(records))
	if params.Filter != "" && acc.FilterValue != nil {
		needle := strings.ToLower(params.Filter)
		for _, r := range records {
			if strings.Contains(strings.ToLower(acc.FilterValue(r)), needle) {
				filtered = append(filtered, r)
			}
		}
	} else {
		filtered = append(filtered, records...)
	}

	if less, ok := acc.SortLess[params.Sort]; ok && params.Sort != "" {
		if params.Descending() {
			sort.SliceStable(filtered, func(i, j int) bool {
				return less(filtered[j], filtered[i])
			})
		} else {
			sort.SliceStable(filtered, func(i, j int) bool {
				return less(filtered[i], filtered[j])
			})
		}
	} else if acc.CreatedAt != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return acc.CreatedAt(filtered[i]).After(acc.CreatedAt(filtered[j]))
		})
	}

	total := len(filtered)
	start := params.Offset()
	end := start + params.PerPage

	var items []T
	if start < total {
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return NewResult(items, total, params.Page, params.PerPage)
}
