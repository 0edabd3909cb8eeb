// Package table implements the dashboard table contract: a full entity
// collection held in memory, a free-text search term matched case-insensitively
// against a fixed subset of fields, and fixed-size pages sliced from the
// filtered set. Filtering always happens before paging.
package table

import "fmt"

// DefaultPageSize matches the dashboard tables' fixed 12 rows per page.
const DefaultPageSize = 12

// MatchFunc reports whether an item matches a search term. The term is
// already lower-cased when passed in.
type MatchFunc[T any] func(item T, term string) bool

// Page is one page of a filtered collection.
type Page[T any] struct {
	Items     []T `json:"items"`
	Number    int `json:"page"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
	From      int `json:"from"`
	To        int `json:"to"`
}

// Summary renders the footer line under a table.
func (p Page[T]) Summary() string {
	return fmt.Sprintf("Showing %d to %d of %d entries", p.From, p.To, p.Total)
}

// Table pairs a collection with its match function.
type Table[T any] struct {
	rows     []T
	match    MatchFunc[T]
	pageSize int
}

func New[T any](rows []T, match MatchFunc[T]) *Table[T] {
	return &Table[T]{rows: rows, match: match, pageSize: DefaultPageSize}
}

// WithPageSize overrides the fixed page size. Sizes below 1 are ignored.
func (t *Table[T]) WithPageSize(size int) *Table[T] {
	if size >= 1 {
		t.pageSize = size
	}
	return t
}

// Filter returns every row matching term, in collection order. An empty term
// matches everything.
func (t *Table[T]) Filter(term string) []T {
	if term == "" {
		return t.rows
	}
	needle := lower(term)
	filtered := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if t.match(row, needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Page filters by term, then slices out the requested page. The page number
// is clamped to [1, PageCount]; PageCount is at least 1 even for an empty
// result, so an empty table still renders as page 1 of 1.
func (t *Table[T]) Page(term string, page int) Page[T] {
	filtered := t.Filter(term)
	total := len(filtered)

	pageCount := (total + t.pageSize - 1) / t.pageSize
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	first := (page - 1) * t.pageSize
	last := first + t.pageSize
	if last > total {
		last = total
	}

	p := Page[T]{
		Items:     filtered[first:last],
		Number:    page,
		PageCount: pageCount,
		Total:     total,
	}
	if total > 0 {
		p.From = first + 1
		p.To = last
	}
	return p
}
