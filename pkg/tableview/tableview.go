// Package tableview implements the list screen transform: a stable sort by
// one column followed by a case-insensitive substring filter, plus paging.
package tableview

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order sort direction
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts asc/desc in any case, anything else is Asc
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// Column extracts the sortable value of a record
type Column[T any] func(T) any

// Query describes one list screen state
type Query struct {
	OrderBy string
	Order   Order
	Filter  string
	Page    int // 1-based
	PerPage int
}

// Comparer compares column values. Strings use a case-insensitive collator,
// which is not safe for concurrent use, so each transform builds its own.
type Comparer struct {
	col *collate.Collator
}

// NewComparer returns a Comparer for the root locale
func NewComparer() *Comparer {
	return &Comparer{col: collate.New(language.Und, collate.IgnoreCase)}
}

// Compare orders a and b: nil sorts first, then numbers, times and bools by
// value, and everything else as case-insensitive text.
func (c *Comparer) Compare(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}
	if isNumber(a) && isNumber(b) {
		fa, fb := cast.ToFloat64(a), cast.ToFloat64(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return c.col.CompareString(cast.ToString(a), cast.ToString(b))
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// Comparator builds the record comparator for orderBy. Desc compares b to a;
// Asc is its negation. An unknown column yields a comparator that always
// returns 0, which keeps the original order.
func Comparator[T any](columns map[string]Column[T], orderBy string, order Order) func(a, b T) int {
	column, ok := columns[orderBy]
	if !ok || column == nil {
		return func(a, b T) int { return 0 }
	}
	cmp := NewComparer()
	descending := func(a, b T) int {
		return cmp.Compare(column(b), column(a))
	}
	if order == Desc {
		return descending
	}
	return func(a, b T) int { return -descending(a, b) }
}

// Sort returns a sorted copy of rows. Ties keep their original index order.
func Sort[T any](rows []T, cmp func(a, b T) int) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	slices.SortStableFunc(out, cmp)
	return out
}

// Filter keeps the rows whose display text contains needle, ignoring case.
// An empty needle keeps every row. A nil display matches against fmt.Sprint(row).
func Filter[T any](rows []T, needle string, display func(T) string) []T {
	if needle == "" {
		return rows
	}
	if display == nil {
		display = func(r T) string { return fmt.Sprint(r) }
	}
	fold := cases.Fold()
	want := fold.String(needle)
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(fold.String(display(r)), want) {
			out = append(out, r)
		}
	}
	return out
}

// Apply sorts rows by q.OrderBy/q.Order and then filters by q.Filter.
func Apply[T any](rows []T, q Query, columns map[string]Column[T], display func(T) string) []T {
	if len(rows) == 0 {
		return []T{}
	}
	sorted := Sort(rows, Comparator(columns, q.OrderBy, q.Order))
	return Filter(sorted, q.Filter, display)
}

// Paginate returns the slice for a 1-based page. Pages past the end are empty.
func Paginate[T any](rows []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return []T{}
	}
	if page-1 >= PageCount(len(rows), perPage) {
		return []T{}
	}
	start := (page - 1) * perPage
	end := len(rows)
	if perPage < end-start {
		end = start + perPage
	}
	return rows[start:end]
}

// PageCount returns how many pages total rows span
func PageCount(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 0
	}
	n := total / perPage
	if total%perPage != 0 {
		n++
	}
	return n
}
