// Package aggregate holds the pure helpers dashboards and reports are built
// from. Nothing here caches or mutates its input; every call recomputes from
// the collection it is given.
package aggregate

import (
	"sort"
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/shopspring/decimal"
)

// Predicate selects records of type T.
type Predicate[T any] func(T) bool

// Filter returns the records matching every predicate. No predicates keeps
// all records. The result is never nil.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many records match every predicate.
func Count[T any](items []T, preds ...Predicate[T]) int {
	n := 0
	for _, item := range items {
		if matchesAll(item, preds) {
			n++
		}
	}
	return n
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Percentage returns part/total*100, or 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Ratio is Percentage for float operands.
func Ratio(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// Sum adds value(item) over items.
func Sum[T any](items []T, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		total += value(item)
	}
	return total
}

// SumInt adds integer values over items.
func SumInt[T any](items []T, value func(T) int) int {
	total := 0
	for _, item := range items {
		total += value(item)
	}
	return total
}

// SumDecimal adds money values over items without float rounding.
func SumDecimal[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(value(item))
	}
	return total
}

// Average returns the mean of value(item), or 0 for an empty collection.
func Average[T any](items []T, value func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return Sum(items, value) / float64(len(items))
}

// Group is one partition of a collection.
type Group struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Sum        float64 `json:"sum"`
	Percentage float64 `json:"percentage"`
}

// GroupBy partitions items by key, counting members and summing value (value
// may be nil). Groups are ordered by count descending; equal counts keep the
// order in which their key was first seen.
func GroupBy[T any](items []T, key func(T) string, value func(T) float64) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Count++
		if value != nil {
			groups[i].Sum += value(item)
		}
	}
	for i := range groups {
		groups[i].Percentage = Percentage(groups[i].Count, len(items))
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Count > groups[b].Count
	})
	return groups
}

// ContainsFold reports whether sub is within s, ignoring case.
func ContainsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// MatchesAny reports whether term occurs in any field, ignoring case. A blank
// term matches everything.
func MatchesAny(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// EqualFold returns a predicate-friendly comparison: an empty want matches
// any value.
func EqualFold(value, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(value, want)
}

// UpcomingWithin reports whether d falls in [today, today+days]. Nil dates
// are never upcoming.
func UpcomingWithin(d *date.Date, today date.Date, days int) bool {
	if d == nil {
		return false
	}
	return !d.Before(today) && !d.After(today.AddDays(days))
}

// Overdue reports whether d is strictly before today. Nil dates are never
// overdue.
func Overdue(d *date.Date, today date.Date) bool {
	if d == nil {
		return false
	}
	return d.Before(today)
}

// Round2 rounds a float to two decimals for display-facing aggregates.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
