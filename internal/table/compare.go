package table

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a sort direction
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Toggle returns the opposite direction
func (o Order) Toggle() Order {
	if o == Asc {
		return Desc
	}
	return Asc
}

// Arrow returns the header indicator for the direction
func (o Order) Arrow() string {
	if o == Desc {
		return "▼"
	}
	return "▲"
}

// Comparator is a three-way comparison between two records
type Comparator[R any] func(a, b R) int

// Field is a named, sortable value of a record
type Field[R any] struct {
	Name string
	// descending reports -1 when b's value is below a's, +1 when above, 0 when equal
	descending func(a, b R) int
}

// Ordered builds a field over any cmp.Ordered value (strings compare by byte order)
func Ordered[R any, V cmp.Ordered](name string, get func(R) V) Field[R] {
	return Field[R]{
		Name: name,
		descending: func(a, b R) int {
			return cmp.Compare(get(b), get(a))
		},
	}
}

// Time builds a field over a time.Time value
func Time[R any](name string, get func(R) time.Time) Field[R] {
	return Field[R]{
		Name: name,
		descending: func(a, b R) int {
			return get(b).Compare(get(a))
		},
	}
}

// Decimal builds a field over a money or quantity value
func Decimal[R any](name string, get func(R) decimal.Decimal) Field[R] {
	return Field[R]{
		Name: name,
		descending: func(a, b R) int {
			return get(b).Cmp(get(a))
		},
	}
}

// Bool builds a field where false sorts before true
func Bool[R any](name string, get func(R) bool) Field[R] {
	return Ordered(name, func(r R) int {
		if get(r) {
			return 1
		}
		return 0
	})
}

// GetComparator returns the comparator for a direction and field.
// For Desc a record sorts first when its value is greater; Asc is the negation.
func GetComparator[R any](order Order, field Field[R]) Comparator[R] {
	if field.descending == nil {
		return func(a, b R) int { return 0 }
	}
	if order == Desc {
		return func(a, b R) int {
			return field.descending(a, b)
		}
	}
	return func(a, b R) int {
		return -field.descending(a, b)
	}
}

type indexed[R any] struct {
	record R
	index  int
}

// StableSort returns a sorted copy of records. Every element is decorated with
// its original index, sorted by (comparator, index), then stripped, so equal
// keys keep their input order in both directions.
func StableSort[R any](records []R, comparator Comparator[R]) []R {
	decorated := make([]indexed[R], len(records))
	for i, r := range records {
		decorated[i] = indexed[R]{record: r, index: i}
	}

	slices.SortFunc(decorated, func(a, b indexed[R]) int {
		if c := comparator(a.record, b.record); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	out := make([]R, len(decorated))
	for i, d := range decorated {
		out[i] = d.record
	}
	return out
}
