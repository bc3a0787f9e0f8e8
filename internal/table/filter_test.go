package table

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilter(t *testing.T) {
	items := makeItems(9)

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "no active filters",
			filters: NewFilters("status"),
			want:    []string{"id-00", "id-01", "id-02", "id-03", "id-04", "id-05", "id-06", "id-07", "id-08"},
		},
		{
			name:    "text is case insensitive",
			filters: NewFilters("status").With(TextFilter, "ITEM 0"),
			want:    []string{"id-00", "id-01", "id-02", "id-03", "id-04", "id-05", "id-06", "id-07", "id-08"},
		},
		{
			name:    "text substring",
			filters: NewFilters("status").With(TextFilter, "m 07"),
			want:    []string{"id-07"},
		},
		{
			name:    "category exact match",
			filters: NewFilters("status").With("status", "pending"),
			want:    []string{"id-01", "id-04", "id-07"},
		},
		{
			name:    "category is case sensitive",
			filters: NewFilters("status").With("status", "Pending"),
			want:    []string{},
		},
		{
			name:    "filters are combined with AND",
			filters: NewFilters("status").With("status", "pending").With(TextFilter, "4"),
			want:    []string{"id-04"},
		},
		{
			name:    "unknown category yields no rows",
			filters: NewFilters().With("colour", "red"),
			want:    []string{},
		},
		{
			name:    "empty category value is inactive",
			filters: NewFilters().With("status", ""),
			want:    []string{"id-00", "id-01", "id-02", "id-03", "id-04", "id-05", "id-06", "id-07", "id-08"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(items, tt.filters, itemSchema.Matcher)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	items := makeItems(5)
	before := append([]item(nil), items...)

	got := ApplyFilter(items, NewFilters().With("status", "active"), itemSchema.Matcher)
	require.Len(t, got, 2)
	got[0].Name = "changed"

	assert.Equal(t, before, items)
}

func TestApplyFilterProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	statuses := []string{AllValues, "active", "pending", "banned"}
	queries := []string{"", "1", "item", "0", "zzz"}

	for round := 0; round < 50; round++ {
		items := makeItems(rng.Intn(30))
		f := NewFilters("status").
			With("status", statuses[rng.Intn(len(statuses))]).
			With(TextFilter, queries[rng.Intn(len(queries))])

		got := ApplyFilter(items, f, itemSchema.Matcher)

		// subset, and exactly the matching records
		kept := make(map[string]bool, len(got))
		for _, r := range got {
			kept[r.ID] = true
		}
		for _, r := range items {
			assert.Equal(t, itemSchema.Matcher.Match(r, f), kept[r.ID], "record %s", r.ID)
		}
		assert.LessOrEqual(t, len(got), len(items))

		// idempotent
		assert.Equal(t, got, ApplyFilter(got, f, itemSchema.Matcher))
	}
}

func TestFiltersCopies(t *testing.T) {
	base := NewFilters("status", "kind")
	changed := base.With("status", "active")

	assert.Equal(t, AllValues, base.Categories["status"], "With must not touch the receiver")
	assert.True(t, changed.Active())
	assert.False(t, base.Active())

	cleared := changed.With(TextFilter, "x").Cleared()
	assert.Equal(t, "", cleared.Name)
	assert.Equal(t, AllValues, cleared.Categories["status"])
	assert.Equal(t, "active", changed.Categories["status"])
}
