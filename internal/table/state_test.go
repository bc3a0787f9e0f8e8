package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageAfterDeleteRow(t *testing.T) {
	assert.Equal(t, 1, PageAfterDeleteRow(2, 1), "last row on page 2 moves to page 1")
	assert.Equal(t, 2, PageAfterDeleteRow(2, 3))
	assert.Equal(t, 0, PageAfterDeleteRow(0, 1), "never below zero")
}

func TestPageAfterDeleteRows(t *testing.T) {
	assert.Equal(t, 0, PageAfterDeleteRows(1, 5, 10, 5, 5))
	assert.Equal(t, 1, PageAfterDeleteRows(2, 5, 12, 2, 2), "10 rows left fill two pages")
	assert.Equal(t, 3, PageAfterDeleteRows(3, 5, 20, 5, 2), "partial selection keeps the page")
	assert.Equal(t, 0, PageAfterDeleteRows(0, 5, 3, 3, 3), "deleting everything lands on page 0")
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(4, 5, 10))
	assert.Equal(t, 0, ClampPage(2, 5, 0))
	assert.Equal(t, 2, ClampPage(2, 5, 11))
	assert.Equal(t, 0, ClampPage(-1, 5, 11))
}

func TestReduceDoesNotShareFilters(t *testing.T) {
	s := NewState("name", Asc, 5, "status")
	next := Reduce(s, FilterAction{Name: "status", Value: "active"})

	assert.Equal(t, AllValues, s.Filters.Categories["status"])
	assert.Equal(t, "active", next.Filters.Categories["status"])
}

func TestReduceDeleteActions(t *testing.T) {
	s := NewState("name", Asc, 5)
	s = Reduce(s, ChangePageAction{Page: 1})
	s = Reduce(s, SelectAllRowsAction{Checked: true, IDs: []string{"a", "b", "c", "d", "e"}})

	after := Reduce(s, DeleteRowsAction{TotalRows: 10, TotalRowsInPage: 5})
	assert.Equal(t, 0, after.Page)
	assert.Equal(t, 0, after.Selected.Len())

	one := Reduce(s, DeleteRowAction{ID: "c", TotalRowsInPage: 5})
	assert.Equal(t, 1, one.Page)
	assert.Equal(t, []string{"a", "b", "d", "e"}, one.Selected.IDs())
}

func TestReduceIgnoresUnknownAndNegative(t *testing.T) {
	s := NewState("name", Asc, 10)
	s = Reduce(s, ChangePageAction{Page: -3})
	assert.Equal(t, 0, s.Page)

	_, err := TryReduce(s, ChangeRowsPerPageAction{RowsPerPage: 100})
	require.ErrorIs(t, err, ErrRowsPerPage)

	assert.Equal(t, "sort", SortAction{}.Type())
	assert.Equal(t, "delete_rows", DeleteRowsAction{}.Type())
}
