package table

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID     string
	Name   string
	Status string
	Qty    int
	Price  decimal.Decimal
	Seen   time.Time
}

var itemSchema = Schema[item]{
	ID: func(i item) string { return i.ID },
	Matcher: Matcher[item]{
		Text: func(i item) []string { return []string{i.Name} },
		Categories: []Category[item]{
			{Name: "status", Get: func(i item) string { return i.Status }},
		},
	},
	Fields: []Field[item]{
		Ordered("name", func(i item) string { return i.Name }),
		Ordered("qty", func(i item) int { return i.Qty }),
		Decimal("price", func(i item) decimal.Decimal { return i.Price }),
		Time("seen", func(i item) time.Time { return i.Seen }),
	},
}

func makeItems(n int) []item {
	statuses := []string{"active", "pending", "banned"}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]item, n)
	for i := range items {
		items[i] = item{
			ID:     fmt.Sprintf("id-%02d", i),
			Name:   fmt.Sprintf("Item %02d", i),
			Status: statuses[i%len(statuses)],
			Qty:    i % 4,
			Price:  decimal.NewFromInt(int64(100 - i)),
			Seen:   base.AddDate(0, 0, i%5),
		}
	}
	return items
}

func newItemTable(n int) *Table[item] {
	return New(itemSchema, makeItems(n), NewState("", Asc, 5, "status"))
}

func TestViewScenarioSecondPagePadding(t *testing.T) {
	tbl := newItemTable(7)
	tbl.OnChangePage(1)

	view := tbl.View()
	require.Len(t, view.Rows, 2, "second page of 7 rows should hold 2")
	assert.Equal(t, 3, view.EmptyRows)
	assert.Equal(t, 2, view.PageCount)
	assert.Equal(t, 6, view.From())
	assert.Equal(t, 7, view.To())
}

func TestViewFirstPageNeverPadded(t *testing.T) {
	tbl := newItemTable(3)
	view := tbl.View()
	assert.Len(t, view.Rows, 3)
	assert.Equal(t, 0, view.EmptyRows)
}

func TestViewRecomputesFromRecords(t *testing.T) {
	tbl := newItemTable(6)
	tbl.OnFilter("status", "active")
	require.Equal(t, 2, tbl.View().Filtered)

	// new data is picked up without touching the state
	tbl.SetRecords(makeItems(9))
	assert.Equal(t, 3, tbl.View().Filtered)
	assert.Equal(t, 9, tbl.View().Total)
	assert.True(t, tbl.View().CanReset)

	tbl.OnClearFilters()
	assert.False(t, tbl.View().CanReset)
	assert.Equal(t, 9, tbl.View().Filtered)
}

func TestSortToggle(t *testing.T) {
	tbl := newItemTable(4)

	tbl.OnSort("qty")
	assert.Equal(t, Asc, tbl.State().Order, "first click on a new column sorts ascending")
	assert.Equal(t, "qty", tbl.State().OrderBy)

	tbl.OnSort("qty")
	assert.Equal(t, Desc, tbl.State().Order, "second click flips to descending")

	tbl.OnSort("qty")
	assert.Equal(t, Asc, tbl.State().Order)

	tbl.OnSort("qty")
	tbl.OnSort("name")
	assert.Equal(t, Asc, tbl.State().Order, "switching column resets to ascending")
	assert.Equal(t, "name", tbl.State().OrderBy)
}

func TestViewSortsStably(t *testing.T) {
	tbl := New(itemSchema, makeItems(8), NewState("qty", Desc, 10))
	view := tbl.View()

	got := tbl.IDs(view.Rows)
	// qty cycles 0..3; equal quantities keep input order
	assert.Equal(t, []string{"id-03", "id-07", "id-02", "id-06", "id-01", "id-05", "id-00", "id-04"}, got)
}

func TestSortByDecimalAndTime(t *testing.T) {
	tbl := New(itemSchema, makeItems(6), NewState("price", Asc, 10))
	ids := tbl.IDs(tbl.View().Rows)
	assert.Equal(t, "id-05", ids[0], "cheapest first")

	tbl.OnSort("seen")
	ids = tbl.IDs(tbl.View().Rows)
	assert.Equal(t, []string{"id-00", "id-05", "id-01", "id-02", "id-03", "id-04"}, ids)
}

func TestRowsPerPage(t *testing.T) {
	tbl := newItemTable(30)
	tbl.OnChangePage(3)

	require.NoError(t, tbl.OnChangeRowsPerPage(10))
	assert.Equal(t, 0, tbl.State().Page, "changing page size resets the page")
	assert.Equal(t, 10, tbl.State().RowsPerPage)

	tbl.OnChangePage(2)
	err := tbl.OnChangeRowsPerPage(7)
	require.ErrorIs(t, err, ErrRowsPerPage)
	assert.Equal(t, 2, tbl.State().Page, "rejected size leaves state unchanged")
	assert.Equal(t, 10, tbl.State().RowsPerPage)
}

func TestNewStateCoercesRowsPerPage(t *testing.T) {
	s := NewState("name", "sideways", 12)
	assert.Equal(t, DefaultRowsPerPage, s.RowsPerPage)
	assert.Equal(t, Asc, s.Order)
}

func TestFilterResetsPage(t *testing.T) {
	tbl := newItemTable(20)
	tbl.OnChangePage(3)
	tbl.OnFilter(TextFilter, "item 1")
	assert.Equal(t, 0, tbl.State().Page)
	assert.Equal(t, 10, tbl.View().Filtered)

	tbl.OnChangePage(1)
	tbl.OnResetPage()
	assert.Equal(t, 0, tbl.State().Page)
}

func TestSelectAllVisible(t *testing.T) {
	tbl := newItemTable(12)
	view := tbl.View()
	visible := tbl.IDs(view.Rows)

	tbl.OnSelectAllRows(true, visible)
	assert.True(t, tbl.View().AllVisibleSelected)
	assert.Equal(t, visible, tbl.State().Selected.IDs())

	tbl.OnChangePage(1)
	assert.False(t, tbl.View().AllVisibleSelected, "selection belongs to the first page")

	tbl.OnSelectAllRows(false, nil)
	assert.Equal(t, 0, tbl.State().Selected.Len())
}

func TestDeleteRowScenarioLastRowOnPage(t *testing.T) {
	// 11 rows at 5 per page: page 2 holds exactly one row
	tbl := newItemTable(11)
	tbl.OnChangePage(2)
	view := tbl.View()
	require.Len(t, view.Rows, 1)

	ok := tbl.DeleteRow(view.Rows[0].ID)
	require.True(t, ok)
	assert.Equal(t, 1, tbl.State().Page)
	assert.Len(t, tbl.View().Rows, 5)
}

func TestDeleteRowKeepsPageAndShrinksSelection(t *testing.T) {
	tbl := newItemTable(12)
	tbl.OnChangePage(1)
	tbl.OnSelectRow("id-05")
	tbl.OnSelectRow("id-06")

	require.True(t, tbl.DeleteRow("id-05"))
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, []string{"id-06"}, tbl.State().Selected.IDs())

	_, found := tbl.Find("id-05")
	assert.False(t, found)
	assert.False(t, tbl.DeleteRow("id-05"), "deleting twice reports not found")
}

func TestDeleteSelectedWholePage(t *testing.T) {
	tbl := newItemTable(10)
	tbl.OnChangePage(1)
	visible := tbl.IDs(tbl.View().Rows)
	tbl.OnSelectAllRows(true, visible)

	deleted := tbl.DeleteSelected()
	assert.Equal(t, visible, deleted)
	assert.Equal(t, 0, tbl.State().Page)
	assert.Equal(t, 0, tbl.State().Selected.Len())
	assert.Equal(t, 5, tbl.View().Total)
}

func TestDeleteSelectedAcrossPagesClamps(t *testing.T) {
	tbl := newItemTable(7)
	tbl.OnSelectRow("id-00")
	tbl.OnSelectRow("id-01")
	tbl.OnSelectRow("id-05")
	tbl.OnChangePage(1)

	// visible page has 2 rows, selection has 3: the page stays, then clamps
	deleted := tbl.DeleteSelected()
	assert.Len(t, deleted, 3)
	assert.Equal(t, 0, tbl.State().Page)
	assert.Len(t, tbl.View().Rows, 4)
}

func TestDeleteSelectedEmpty(t *testing.T) {
	tbl := newItemTable(3)
	assert.Nil(t, tbl.DeleteSelected())
	assert.Equal(t, 3, tbl.View().Total)
}

func TestDeleteCallbacksFollowReducer(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(tbl *Table[item])
		call   func(tbl *Table[item])
		action Action
	}{
		{
			name: "single row alone on its page",
			setup: func(tbl *Table[item]) {
				tbl.OnChangePage(2)
				tbl.OnSelectRow("id-10")
				tbl.OnSelectRow("id-01")
			},
			call:   func(tbl *Table[item]) { tbl.OnUpdatePageDeleteRow("id-10", 1) },
			action: DeleteRowAction{ID: "id-10", TotalRowsInPage: 1},
		},
		{
			name: "single row on a full page",
			setup: func(tbl *Table[item]) {
				tbl.OnChangePage(1)
				tbl.OnSelectRow("id-06")
			},
			call:   func(tbl *Table[item]) { tbl.OnUpdatePageDeleteRow("id-06", 5) },
			action: DeleteRowAction{ID: "id-06", TotalRowsInPage: 5},
		},
		{
			name: "whole page selected",
			setup: func(tbl *Table[item]) {
				tbl.OnSelectAllRows(true, []string{"id-00", "id-01", "id-02", "id-03", "id-04"})
			},
			call:   func(tbl *Table[item]) { tbl.OnUpdatePageDeleteRows(12, 5) },
			action: DeleteRowsAction{TotalRows: 12, TotalRowsInPage: 5},
		},
		{
			name: "part of the page selected",
			setup: func(tbl *Table[item]) {
				tbl.OnChangePage(1)
				tbl.OnSelectRow("id-05")
			},
			call:   func(tbl *Table[item]) { tbl.OnUpdatePageDeleteRows(12, 5) },
			action: DeleteRowsAction{TotalRows: 12, TotalRowsInPage: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := newItemTable(12)
			tt.setup(tbl)
			want := Reduce(tbl.State(), tt.action)

			tt.call(tbl)
			assert.Equal(t, want.Page, tbl.State().Page)
			assert.Equal(t, want.Selected.IDs(), tbl.State().Selected.IDs())
		})
	}
}

func TestDeleteCallbacksPages(t *testing.T) {
	tbl := newItemTable(12)
	tbl.OnChangePage(2)
	tbl.OnSelectRow("id-10")
	tbl.OnUpdatePageDeleteRow("id-10", 1)
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, 0, tbl.State().Selected.Len())

	// 12 rows, first page fully selected: 7 remain, last page is 1
	tbl = newItemTable(12)
	tbl.OnSelectAllRows(true, tbl.IDs(tbl.View().Rows))
	tbl.OnUpdatePageDeleteRows(12, 5)
	assert.Equal(t, 1, tbl.State().Page)
	assert.Equal(t, 0, tbl.State().Selected.Len())
}

func TestUpsert(t *testing.T) {
	tbl := newItemTable(3)

	changed := makeItems(3)[1]
	changed.Name = "Renamed"
	assert.False(t, tbl.Upsert(changed))
	got, ok := tbl.Find(changed.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Name)

	assert.True(t, tbl.Upsert(item{ID: "new", Name: "Brand new"}))
	assert.Equal(t, "new", tbl.Records()[0].ID)
	assert.Equal(t, 4, tbl.View().Total)
}

func TestSetRecordsRetainsSelection(t *testing.T) {
	tbl := newItemTable(6)
	tbl.OnSelectRow("id-01")
	tbl.OnSelectRow("id-05")

	tbl.SetRecords(makeItems(3))
	assert.Equal(t, []string{"id-01"}, tbl.State().Selected.IDs())
}

func TestRecordsIsACopy(t *testing.T) {
	tbl := newItemTable(3)
	records := tbl.Records()
	records[0].Name = "mutated"

	got, _ := tbl.Find("id-00")
	assert.Equal(t, "Item 00", got.Name)
	assert.True(t, slices.IndexFunc(tbl.Records(), func(i item) bool { return i.Name == "mutated" }) < 0)
}
