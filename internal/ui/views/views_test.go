package views

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"

	"backoffice/internal/features"
	"backoffice/internal/table"
	"backoffice/internal/ui/state"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

var testColumns = []features.Column{
	{Title: "Name", Width: 10, Field: "name"},
	{Title: "Note", Width: 8},
	{Title: "Qty", Width: 4, Field: "qty"},
}

func testPage() features.Page {
	return features.Page{
		Rows: []features.Row{
			{ID: "1", Cells: []string{"Alpha", "x", "3"}},
			{ID: "2", Cells: []string{"Beta", "y", "5"}},
		},
		EmptyRows:   3,
		Filtered:    7,
		Total:       9,
		Page:        1,
		PageCount:   2,
		RowsPerPage: 5,
		From:        6,
		To:          7,
		Order:       table.Desc,
		OrderBy:     "name",
		Selected:    []string{"2"},
	}
}

func render(p TableProps) string {
	return ansi.Strip(zone.Scan(NewTableRenderer(NewStyles()).Render(p)))
}

func TestColumnAt(t *testing.T) {
	tests := []struct {
		x    int
		want int
	}{
		{0, -1},
		{4, -1},
		{5, 0},
		{16, 0},
		{17, 1},
		{26, 1},
		{27, 2},
		{32, 2},
		{33, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColumnAt(tt.x, testColumns), "x=%d", tt.x)
	}
}

func TestRangeLabel(t *testing.T) {
	assert.Equal(t, "6–7 of 7", RangeLabel(testPage()))
	assert.Equal(t, "0–0 of 0", RangeLabel(features.Page{}))
}

func TestTableRender(t *testing.T) {
	out := render(TableProps{
		Columns:       testColumns,
		Page:          testPage(),
		FocusedFilter: -1,
		SearchHint:    "Search name...",
	})

	assert.Contains(t, out, "Name ▼")
	assert.NotContains(t, out, "Note ▼")
	assert.Contains(t, out, "[-]", "partial selection in the head")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "1 selected")
	assert.Contains(t, out, "6–7 of 7")
	assert.Contains(t, out, "Page 2/2")
	assert.Contains(t, out, "Search name...")
	assert.NotContains(t, out, "Clear filters")
}

func TestTableRenderPadsEmptyRows(t *testing.T) {
	p := testPage()
	full := strings.Count(render(TableProps{Columns: testColumns, Page: p}), "\n")

	p.EmptyRows = 0
	short := strings.Count(render(TableProps{Columns: testColumns, Page: p}), "\n")
	assert.Equal(t, 3, full-short)
}

func TestTableRenderNoData(t *testing.T) {
	out := render(TableProps{
		Columns: testColumns,
		Page:    features.Page{RowsPerPage: 5, PageCount: 1, CanReset: true},
		Filters: []features.Filter{{Name: "status", Label: "Status", Options: []string{"all", "open"}, Value: "open"}},
	})
	assert.Contains(t, out, "No data")
	assert.Contains(t, out, "Status: open")
	assert.Contains(t, out, "Clear filters")
	assert.NotContains(t, out, "selected")
}

func TestTableRenderLoading(t *testing.T) {
	out := render(TableProps{Columns: testColumns, Page: testPage(), Loading: "Loading Foods..."})
	assert.Contains(t, out, "Loading Foods...")
	assert.NotContains(t, out, "Alpha")
}

func TestMenuRender(t *testing.T) {
	r := NewMenuRenderer(NewStyles())
	out := ansi.Strip(zone.Scan(r.Render([]MenuItem{
		{Title: "Orders", Slug: "orders"},
		{Title: "Inventory", Slug: "inventory"},
		{Title: "Employees", Slug: "employees"},
	}, 0)))
	assert.Contains(t, out, "01. Orders")
	assert.Contains(t, out, "03. Employees")
}

func TestBreadcrumbsRender(t *testing.T) {
	r := NewBreadcrumbsRenderer(NewStyles())
	out := ansi.Strip(r.Render("Orders", []Crumb{
		{Title: "Dashboard", Href: "/dashboard"},
		{Title: "Orders"},
	}))
	assert.Contains(t, out, "Orders")
	assert.Contains(t, out, "Dashboard › Orders")
}

func TestRendererToast(t *testing.T) {
	out := ansi.Strip(NewRenderer().Render(ViewState{
		Width:  100,
		Height: 40,
		Title:  "Orders",
		Table:  TableProps{Columns: testColumns, Page: testPage(), FocusedFilter: -1},
		Toast:  &state.Toast{ID: 1, Message: "Record updated", Level: state.ToastSuccess},
	}))
	assert.Contains(t, out, "✓ Record updated")
}

func TestRendererConfirmPopup(t *testing.T) {
	out := ansi.Strip(NewRenderer().Render(ViewState{
		Width:       100,
		Height:      40,
		Title:       "Orders",
		Table:       TableProps{Columns: testColumns, Page: testPage(), FocusedFilter: -1},
		Overlay:     OverlayConfirm,
		ConfirmText: "Delete 1 selected record?",
	}))
	assert.Contains(t, out, "Delete 1 selected record?")
	assert.Contains(t, out, "y confirm")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "a\nb", clip("a\nb\nc", 2))
	assert.Equal(t, "a\nb\nc", clip("a\nb\nc", 0))
}
