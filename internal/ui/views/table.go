package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"backoffice/internal/features"
	tbl "backoffice/internal/table"
)

// Zone ids for clickable parts of the table screen
const (
	ZoneHead           = "tbl_head"
	ZoneClearFilters   = "tbl_clear"
	ZoneDeleteSelected = "tbl_delete"
	ZonePrevPage       = "tbl_prev"
	ZoneNextPage       = "tbl_next"
	ZoneSearch         = "tbl_search"
)

// ZoneRow is the zone id of the i-th visible row
func ZoneRow(i int) string { return fmt.Sprintf("tbl_row_%d", i) }

// ZoneFilter is the zone id of the i-th filter select
func ZoneFilter(i int) string { return fmt.Sprintf("tbl_filter_%d", i) }

// ZoneRowsPerPage is the zone id of a rows-per-page option
func ZoneRowsPerPage(n int) string { return fmt.Sprintf("tbl_rpp_%d", n) }

const checkboxWidth = 3

// TableProps is everything the table screen needs to render
type TableProps struct {
	Columns       []features.Column
	Page          features.Page
	Filters       []features.Filter
	FocusedFilter int
	Cursor        int
	SearchHint    string
	SearchActive  bool
	SearchInput   string // rendered text input while searching
	Loading       string // spinner frame and label while data is fetched
}

// TableRenderer draws a feature's table screen
type TableRenderer struct {
	styles *Styles
	table  table.Model
	pager  paginator.Model
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("•")

	return &TableRenderer{
		styles: styles,
		table:  table.New(table.WithStyles(styles.Table)),
		pager:  p,
	}
}

// Render produces toolbar, table and footer
func (r *TableRenderer) Render(p TableProps) string {
	parts := []string{r.toolbar(p)}
	if bar := r.selectionBar(p.Page); bar != "" {
		parts = append(parts, bar)
	}
	if p.Loading != "" {
		parts = append(parts, r.styles.NoData.Render(p.Loading))
	} else {
		parts = append(parts, r.body(p))
	}
	parts = append(parts, r.footer(p.Page))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *TableRenderer) toolbar(p TableProps) string {
	var search string
	switch {
	case p.SearchActive:
		search = r.styles.SearchActive.Render("⌕ " + p.SearchInput)
	case p.Page.Search != "":
		search = r.styles.SearchBox.Render("⌕ " + p.Page.Search)
	default:
		search = r.styles.SearchBox.Render(r.styles.Dim.Render("⌕ " + p.SearchHint))
	}
	items := []string{zone.Mark(ZoneSearch, search)}

	for i, f := range p.Filters {
		style := r.styles.FilterChip
		if f.Value != tbl.AllValues {
			style = r.styles.FilterActive
		}
		if i == p.FocusedFilter {
			style = r.styles.FilterFocused
		}
		chip := style.Render(fmt.Sprintf("%s: %s ▾", f.Label, f.Value))
		items = append(items, zone.Mark(ZoneFilter(i), chip))
	}
	if p.Page.CanReset {
		items = append(items, zone.Mark(ZoneClearFilters, r.styles.Button.Render("✕ Clear filters")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, items...)
}

func (r *TableRenderer) selectionBar(page features.Page) string {
	if len(page.Selected) == 0 {
		return ""
	}
	label := r.styles.SelectionBar.Render(fmt.Sprintf("%d selected", len(page.Selected)))
	del := zone.Mark(ZoneDeleteSelected, r.styles.DangerButton.Render("🗑 Delete (D)"))
	return lipgloss.JoinHorizontal(lipgloss.Center, label, del)
}

func (r *TableRenderer) body(p TableProps) string {
	page := p.Page
	r.table.SetColumns(r.columns(p.Columns, page))

	rows := make([]table.Row, 0, len(page.Rows)+page.EmptyRows)
	for _, row := range page.Rows {
		cells := make(table.Row, 0, len(row.Cells)+1)
		cells = append(cells, checkbox(page.IsSelected(row.ID)))
		cells = append(cells, row.Cells...)
		rows = append(rows, cells)
	}
	for i := 0; i < page.EmptyRows; i++ {
		rows = append(rows, make(table.Row, len(p.Columns)+1))
	}
	headH := lipgloss.Height(r.styles.Table.Header.Render("x"))
	r.table.SetRows(rows)
	r.table.SetHeight(len(rows) + headH)
	if len(page.Rows) > 0 {
		r.table.SetCursor(p.Cursor)
	}

	lines := strings.Split(r.table.View(), "\n")
	headH = min(headH, len(lines))
	head := zone.Mark(ZoneHead, strings.Join(lines[:headH], "\n"))

	if len(page.Rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, head, r.styles.NoData.Render("No data"))
	}

	marked := make([]string, 0, len(lines)-headH)
	for i, line := range lines[headH:] {
		if i < len(page.Rows) {
			line = zone.Mark(ZoneRow(i), line)
		}
		marked = append(marked, line)
	}
	return head + "\n" + strings.Join(marked, "\n")
}

func (r *TableRenderer) columns(cols []features.Column, page features.Page) []table.Column {
	head := checkbox(page.AllVisibleSelected)
	if !page.AllVisibleSelected && len(page.Selected) > 0 {
		head = "[-]"
	}
	out := []table.Column{{Title: head, Width: checkboxWidth}}
	for _, c := range cols {
		title := c.Title
		if c.Sortable() && c.Field == page.OrderBy {
			title += " " + page.Order.Arrow()
		}
		out = append(out, table.Column{Title: title, Width: c.Width})
	}
	return out
}

func (r *TableRenderer) footer(page features.Page) string {
	options := make([]string, 0, len(tbl.RowsPerPageOptions))
	for _, n := range tbl.RowsPerPageOptions {
		style := r.styles.Footer
		if n == page.RowsPerPage {
			style = r.styles.FooterSelected
		}
		options = append(options, zone.Mark(ZoneRowsPerPage(n), style.Render(strconv.Itoa(n))))
	}

	r.pager.PerPage = max(page.RowsPerPage, 1)
	r.pager.TotalPages = max(page.PageCount, 1)
	r.pager.Page = page.Page

	parts := []string{
		r.styles.Footer.Render("Rows per page:"),
		strings.Join(options, " "),
		r.styles.Footer.Render("  " + RangeLabel(page) + "  "),
		zone.Mark(ZonePrevPage, r.styles.Button.Render("‹")),
		r.styles.Footer.Render(fmt.Sprintf("Page %d/%d", page.Page+1, page.PageCount)),
		zone.Mark(ZoneNextPage, r.styles.Button.Render("›")),
		" " + r.pager.View(),
	}
	return lipgloss.NewStyle().MarginTop(1).Render(strings.Join(parts, " "))
}

// RangeLabel renders "from–to of total" for the filtered rows
func RangeLabel(page features.Page) string {
	return fmt.Sprintf("%d–%d of %d", page.From, page.To, page.Filtered)
}

// ColumnAt maps an x offset inside the header to a feature column index.
// It returns -1 for the select-all checkbox and -2 past the last column.
func ColumnAt(x int, cols []features.Column) int {
	// every cell carries one column of padding on each side
	edge := checkboxWidth + 2
	if x < edge {
		return -1
	}
	for i, c := range cols {
		edge += c.Width + 2
		if x < edge {
			return i
		}
	}
	return -2
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
