package table

import (
	"slices"
)

// Schema describes a record type to the table: how to identify, search,
// filter and sort it
type Schema[R any] struct {
	ID      func(R) string
	Matcher Matcher[R]
	Fields  []Field[R]
}

// Field looks up a sortable field by name
func (s Schema[R]) Field(name string) (Field[R], bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field[R]{}, false
}

// View is the derived, render-ready projection of a table
type View[R any] struct {
	Rows               []R // visible page
	EmptyRows          int
	Filtered           int // rows after filtering, before paging
	Total              int // rows before filtering
	Page               int
	PageCount          int
	RowsPerPage        int
	Order              Order
	OrderBy            string
	Selected           Selection
	AllVisibleSelected bool
	CanReset           bool // any filter active
}

// From returns the one-based index of the first visible row (0 when empty)
func (v View[R]) From() int {
	if len(v.Rows) == 0 {
		return 0
	}
	return v.Page*v.RowsPerPage + 1
}

// To returns the one-based index of the last visible row
func (v View[R]) To() int {
	return v.Page*v.RowsPerPage + len(v.Rows)
}

// Table binds records of one feature to their interaction state
type Table[R any] struct {
	schema  Schema[R]
	records []R
	state   State
}

// New creates a table over records with an initial state
func New[R any](schema Schema[R], records []R, state State) *Table[R] {
	t := &Table[R]{schema: schema, state: state}
	t.SetRecords(records)
	return t
}

// State returns the current interaction state
func (t *Table[R]) State() State {
	return t.state
}

// Records returns a copy of the full dataset in input order
func (t *Table[R]) Records() []R {
	return slices.Clone(t.records)
}

// Dispatch runs an action through the reducer
func (t *Table[R]) Dispatch(action Action) error {
	next, err := TryReduce(t.state, action)
	if err != nil {
		return err
	}
	t.state = next
	return nil
}

func (t *Table[R]) OnSort(field string) {
	_ = t.Dispatch(SortAction{Field: field})
}

func (t *Table[R]) OnSelectRow(id string) {
	_ = t.Dispatch(SelectRowAction{ID: id})
}

func (t *Table[R]) OnSelectAllRows(checked bool, ids []string) {
	_ = t.Dispatch(SelectAllRowsAction{Checked: checked, IDs: ids})
}

func (t *Table[R]) OnChangePage(page int) {
	_ = t.Dispatch(ChangePageAction{Page: page})
}

func (t *Table[R]) OnChangeRowsPerPage(rowsPerPage int) error {
	return t.Dispatch(ChangeRowsPerPageAction{RowsPerPage: rowsPerPage})
}

func (t *Table[R]) OnResetPage() {
	_ = t.Dispatch(ResetPageAction{})
}

func (t *Table[R]) OnFilter(name, value string) {
	_ = t.Dispatch(FilterAction{Name: name, Value: value})
}

func (t *Table[R]) OnClearFilters() {
	_ = t.Dispatch(ClearFiltersAction{})
}

// OnUpdatePageDeleteRow recomputes the page after the row id was removed
// from a page that held totalRowsInPage rows, and drops id from the selection
func (t *Table[R]) OnUpdatePageDeleteRow(id string, totalRowsInPage int) {
	_ = t.Dispatch(DeleteRowAction{ID: id, TotalRowsInPage: totalRowsInPage})
}

// OnUpdatePageDeleteRows recomputes the page after the selection was removed
// and clears it. totalRows and totalRowsInPage are counted before the delete.
func (t *Table[R]) OnUpdatePageDeleteRows(totalRows, totalRowsInPage int) {
	_ = t.Dispatch(DeleteRowsAction{TotalRows: totalRows, TotalRowsInPage: totalRowsInPage})
}

// SetRecords replaces the dataset and drops selected ids that no longer exist
func (t *Table[R]) SetRecords(records []R) {
	t.records = slices.Clone(records)
	t.state.Selected = t.state.Selected.Retain(t.ids(t.records))
}

// Find returns the record with the given id
func (t *Table[R]) Find(id string) (R, bool) {
	for _, r := range t.records {
		if t.schema.ID(r) == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Upsert replaces the record with the same id, or prepends it when new.
// It reports whether the record was newly inserted.
func (t *Table[R]) Upsert(record R) bool {
	id := t.schema.ID(record)
	for i, r := range t.records {
		if t.schema.ID(r) == id {
			t.records[i] = record
			return false
		}
	}
	t.records = append([]R{record}, t.records...)
	return true
}

// DeleteRow removes one record and recomputes the page
func (t *Table[R]) DeleteRow(id string) bool {
	if _, ok := t.Find(id); !ok {
		return false
	}
	inPage := len(t.View().Rows)

	t.records = slices.DeleteFunc(t.records, func(r R) bool {
		return t.schema.ID(r) == id
	})
	t.OnUpdatePageDeleteRow(id, inPage)
	t.clampPage()
	return true
}

// DeleteSelected removes every selected record, clears the selection and
// recomputes the page. It returns the deleted ids.
func (t *Table[R]) DeleteSelected() []string {
	ids := t.state.Selected.IDs()
	if len(ids) == 0 {
		return nil
	}
	view := t.View()

	gone := NewSelection(ids...)
	t.records = slices.DeleteFunc(t.records, func(r R) bool {
		return gone.Has(t.schema.ID(r))
	})
	t.OnUpdatePageDeleteRows(view.Filtered, len(view.Rows))
	t.clampPage()
	return ids
}

// clampPage keeps the page on a populated page when the selection spanned
// rows outside the visible page
func (t *Table[R]) clampPage() {
	filtered := t.filtered()
	t.state.Page = ClampPage(t.state.Page, t.state.RowsPerPage, len(filtered))
}

func (t *Table[R]) filtered() []R {
	sorted := t.records
	if field, ok := t.schema.Field(t.state.OrderBy); ok {
		sorted = StableSort(t.records, GetComparator(t.state.Order, field))
	}
	return ApplyFilter(sorted, t.state.Filters, t.schema.Matcher)
}

// View recomputes filter, sort and pagination from the current records and state
func (t *Table[R]) View() View[R] {
	filtered := t.filtered()
	s := t.state
	rows := Paginate(filtered, s.Page, s.RowsPerPage)

	return View[R]{
		Rows:               rows,
		EmptyRows:          EmptyRows(s.Page, s.RowsPerPage, len(filtered)),
		Filtered:           len(filtered),
		Total:              len(t.records),
		Page:               s.Page,
		PageCount:          PageCount(len(filtered), s.RowsPerPage),
		RowsPerPage:        s.RowsPerPage,
		Order:              s.Order,
		OrderBy:            s.OrderBy,
		Selected:           s.Selected,
		AllVisibleSelected: s.Selected.HasAll(t.ids(rows)),
		CanReset:           s.Filters.Active(),
	}
}

// IDs returns the ids of records in order
func (t *Table[R]) IDs(records []R) []string {
	return t.ids(records)
}

func (t *Table[R]) ids(records []R) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = t.schema.ID(r)
	}
	return out
}
