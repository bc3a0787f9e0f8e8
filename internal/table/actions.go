package table

// Action is a state transition understood by Reduce
type Action interface {
	Type() string
}

// Sorting actions
type SortAction struct {
	Field string
}

func (a SortAction) Type() string { return "sort" }

// Selection actions
type SelectRowAction struct {
	ID string
}

func (a SelectRowAction) Type() string { return "select_row" }

type SelectAllRowsAction struct {
	Checked bool
	IDs     []string // ids of the rows the checkbox applies to
}

func (a SelectAllRowsAction) Type() string { return "select_all_rows" }

// Paging actions
type ChangePageAction struct {
	Page int
}

func (a ChangePageAction) Type() string { return "change_page" }

type ChangeRowsPerPageAction struct {
	RowsPerPage int
}

func (a ChangeRowsPerPageAction) Type() string { return "change_rows_per_page" }

type ResetPageAction struct{}

func (a ResetPageAction) Type() string { return "reset_page" }

// Filter actions
type FilterAction struct {
	Name  string // "name" for the search box, otherwise a category name
	Value string
}

func (a FilterAction) Type() string { return "filter" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Delete page bookkeeping
type DeleteRowAction struct {
	ID              string
	TotalRowsInPage int // rows visible on the page before the delete
}

func (a DeleteRowAction) Type() string { return "delete_row" }

type DeleteRowsAction struct {
	TotalRows       int // filtered rows before the delete
	TotalRowsInPage int
}

func (a DeleteRowsAction) Type() string { return "delete_rows" }
