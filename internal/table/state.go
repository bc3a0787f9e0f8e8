package table

import (
	"errors"
	"fmt"
)

// ErrRowsPerPage is returned for a page size outside RowsPerPageOptions
var ErrRowsPerPage = errors.New("rows per page must be one of 5, 10, 25")

// State is the interaction state of one table screen.
// It is a value: Reduce returns a new State and never changes its input.
type State struct {
	Page        int
	RowsPerPage int
	Order       Order
	OrderBy     string
	Selected    Selection
	Filters     Filters
}

// NewState creates the initial state for a screen
func NewState(orderBy string, order Order, rowsPerPage int, categories ...string) State {
	if !ValidRowsPerPage(rowsPerPage) {
		rowsPerPage = DefaultRowsPerPage
	}
	if order != Desc {
		order = Asc
	}
	return State{
		RowsPerPage: rowsPerPage,
		Order:       order,
		OrderBy:     orderBy,
		Filters:     NewFilters(categories...),
	}
}

// Reduce applies an action to the state. Unknown actions and invalid page
// sizes leave the state unchanged.
func Reduce(s State, action Action) State {
	next, _ := reduce(s, action)
	return next
}

// TryReduce is Reduce that reports why an action was rejected
func TryReduce(s State, action Action) (State, error) {
	return reduce(s, action)
}

func reduce(s State, action Action) (State, error) {
	// Filters hold a map; give the new state its own copy
	s.Filters = s.Filters.Clone()

	switch a := action.(type) {
	case SortAction:
		isAsc := s.OrderBy == a.Field && s.Order == Asc
		if isAsc {
			s.Order = Desc
		} else {
			s.Order = Asc
		}
		s.OrderBy = a.Field

	case SelectRowAction:
		s.Selected = s.Selected.Toggle(a.ID)

	case SelectAllRowsAction:
		s.Selected = s.Selected.SelectAll(a.Checked, a.IDs)

	case ChangePageAction:
		s.Page = max(0, a.Page)

	case ChangeRowsPerPageAction:
		if !ValidRowsPerPage(a.RowsPerPage) {
			return s, fmt.Errorf("%w: got %d", ErrRowsPerPage, a.RowsPerPage)
		}
		s.Page = 0
		s.RowsPerPage = a.RowsPerPage

	case ResetPageAction:
		s.Page = 0

	case FilterAction:
		s.Filters = s.Filters.With(a.Name, a.Value)
		s.Page = 0

	case ClearFiltersAction:
		s.Filters = s.Filters.Cleared()
		s.Page = 0

	case DeleteRowAction:
		s.Page = PageAfterDeleteRow(s.Page, a.TotalRowsInPage)
		if s.Selected.Has(a.ID) {
			s.Selected = s.Selected.Toggle(a.ID)
		}

	case DeleteRowsAction:
		s.Page = PageAfterDeleteRows(s.Page, s.RowsPerPage, a.TotalRows, a.TotalRowsInPage, s.Selected.Len())
		s.Selected = s.Selected.Clear()
	}

	return s, nil
}
