package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction moves between table pages
type PageAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a PageAction) Type() string { return "page" }

type CycleRowsPerPageAction struct{}

func (a CycleRowsPerPageAction) Type() string { return "cycle_rows_per_page" }

// SortColumnAction sorts by the column at Index (0-based)
type SortColumnAction struct {
	Index int
}

func (a SortColumnAction) Type() string { return "sort_column" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type ToggleSelectAllAction struct{}

func (a ToggleSelectAllAction) Type() string { return "toggle_select_all" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type FocusFilterAction struct {
	Index int
}

func (a FocusFilterAction) Type() string { return "focus_filter" }

// CycleFilterAction steps the focused filter's value by Delta options
type CycleFilterAction struct {
	Index int
	Delta int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

// Row actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type EditAction struct{}

func (a EditAction) Type() string { return "edit" }

type NewAction struct{}

func (a NewAction) Type() string { return "new" }

// DeleteAction removes one row
type DeleteAction struct {
	ID string
}

func (a DeleteAction) Type() string { return "delete" }

type DeleteSelectedAction struct{}

func (a DeleteSelectedAction) Type() string { return "delete_selected" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// Menu actions
type OpenFeatureAction struct {
	Index int // -1 for current
}

func (a OpenFeatureAction) Type() string { return "open_feature" }

// Form actions
type FormFocusAction struct {
	Delta int
}

func (a FormFocusAction) Type() string { return "form_focus" }

type FormInputAction struct {
	Msg tea.KeyMsg
}

func (a FormInputAction) Type() string { return "form_input" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
