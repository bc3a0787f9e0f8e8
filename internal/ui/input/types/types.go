package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeMenu Mode = iota
	ModeNormal
	ModeSearch
	ModeFilterSelect
	ModeRowActions
	ModeConfirm
	ModeDetail
	ModeForm
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeFilterSelect:
		return "filter"
	case ModeRowActions:
		return "actions"
	case ModeConfirm:
		return "confirm"
	case ModeDetail:
		return "detail"
	case ModeForm:
		return "form"
	}
	return "unknown"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentID() string
	HasSelection() bool
	SelectedCount() int
	AllVisibleSelected() bool
	HasActiveFilters() bool
	FilterCount() int
	ColumnCount() int
	Editable() bool
	ConfirmDelete() bool
	SearchQuery() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	Enter(ctx Context) []Action
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
