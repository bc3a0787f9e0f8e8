package state

import (
	"backoffice/internal/features"
)

// ToastLevel classifies a toast notice
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// Toast is a transient notice shown above the footer
type Toast struct {
	ID      int
	Message string
	Level   ToastLevel
}

// AppState contains all the application state
type AppState struct {
	// Open feature; nil on the dashboard
	Section features.Section
	Page    features.Page
	Filters []features.Filter

	// Cursor position
	MenuIndex int
	Cursor    int

	// Loading state
	Loading        bool
	LoadingFeature string

	// UI state
	ShowHelp      bool
	FocusedFilter int // -1 when no filter is focused
	DetailID      string
	Detail        []features.Detail

	Toast   *Toast
	toastID int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{FocusedFilter: -1}
}

// Open makes section the active feature
func (s *AppState) Open(section features.Section) {
	s.Section = section
	s.Cursor = 0
	s.FocusedFilter = -1
	s.DetailID = ""
	s.Detail = nil
	s.Refresh()
}

// Close returns to the dashboard
func (s *AppState) Close() {
	s.Section = nil
	s.Page = features.Page{}
	s.Filters = nil
	s.Cursor = 0
	s.FocusedFilter = -1
	s.Loading = false
	s.LoadingFeature = ""
	s.DetailID = ""
	s.Detail = nil
}

// Refresh recomputes the visible page and keeps the cursor on a row
func (s *AppState) Refresh() {
	if s.Section == nil {
		return
	}
	s.Page = s.Section.View()
	s.Filters = s.Section.Filters()
	s.ClampCursor()
}

// ClampCursor keeps the cursor within the visible rows
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Page.Rows) {
		s.Cursor = len(s.Page.Rows) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// CurrentID returns the id of the row under the cursor
func (s *AppState) CurrentID() string {
	if s.Cursor < 0 || s.Cursor >= len(s.Page.Rows) {
		return ""
	}
	return s.Page.Rows[s.Cursor].ID
}

// ShowToast replaces the current toast and returns its id
func (s *AppState) ShowToast(message string, level ToastLevel) int {
	s.toastID++
	s.Toast = &Toast{ID: s.toastID, Message: message, Level: level}
	return s.toastID
}

// ExpireToast clears the toast if it is still the one with id
func (s *AppState) ExpireToast(id int) {
	if s.Toast != nil && s.Toast.ID == id {
		s.Toast = nil
	}
}
