package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"backoffice/internal/table"
	inputtypes "backoffice/internal/ui/input/types"
	"backoffice/internal/ui/views"
)

// handleMouse maps clicks on marked zones to the matching actions
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.navigate("up")
		return nil
	case tea.MouseButtonWheelDown:
		m.navigate("down")
		return nil
	}
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.state.ShowHelp {
		return nil
	}

	if m.state.Section == nil {
		for i := range m.opts.Registry.All() {
			if zone.Get(views.ZoneMenuItem(i)).InBounds(msg) {
				return m.processAction(inputtypes.OpenFeatureAction{Index: i})
			}
		}
		return nil
	}

	mode := m.inputHandler.CurrentMode()
	if mode != inputtypes.ModeNormal && mode != inputtypes.ModeFilterSelect {
		return nil
	}
	return m.clickTable(msg)
}

func (m *Model) clickTable(msg tea.MouseMsg) tea.Cmd {
	s := m.state
	page := s.Page

	if z := zone.Get(views.ZoneHead); z.InBounds(msg) {
		col := views.ColumnAt(msg.X-z.StartX, s.Section.Columns())
		if col == -1 {
			return m.processAction(inputtypes.ToggleSelectAllAction{})
		}
		return m.sortColumn(col)
	}

	for i := range page.Rows {
		z := zone.Get(views.ZoneRow(i))
		if !z.InBounds(msg) {
			continue
		}
		s.Cursor = i
		if views.ColumnAt(msg.X-z.StartX, nil) == -1 {
			return m.processAction(inputtypes.ToggleSelectAction{})
		}
		return nil
	}

	for i := range s.Filters {
		if zone.Get(views.ZoneFilter(i)).InBounds(msg) {
			return m.cycleFilter(i, 1)
		}
	}
	for _, n := range table.RowsPerPageOptions {
		if zone.Get(views.ZoneRowsPerPage(n)).InBounds(msg) {
			if n == page.RowsPerPage {
				return nil
			}
			s.Cursor = 0
			return m.dispatch(table.ChangeRowsPerPageAction{RowsPerPage: n})
		}
	}

	switch {
	case zone.Get(views.ZonePrevPage).InBounds(msg):
		return m.changePage("prev")
	case zone.Get(views.ZoneNextPage).InBounds(msg):
		return m.changePage("next")
	case zone.Get(views.ZoneClearFilters).InBounds(msg):
		return m.processAction(inputtypes.ClearFiltersAction{})
	case zone.Get(views.ZoneDeleteSelected).InBounds(msg):
		if len(page.Selected) > 0 {
			m.changeMode(inputtypes.ModeConfirm, "")
		}
	case zone.Get(views.ZoneSearch).InBounds(msg):
		m.changeMode(inputtypes.ModeSearch, page.Search)
		return nil
	}
	return nil
}
