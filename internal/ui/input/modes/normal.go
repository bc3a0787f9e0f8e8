package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// NormalMode drives the table screen
type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyLeft, tea.KeyPgUp:
		return []types.Action{types.PageAction{Direction: "prev"}}, true
	case tea.KeyRight, tea.KeyPgDown:
		return []types.Action{types.PageAction{Direction: "next"}}, true
	case tea.KeyHome:
		return []types.Action{types.PageAction{Direction: "first"}}, true
	case tea.KeyEnd:
		return []types.Action{types.PageAction{Direction: "last"}}, true
	case tea.KeyEnter:
		if ctx.CurrentID() == "" {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRowActions, Data: ctx.CurrentID()}}, true
	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return []types.Action{types.BackAction{}}, true
	}

	key := msg.String()

	// 1-9 sort by column
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < ctx.ColumnCount() {
			return []types.Action{types.SortColumnAction{Index: idx}}, true
		}
		return nil, true
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "h", "[":
		return []types.Action{types.PageAction{Direction: "prev"}}, true
	case "l", "]":
		return []types.Action{types.PageAction{Direction: "next"}}, true
	case " ":
		if ctx.CurrentID() == "" {
			return nil, true
		}
		return []types.Action{types.ToggleSelectAction{}}, true
	case "a", "A":
		return []types.Action{types.ToggleSelectAllAction{}}, true
	case "r":
		return []types.Action{types.CycleRowsPerPageAction{}}, true
	case "R":
		return []types.Action{types.RefreshAction{}}, true
	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true
	case "f", "F":
		if ctx.FilterCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilterSelect}}, true
	case "c":
		if ctx.HasActiveFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true
	case "v":
		if ctx.CurrentID() == "" {
			return nil, true
		}
		return []types.Action{types.OpenDetailAction{}}, true
	case "e":
		if ctx.CurrentID() == "" || !ctx.Editable() {
			return nil, true
		}
		return []types.Action{types.EditAction{}}, true
	case "n":
		if !ctx.Editable() {
			return nil, true
		}
		return []types.Action{types.NewAction{}}, true
	case "d":
		if ctx.CurrentID() == "" {
			return nil, true
		}
		if ctx.ConfirmDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm, Data: ctx.CurrentID()}}, true
		}
		return []types.Action{types.DeleteAction{ID: ctx.CurrentID()}}, true
	case "D", "delete":
		if !ctx.HasSelection() {
			return nil, true
		}
		// bulk delete always asks
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true
	case "backspace":
		return []types.Action{types.BackAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	default:
		m.lastKeyWasG = false
	}

	return nil, false
}
