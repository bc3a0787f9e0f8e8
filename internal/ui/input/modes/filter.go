package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// FilterSelectMode focuses one categorical filter at a time and cycles its value
type FilterSelectMode struct {
	index int
}

func NewFilterSelectMode() *FilterSelectMode {
	return &FilterSelectMode{}
}

func (m *FilterSelectMode) Name() string {
	return "filter"
}

// Index returns the focused filter
func (m *FilterSelectMode) Index() int {
	return m.index
}

func (m *FilterSelectMode) Enter(ctx types.Context) []types.Action {
	if m.index >= ctx.FilterCount() {
		m.index = 0
	}
	return []types.Action{types.FocusFilterAction{Index: m.index}}
}

func (m *FilterSelectMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFilterAction{Index: -1}}
}

func (m *FilterSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	count := ctx.FilterCount()
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter", "f", "F":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "tab", "down", "j":
		if count > 0 {
			m.index = (m.index + 1) % count
		}
		return []types.Action{types.FocusFilterAction{Index: m.index}}, true
	case "shift+tab", "up", "k":
		if count > 0 {
			m.index = (m.index - 1 + count) % count
		}
		return []types.Action{types.FocusFilterAction{Index: m.index}}, true
	case "right", "l", " ":
		return []types.Action{types.CycleFilterAction{Index: m.index, Delta: 1}}, true
	case "left", "h":
		return []types.Action{types.CycleFilterAction{Index: m.index, Delta: -1}}, true
	case "c":
		return []types.Action{types.ClearFiltersAction{}}, true
	}
	return nil, true
}
