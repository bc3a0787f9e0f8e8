package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// DetailMode shows a record popup
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "v", "backspace":
		return []types.Action{types.BackAction{}}, true
	case "o", "p":
		return []types.Action{types.OpenPagerAction{}}, true
	case "e":
		if ctx.Editable() {
			return []types.Action{types.EditAction{}}, true
		}
	}
	return nil, true
}
