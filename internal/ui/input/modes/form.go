package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// FormMode routes keys to the record form
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.BackAction{}}, true
	case "tab", "down":
		return []types.Action{types.FormFocusAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FormFocusAction{Delta: -1}}, true
	case "enter", "ctrl+s":
		return []types.Action{types.SubmitFormAction{}}, true
	}
	return []types.Action{types.FormInputAction{Msg: msg}}, true
}
