package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// MenuMode drives the dashboard feature list
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q", "esc":
		return []types.Action{types.QuitAction{Force: false}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "home", "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case "enter", "l", "right":
		return []types.Action{types.OpenFeatureAction{Index: -1}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}
	return nil, false
}
