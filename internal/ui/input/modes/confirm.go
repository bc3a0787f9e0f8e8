package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// ConfirmMode asks before deleting. An empty target means the selection.
type ConfirmMode struct {
	target string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// SetData stores the row id to delete
func (m *ConfirmMode) SetData(data string) {
	m.target = data
}

// Target returns the row id, or "" for a bulk delete
func (m *ConfirmMode) Target() string {
	return m.target
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.target = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y", "enter":
		var del types.Action = types.DeleteSelectedAction{}
		if m.target != "" {
			del = types.DeleteAction{ID: m.target}
		}
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			del,
		}, true
	}
	return nil, true
}
