package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// RowAction is one entry of the row action menu
type RowAction struct {
	Key   string
	Label string
}

// RowActions lists the row menu entries in display order
var RowActions = []RowAction{
	{"v", "View"},
	{"e", "Edit"},
	{"d", "Delete"},
}

// RowActionsMode is the popup menu opened on a row
type RowActionsMode struct {
	index int
}

func NewRowActionsMode() *RowActionsMode {
	return &RowActionsMode{}
}

func (m *RowActionsMode) Name() string {
	return "actions"
}

// Index returns the highlighted entry
func (m *RowActionsMode) Index() int {
	return m.index
}

func (m *RowActionsMode) Enter(ctx types.Context) []types.Action {
	m.index = 0
	return nil
}

func (m *RowActionsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *RowActionsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up", "k":
		m.index = (m.index - 1 + len(RowActions)) % len(RowActions)
		return nil, true
	case "down", "j", "tab":
		m.index = (m.index + 1) % len(RowActions)
		return nil, true
	case "enter":
		return m.choose(RowActions[m.index].Key, ctx), true
	case "v", "e", "d":
		return m.choose(msg.String(), ctx), true
	}
	return nil, true
}

func (m *RowActionsMode) choose(key string, ctx types.Context) []types.Action {
	switch key {
	case "v":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}, types.OpenDetailAction{}}
	case "e":
		if !ctx.Editable() {
			return nil
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}, types.EditAction{}}
	case "d":
		if ctx.ConfirmDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirm, Data: ctx.CurrentID()}}
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}, types.DeleteAction{ID: ctx.CurrentID()}}
	}
	return nil
}
