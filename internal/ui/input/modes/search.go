package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/types"
)

// SearchMode edits the free-text filter. Keys it does not consume go to the
// shared text input, and the handler re-filters the table after each one.
type SearchMode struct {
	input *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{input: ti}
}

func (m *SearchMode) Name() string { return "search" }

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.input != nil {
		// the toolbar draws its own label
		m.input.Prompt = ""
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.input != nil {
		m.input.Blur()
	}
	return nil
}

func (m *SearchMode) query() string {
	if m.input == nil {
		return ""
	}
	return m.input.Value()
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter", "tab":
		return []types.Action{
			types.SubmitTextAction{Text: m.query(), Mode: types.ModeSearch},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
