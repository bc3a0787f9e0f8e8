package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/ui/input/modes"
	"backoffice/internal/ui/input/types"
)

// dataReceiver is implemented by modes that take the ChangeModeAction payload
type dataReceiver interface {
	SetData(data string)
}

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // shared by text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 64

	h := &Handler{
		currentMode: types.ModeMenu,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeMenu] = modes.NewMenuMode()
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeFilterSelect] = modes.NewFilterSelectMode()
	h.modes[types.ModeRowActions] = modes.NewRowActionsMode()
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()
	h.modes[types.ModeDetail] = modes.NewDetailMode()
	h.modes[types.ModeForm] = modes.NewFormMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// unhandled keys in a text mode go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(change types.ChangeModeAction, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = change.Mode

	next := h.modes[h.currentMode]
	if r, ok := next.(dataReceiver); ok {
		r.SetData(change.Data)
	}
	if h.isTextMode(h.currentMode) {
		h.textInput.Reset()
		h.textInput.SetValue(change.Data)
		h.textInput.Focus()
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}
	if next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeMenu
	}
	return h.currentMode
}

// Mode returns the handler registered for mode
func (h *Handler) Mode(mode types.Mode) types.ModeHandler {
	return h.modes[mode]
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// ChangeMode switches modes outside of a key press, e.g. on navigation
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	return h.switchMode(types.ChangeModeAction{Mode: mode, Data: data}, ctx)
}

// Reset returns to the dashboard menu
func (h *Handler) Reset() {
	h.currentMode = types.ModeMenu
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
