package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/table"
	"backoffice/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State: state,
			Bus:   bus,
		},
	}
}

// ExecuteLoad fetches the open section's data
func (e *Executor) ExecuteLoad(parent context.Context, src features.Source) tea.Cmd {
	if e.ctx.State.Section == nil {
		return nil
	}
	return NewLoadCommand(e.ctx, parent, e.ctx.State.Section, src).Execute()
}

// ExecuteApply installs a fetched dataset
func (e *Executor) ExecuteApply(msg LoadedMsg) tea.Cmd {
	return NewApplyCommand(e.ctx, msg).Execute()
}

// ExecuteDispatch reduces a table action
func (e *Executor) ExecuteDispatch(action table.Action) tea.Cmd {
	return NewDispatchCommand(e.ctx, action).Execute()
}

// ExecuteDeleteRow deletes a single row
func (e *Executor) ExecuteDeleteRow(id string) tea.Cmd {
	return NewDeleteRowCommand(e.ctx, id).Execute()
}

// ExecuteDeleteSelected deletes the selected rows
func (e *Executor) ExecuteDeleteSelected() tea.Cmd {
	return NewDeleteSelectedCommand(e.ctx).Execute()
}

// ExecuteSave submits a form
func (e *Executor) ExecuteSave(id string, values map[string]string) tea.Cmd {
	return NewSaveRecordCommand(e.ctx, id, values).Execute()
}
