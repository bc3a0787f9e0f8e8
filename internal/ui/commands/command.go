package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/table"
	"backoffice/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State *state.AppState
	Bus   eventbus.EventBus
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// LoadedMsg carries a fetched dataset back to the UI goroutine
type LoadedMsg struct {
	Feature string
	Batch   features.Batch
	Err     error
}

// SavedMsg reports a successful form submission
type SavedMsg struct {
	Feature string
	ID      string
	Created bool
}

// SaveFailedMsg reports a rejected form submission
type SaveFailedMsg struct {
	Err error
}

// LoadCommand fetches a feature's dataset off the UI goroutine
type LoadCommand struct {
	ctx     *CommandContext
	section features.Section
	source  features.Source
	parent  context.Context
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext, parent context.Context, section features.Section, src features.Source) *LoadCommand {
	return &LoadCommand{ctx: ctx, section: section, source: src, parent: parent}
}

// Execute marks the state as loading and returns the fetch
func (c *LoadCommand) Execute() tea.Cmd {
	c.ctx.State.Loading = true
	c.ctx.State.LoadingFeature = c.section.Slug()

	section, src, parent := c.section, c.source, c.parent
	return func() tea.Msg {
		batch, err := section.Fetch(parent, src)
		return LoadedMsg{Feature: section.Slug(), Batch: batch, Err: err}
	}
}

// ApplyCommand installs a fetched dataset into the open section
type ApplyCommand struct {
	ctx *CommandContext
	msg LoadedMsg
}

// NewApplyCommand creates a new apply command
func NewApplyCommand(ctx *CommandContext, msg LoadedMsg) *ApplyCommand {
	return &ApplyCommand{ctx: ctx, msg: msg}
}

// Execute applies the batch; a batch for a feature that is no longer open is dropped
func (c *ApplyCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Section == nil || s.Section.Slug() != c.msg.Feature {
		return nil
	}
	s.Loading = false
	s.LoadingFeature = ""

	if c.msg.Err != nil {
		c.ctx.publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Could not load %s", s.Section.Title()),
			Err:     c.msg.Err,
		})
		return nil
	}
	if err := s.Section.Apply(c.msg.Batch); err != nil {
		c.ctx.publish(eventbus.ErrorEvent{Message: "Could not load data", Err: err})
		return nil
	}
	s.Refresh()
	c.ctx.publish(eventbus.RecordsLoadedEvent{Feature: c.msg.Feature, Count: c.msg.Batch.Len()})
	return nil
}

// DispatchCommand feeds a table action to the open section
type DispatchCommand struct {
	ctx    *CommandContext
	action table.Action
}

// NewDispatchCommand creates a new dispatch command
func NewDispatchCommand(ctx *CommandContext, action table.Action) *DispatchCommand {
	return &DispatchCommand{ctx: ctx, action: action}
}

// Execute reduces the action and refreshes the visible page
func (c *DispatchCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Section == nil {
		return nil
	}
	if err := s.Section.Dispatch(c.action); err != nil {
		c.ctx.publish(eventbus.ErrorEvent{Message: "Action rejected", Err: err})
		return nil
	}
	s.Refresh()
	return nil
}

// DeleteRowCommand deletes one row
type DeleteRowCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteRowCommand creates a new delete command
func NewDeleteRowCommand(ctx *CommandContext, id string) *DeleteRowCommand {
	return &DeleteRowCommand{ctx: ctx, id: id}
}

// Execute deletes the row and moves the page back when it emptied
func (c *DeleteRowCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Section == nil || c.id == "" {
		return nil
	}
	if !s.Section.Delete(c.id) {
		c.ctx.publish(eventbus.ErrorEvent{
			Message: "Row no longer exists",
			Err:     fmt.Errorf("%w: %s", features.ErrNotFound, c.id),
		})
		return nil
	}
	s.Refresh()
	c.ctx.publish(eventbus.RecordDeletedEvent{Feature: s.Section.Slug(), ID: c.id})
	return nil
}

// DeleteSelectedCommand deletes every selected row
type DeleteSelectedCommand struct {
	ctx *CommandContext
}

// NewDeleteSelectedCommand creates a new bulk delete command
func NewDeleteSelectedCommand(ctx *CommandContext) *DeleteSelectedCommand {
	return &DeleteSelectedCommand{ctx: ctx}
}

// Execute deletes the selection and clears it
func (c *DeleteSelectedCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Section == nil {
		return nil
	}
	ids := s.Section.DeleteSelected()
	if len(ids) == 0 {
		return nil
	}
	s.Refresh()
	c.ctx.publish(eventbus.RecordsDeletedEvent{Feature: s.Section.Slug(), IDs: ids})
	return nil
}

// SaveRecordCommand submits a create or edit form
type SaveRecordCommand struct {
	ctx    *CommandContext
	id     string
	values map[string]string
}

// NewSaveRecordCommand creates a new save command; an empty id creates a record
func NewSaveRecordCommand(ctx *CommandContext, id string, values map[string]string) *SaveRecordCommand {
	return &SaveRecordCommand{ctx: ctx, id: id, values: values}
}

// Execute validates and stores the record
func (c *SaveRecordCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if s.Section == nil {
		return nil
	}
	id, created, err := s.Section.Submit(c.id, c.values)
	if err != nil {
		c.ctx.publish(eventbus.ErrorEvent{Message: "Could not save", Err: err})
		return func() tea.Msg { return SaveFailedMsg{Err: err} }
	}
	s.Refresh()
	slug := s.Section.Slug()
	c.ctx.publish(eventbus.RecordSavedEvent{Feature: slug, ID: id, Created: created})
	return func() tea.Msg { return SavedMsg{Feature: slug, ID: id, Created: created} }
}
