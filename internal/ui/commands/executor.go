package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/selection"
	"usergrip/internal/ui/logic"
	"usergrip/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. bus may be nil.
func NewExecutor(state *state.AppState, store *selection.Store, nav *logic.Navigator, bus eventbus.EventBus, clip Clipboard) *Executor {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Executor{
		ctx: &CommandContext{
			State:     state,
			Store:     store,
			Navigator: nav,
			Bus:       bus,
			Clipboard: clip,
		},
	}
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(id domain.AppID) tea.Cmd {
	return NewToggleSelectionCommand(e.ctx, id).Execute()
}

// ExecuteSelectAll creates and executes a select all command
func (e *Executor) ExecuteSelectAll() tea.Cmd {
	return NewSelectAllCommand(e.ctx).Execute()
}

// ExecuteDeselectAll creates and executes a deselect all command
func (e *Executor) ExecuteDeselectAll() tea.Cmd {
	return NewDeselectAllCommand(e.ctx).Execute()
}

// ExecuteDeleteSelected creates and executes a delete command
func (e *Executor) ExecuteDeleteSelected() tea.Cmd {
	return NewDeleteSelectedCommand(e.ctx).Execute()
}

// ExecuteDuplicateSelected creates and executes a duplicate command
func (e *Executor) ExecuteDuplicateSelected() tea.Cmd {
	return NewDuplicateSelectedCommand(e.ctx).Execute()
}

// ExecuteCopyURL creates and executes a copy command
func (e *Executor) ExecuteCopyURL(url string) tea.Cmd {
	return NewCopyURLCommand(e.ctx, url).Execute()
}

// ReportError shows err in the status bar and publishes it
func (e *Executor) ReportError(message string, err error) tea.Cmd {
	seq := e.ctx.State.SetError(message + ": " + err.Error())
	e.ctx.Bus.Publish(domain.ErrorEvent{Message: message, Err: err})
	return ClearStatusLater(seq)
}
