package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/selection"
	"usergrip/internal/ui/logic"
	"usergrip/internal/ui/state"
)

// StatusTimeout is how long informational status messages stay visible
const StatusTimeout = 3 * time.Second

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Store     *selection.Store
	Navigator *logic.Navigator
	Bus       eventbus.EventBus
	Clipboard Clipboard
}

// ClearStatusMsg clears the status bar if Seq is still the shown message
type ClearStatusMsg struct {
	Seq int
}

// ClipboardResultMsg reports the outcome of a copy
type ClipboardResultMsg struct {
	URL string
	Err error
}

// ClearStatusLater clears status message seq after StatusTimeout
func ClearStatusLater(seq int) tea.Cmd {
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

// ToggleSelectionCommand flips the selection of one item
type ToggleSelectionCommand struct {
	ctx *CommandContext
	id  domain.AppID
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, id domain.AppID) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{ctx: ctx, id: id}
}

// Execute toggles the item
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	c.ctx.Store.Toggle(c.id)
	return nil
}

// SelectAllCommand selects every displayed item
type SelectAllCommand struct {
	ctx *CommandContext
}

// NewSelectAllCommand creates a new select all command
func NewSelectAllCommand(ctx *CommandContext) *SelectAllCommand {
	return &SelectAllCommand{ctx: ctx}
}

// Execute selects all items
func (c *SelectAllCommand) Execute() tea.Cmd {
	c.ctx.Store.SelectAll()
	return nil
}

// DeselectAllCommand empties the selection
type DeselectAllCommand struct {
	ctx *CommandContext
}

// NewDeselectAllCommand creates a new deselect all command
func NewDeselectAllCommand(ctx *CommandContext) *DeselectAllCommand {
	return &DeselectAllCommand{ctx: ctx}
}

// Execute clears the selection
func (c *DeselectAllCommand) Execute() tea.Cmd {
	c.ctx.Store.SelectNone()
	return nil
}

// DeleteSelectedCommand removes the selected items from the list
type DeleteSelectedCommand struct {
	ctx *CommandContext
}

// NewDeleteSelectedCommand creates a new delete command
func NewDeleteSelectedCommand(ctx *CommandContext) *DeleteSelectedCommand {
	return &DeleteSelectedCommand{ctx: ctx}
}

// Execute deletes the selection and keeps the cursor inside the shorter list
func (c *DeleteSelectedCommand) Execute() tea.Cmd {
	n := c.ctx.Store.DeleteSelected()
	if n == 0 {
		return nil
	}
	c.ctx.Navigator.SetTotal(c.ctx.Store.Len())
	seq := c.ctx.State.SetStatus(fmt.Sprintf("Deleted %s", plural(n)))
	return ClearStatusLater(seq)
}

// DuplicateSelectedCommand appends a copy of every selected item
type DuplicateSelectedCommand struct {
	ctx *CommandContext
}

// NewDuplicateSelectedCommand creates a new duplicate command
func NewDuplicateSelectedCommand(ctx *CommandContext) *DuplicateSelectedCommand {
	return &DuplicateSelectedCommand{ctx: ctx}
}

// Execute duplicates the selection
func (c *DuplicateSelectedCommand) Execute() tea.Cmd {
	copies := c.ctx.Store.DuplicateSelected()
	if len(copies) == 0 {
		return nil
	}
	c.ctx.Navigator.SetTotal(c.ctx.Store.Len())
	seq := c.ctx.State.SetStatus(fmt.Sprintf("Duplicated %s", plural(len(copies))))
	return ClearStatusLater(seq)
}

// CopyURLCommand puts a profile link on the clipboard
type CopyURLCommand struct {
	ctx *CommandContext
	url string
}

// NewCopyURLCommand creates a new copy command
func NewCopyURLCommand(ctx *CommandContext, url string) *CopyURLCommand {
	return &CopyURLCommand{ctx: ctx, url: url}
}

// Execute writes to the clipboard off the update loop
func (c *CopyURLCommand) Execute() tea.Cmd {
	if c.url == "" || c.ctx.Clipboard == nil {
		return nil
	}
	clip, url := c.ctx.Clipboard, c.url
	return func() tea.Msg {
		return ClipboardResultMsg{URL: url, Err: clip.WriteAll(url)}
	}
}

func plural(n int) string {
	if n == 1 {
		return "1 user"
	}
	return fmt.Sprintf("%d users", n)
}
