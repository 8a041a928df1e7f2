// Package input turns key presses into model actions according to the active mode.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"usergrip/internal/ui/input/modes"
	"usergrip/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
	textInput   *textinput.Model // the search box, shared with the view
}

// New creates a handler that starts in search mode with a focused box
func New(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		keys:        keys,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeList] = modes.NewListMode(keys)

	return h
}

// HandleKey routes msg to the active mode. Mode changes are applied here and
// not returned; every other action is handed back to the caller.
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
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// Unconsumed keys in a text mode are typed into the box
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
		}
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// ChangeMode switches modes outside of key handling, e.g. when the list empties
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) tea.Cmd {
	h.switchMode(mode, ctx)
	if h.isTextMode(mode) {
		return textinput.Blink
	}
	return nil
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeSearch
	}
	return h.currentMode
}

// TextInput returns the search box
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key map with help for the active mode
func (h *Handler) Keys() types.KeyMap {
	return h.keys.ForMode(h.currentMode)
}

// SetText replaces the box content without going through key handling
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}
