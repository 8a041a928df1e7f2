package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"usergrip/internal/ui/input/types"
)

// SearchMode owns the search box. Keys it does not consume are typed into it.
type SearchMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{keys: keys, textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

// Enter focuses the box but keeps whatever was typed before
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Submit):
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{types.SubmitTextAction{Text: text}}, true

	case key.Matches(msg, m.keys.FocusList):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	}

	// Let the handler feed the key to the text input
	return nil, false
}
