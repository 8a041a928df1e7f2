package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"usergrip/internal/ui/input/types"
)

// ListMode handles keys while the result list has focus
type ListMode struct {
	keys types.KeyMap
}

func NewListMode(keys types.KeyMap) *ListMode {
	return &ListMode{keys: keys}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true

	case key.Matches(msg, m.keys.Up):
		return navigate("up"), true
	case key.Matches(msg, m.keys.Down):
		return navigate("down"), true
	case key.Matches(msg, m.keys.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, m.keys.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, m.keys.Top):
		return navigate("home"), true
	case key.Matches(msg, m.keys.Bottom):
		return navigate("end"), true

	case key.Matches(msg, m.keys.Toggle):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleSelectAction{}}, true

	case key.Matches(msg, m.keys.SelectAll):
		// a toggles between all and none
		if ctx.AllSelected() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.SelectNone):
		return []types.Action{types.DeselectAllAction{}}, true

	case key.Matches(msg, m.keys.Delete):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.DeleteSelectedAction{}}, true

	case key.Matches(msg, m.keys.Duplicate):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.DuplicateSelectedAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.OpenDetailAction{}}, true

	case key.Matches(msg, m.keys.Copy):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.CopyURLAction{}}, true

	case key.Matches(msg, m.keys.FocusInput):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
