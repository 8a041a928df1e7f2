package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Bulk actions on the selection
type DeleteSelectedAction struct{}

func (a DeleteSelectedAction) Type() string { return "delete_selected" }

type DuplicateSelectedAction struct{}

func (a DuplicateSelectedAction) Type() string { return "duplicate_selected" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SubmitTextAction asks for the typed term to be searched without waiting
type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Item actions
type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
