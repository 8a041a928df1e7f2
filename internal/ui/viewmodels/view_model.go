package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"usergrip/internal/config"
	"usergrip/internal/search"
	"usergrip/internal/selection"
	"usergrip/internal/ui/input/types"
	"usergrip/internal/ui/logic"
	"usergrip/internal/ui/state"
	"usergrip/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	store     *selection.Store
	navigator *logic.Navigator
	help      help.Model
	spinner   spinner.Model
	textInput textinput.Model
	keys      types.KeyMap
	mode      types.Mode
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, store *selection.Store, nav *logic.Navigator) *ViewModel {
	return &ViewModel{
		state:     appState,
		config:    cfg,
		store:     store,
		navigator: nav,
		help:      help.New(),
	}
}

// SetSpinner sets the spinner shown while loading
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.textInput = textInput
}

// SetInputMode sets the current input mode and the key map describing it
func (vm *ViewModel) SetInputMode(mode types.Mode, keys types.KeyMap) {
	vm.mode = mode
	vm.keys = keys
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(current search.State) views.ViewState {
	start, end, above, below := vm.navigator.Window()

	helpModel := vm.help
	helpModel.ShowAll = vm.state.ShowHelp
	helpModel.Width = vm.state.Width

	return views.ViewState{
		Width:         vm.state.Width,
		Height:        vm.state.Height,
		Ready:         vm.state.ShowReady,
		Input:         vm.textInput.View(),
		InputFocused:  vm.mode == types.ModeSearch,
		Spinner:       vm.spinner.View(),
		Term:          current.Term,
		Loading:       current.Loading(),
		Err:           current.Err,
		Items:         vm.store.Items(),
		IsSelected:    vm.store.IsSelected,
		SelectedCount: vm.store.Count(),
		Total:         current.Total,
		Incomplete:    current.Incomplete,
		Cursor:        vm.navigator.Cursor(),
		Start:         start,
		End:           end,
		Above:         above,
		Below:         below,
		ListFocused:   vm.mode == types.ModeList,
		MinTermLength: vm.config.UI.MinTermLength,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpView:      helpModel.View(vm.keys),
	}
}
