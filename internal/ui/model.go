package ui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"usergrip/internal/config"
	"usergrip/internal/debounce"
	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/search"
	"usergrip/internal/selection"
	"usergrip/internal/ui/commands"
	"usergrip/internal/ui/input"
	inputtypes "usergrip/internal/ui/input/types"
	"usergrip/internal/ui/logic"
	"usergrip/internal/ui/state"
	"usergrip/internal/ui/viewmodels"
	"usergrip/internal/ui/views"
)

// Settled terms waiting for the update loop. Typing cannot outrun this
// because the debouncer emits at most one term per delay.
const settledBuffer = 64

// Program is the part of tea.Program the model talks to from commands
type Program interface {
	Send(msg tea.Msg)
	Terminal
}

// Option configures a Model
type Option func(*Model)

// WithClock drives the debouncer from c instead of runtime timers
func WithClock(c debounce.Clock) Option {
	return func(m *Model) { m.clock = c }
}

// WithClipboard replaces the system clipboard
func WithClipboard(c commands.Clipboard) Option {
	return func(m *Model) { m.clipboard = c }
}

// WithPager replaces the ov pager used for the detail view
func WithPager(p Pager) Option {
	return func(m *Model) { m.pager = p }
}

// WithInitialTerm prefills the search box and searches it on start
func WithInitialTerm(term string) Option {
	return func(m *Model) { m.initialTerm = term }
}

// WithReadyMarker prints a marker in every frame for terminal tests
func WithReadyMarker(enabled bool) Option {
	return func(m *Model) { m.state.ShowReady = enabled }
}

// Model represents the UI state
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	controller *search.Controller
	store      *selection.Store
	debouncer  *debounce.Debouncer[string]
	settled    chan string
	spinner    spinner.Model

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler

	clock       debounce.Clock
	clipboard   commands.Clipboard
	pager       Pager
	initialTerm string

	// Program reference for terminal management
	program Program
}

// NewModel creates a new UI model. The model stops its background work when
// ctx is done or the user quits.
func NewModel(ctx context.Context, cfg *config.Config, controller *search.Controller, store *selection.Store, bus eventbus.EventBus, opts ...Option) *Model {
	if bus == nil {
		bus = eventbus.Nop()
	}
	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		ctx:        ctx,
		cancel:     cancel,
		bus:        bus,
		config:     cfg,
		state:      state.NewAppState(),
		controller: controller,
		store:      store,
		settled:    make(chan string, settledBuffer),
		navigator:  logic.NewNavigator(),
		renderer:   views.NewRenderer(cfg.UI.LoginMaxWidth, cfg.UI.ShowAccountType),
		clock:      debounce.RealClock{},
		clipboard:  commands.SystemClipboard{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.debouncer = debounce.New("", cfg.Search.Debounce(), m.onSettle, debounce.WithClock(m.clock))

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	m.inputHandler = input.New(inputtypes.DefaultKeyMap())
	ti := m.inputHandler.TextInput()
	ti.Placeholder = "Search GitHub users"
	ti.CharLimit = 256

	m.cmdExecutor = commands.NewExecutor(m.state, m.store, m.navigator, m.bus, m.clipboard)
	m.viewModel = viewmodels.NewViewModel(m.state, cfg, m.store, m.navigator)

	if m.initialTerm != "" {
		m.inputHandler.SetText(m.initialTerm)
		m.debouncer.Set(m.initialTerm)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p Program) {
	m.program = p
	if m.pager == nil && p != nil {
		m.pager = NewOvPager(p)
	}
}

// onSettle runs wherever the debouncer settles (timer goroutine or Update)
// and hands the term to the update loop
func (m *Model) onSettle(term string) {
	select {
	case m.settled <- term:
	default:
		log.Printf("Dropping settled term %q: update loop is behind", term)
	}
}

// waitForSettle delivers the next settled term as a message
func (m *Model) waitForSettle() tea.Cmd {
	settled, done := m.settled, m.ctx.Done()
	return func() tea.Msg {
		select {
		case term := <-settled:
			return termSettledMsg{term: term}
		case <-done:
			return nil
		}
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initialTerm != "" {
		m.debouncer.Flush()
	}
	return tea.Batch(m.inputHandler.Init(), m.waitForSettle())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.navigator.SetHeight(views.ListHeight(msg.Height))
		if msg.Width > 12 {
			m.inputHandler.TextInput().Width = msg.Width - 12
		}
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Store:     m.store,
			Navigator: m.navigator,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Keys())
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	m.viewModel.SetSpinner(m.spinner)

	return m.renderer.Render(m.viewModel.BuildViewState(m.controller.State()))
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.debouncer.Set(a.Text)

	case inputtypes.SubmitTextAction:
		// Enter skips the wait; on an already settled term it searches again
		if !m.debouncer.Flush() {
			return m.startSearch(m.debouncer.Value())
		}

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.navigator.Move(-1)
		case "down":
			m.navigator.Move(1)
		case "pageup":
			m.navigator.PageUp()
		case "pagedown":
			m.navigator.PageDown()
		case "home":
			m.navigator.Top()
		case "end":
			m.navigator.Bottom()
		}

	case inputtypes.ToggleSelectAction:
		if item, ok := m.currentItem(); ok {
			return m.cmdExecutor.ExecuteToggleSelection(item.AppID)
		}

	case inputtypes.SelectAllAction:
		return m.cmdExecutor.ExecuteSelectAll()

	case inputtypes.DeselectAllAction:
		return m.cmdExecutor.ExecuteDeselectAll()

	case inputtypes.DeleteSelectedAction:
		cmd := m.cmdExecutor.ExecuteDeleteSelected()
		return tea.Batch(cmd, m.leaveEmptyList())

	case inputtypes.DuplicateSelectedAction:
		return m.cmdExecutor.ExecuteDuplicateSelected()

	case inputtypes.OpenDetailAction:
		if item, ok := m.currentItem(); ok {
			return m.showDetail(item)
		}

	case inputtypes.CopyURLAction:
		if item, ok := m.currentItem(); ok {
			return m.cmdExecutor.ExecuteCopyURL(item.User.ProfileURL)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		m.shutdown()
		return tea.Quit
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case termSettledMsg:
		return m, tea.Batch(m.startSearch(msg.term), m.waitForSettle())

	case searchResultMsg:
		if !m.controller.Apply(msg.result) {
			log.Printf("Discarded result for %q (request %d)", msg.result.Term, msg.result.Seq)
			return m, nil
		}
		return m, m.syncResults()

	case spinner.TickMsg:
		// Let the tick chain die once nothing is loading
		if !m.controller.State().Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.ClipboardResultMsg:
		if msg.Err != nil {
			log.Printf("Copy failed: %v", msg.Err)
			return m, m.cmdExecutor.ReportError("Copy failed", msg.Err)
		}
		seq := m.state.SetStatus("Copied " + msg.URL)
		return m, commands.ClearStatusLater(seq)

	case commands.ClearStatusMsg:
		m.state.ClearStatusIf(msg.Seq)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Detail pager failed: %v", msg.err)
			return m, m.cmdExecutor.ReportError("Pager failed", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// startSearch makes term the current search. The request runs as a command
// and reports back through searchResultMsg.
func (m *Model) startSearch(term string) tea.Cmd {
	req, ok := m.controller.Begin(term)
	if !ok {
		return m.syncResults()
	}

	ctx, controller := m.ctx, m.controller
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		// Superseded before it ran; Apply drops it without a network call
		if !controller.IsCurrent(req) {
			return searchResultMsg{result: search.Result{Request: req}}
		}
		return searchResultMsg{result: controller.Execute(ctx, req)}
	})
}

// syncResults shows the committed items and resets cursor and selection
func (m *Model) syncResults() tea.Cmd {
	m.store.Replace(m.controller.State().Items)
	m.navigator.SetTotal(m.store.Len())
	m.navigator.Reset()
	return m.leaveEmptyList()
}

// leaveEmptyList moves focus back to the search box once nothing is left to browse
func (m *Model) leaveEmptyList() tea.Cmd {
	if m.store.Len() > 0 || m.inputHandler.CurrentMode() != inputtypes.ModeList {
		return nil
	}
	return m.inputHandler.ChangeMode(inputtypes.ModeSearch, &input.ModelContext{Store: m.store, Navigator: m.navigator})
}

func (m *Model) currentItem() (domain.DisplayItem, bool) {
	return m.store.At(m.navigator.Cursor())
}

// showDetail returns a command that shows the item card in the pager
func (m *Model) showDetail(item domain.DisplayItem) tea.Cmd {
	if m.pager == nil {
		return m.cmdExecutor.ReportError("Cannot show details", errors.New("no pager available"))
	}
	content := m.renderer.Cards().RenderDetail(item)
	pager, program := m.pager, m.program

	return func() tea.Msg {
		// Stop rendering while the pager owns the terminal
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(content)

		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerDoneMsg{err: err}
	}
}

// shutdown stops the debouncer and the settle listener
func (m *Model) shutdown() {
	m.debouncer.Stop()
	m.cancel()
}

// Close releases background resources when the program exits without Quit
func (m *Model) Close() {
	m.shutdown()
}
