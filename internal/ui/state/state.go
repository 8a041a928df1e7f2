package state

// AppState contains the UI state that is not owned by the search
// controller or the selection store
type AppState struct {
	Width  int
	Height int

	ShowHelp      bool   // full key help instead of the short line
	InPager       bool   // rendering is paused while the pager owns the terminal
	StatusMessage string // status bar message
	StatusIsError bool
	ShowReady     bool // print the ready marker for the e2e harness

	statusSeq int // bumped on every new status message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows an informational message in the status bar and returns its sequence
func (s *AppState) SetStatus(msg string) int {
	s.StatusMessage = msg
	s.StatusIsError = false
	s.statusSeq++
	return s.statusSeq
}

// SetError shows an error message in the status bar and returns its sequence
func (s *AppState) SetError(msg string) int {
	s.StatusMessage = msg
	s.StatusIsError = true
	s.statusSeq++
	return s.statusSeq
}

// ClearStatus clears the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ClearStatusIf clears the status bar only if seq is still the latest message
func (s *AppState) ClearStatusIf(seq int) bool {
	if seq != s.statusSeq {
		return false
	}
	s.ClearStatus()
	return true
}
