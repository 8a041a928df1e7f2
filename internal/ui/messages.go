package ui

import (
	"usergrip/internal/search"
)

// termSettledMsg carries a debounced term that should be searched
type termSettledMsg struct {
	term string
}

// searchResultMsg carries the unapplied outcome of a search request
type searchResultMsg struct {
	result search.Result
}

// pagerDoneMsg is sent when the detail pager exits
type pagerDoneMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
