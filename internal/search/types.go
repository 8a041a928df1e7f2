package search

import (
	"context"

	"usergrip/internal/domain"
)

// Status is the phase of the search state machine
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is what the controller exposes to renderers
type State struct {
	Term       string
	Status     Status
	Items      []domain.DisplayItem
	Err        string // empty when there is no error
	Total      int    // total_count reported by the server
	Incomplete bool
}

// Loading reports whether a request for the current term is outstanding
func (s State) Loading() bool {
	return s.Status == Loading
}

// Searcher is the remote endpoint as seen by the controller
type Searcher interface {
	SearchUsers(ctx context.Context, term string) (*domain.SearchResponse, error)
}

// SearcherFunc adapts a function to Searcher
type SearcherFunc func(ctx context.Context, term string) (*domain.SearchResponse, error)

func (f SearcherFunc) SearchUsers(ctx context.Context, term string) (*domain.SearchResponse, error) {
	return f(ctx, term)
}

// Request is the ticket for one logical search
type Request struct {
	Seq  uint64
	Term string
}

// Result is the unapplied outcome of a Request
type Result struct {
	Request
	Response *domain.SearchResponse
	Err      error
}
