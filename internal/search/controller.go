// Package search drives the remote search and owns the committed result state.
package search

import (
	"context"
	"sync"

	"usergrip/internal/domain"
	"usergrip/internal/eventbus"
	"usergrip/internal/github"
)

// Controller tracks the current term and commits at most the latest request's
// outcome. Every Begin supersedes all earlier tickets; their results are
// dropped by Apply without touching state.
type Controller struct {
	mu     sync.Mutex
	client Searcher
	ids    domain.IDGenerator
	bus    eventbus.EventBus
	seq    uint64
	state  State
}

// NewController creates a controller in the Idle state. bus may be nil.
func NewController(client Searcher, ids domain.IDGenerator, bus eventbus.EventBus) *Controller {
	if bus == nil {
		bus = eventbus.Nop()
	}
	return &Controller{
		client: client,
		ids:    ids,
		bus:    bus,
		state:  State{Status: Idle, Items: []domain.DisplayItem{}},
	}
}

// State returns a snapshot of the committed state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Items = make([]domain.DisplayItem, len(c.state.Items))
	copy(s.Items, c.state.Items)
	return s
}

// Begin makes term the current one. For a non-empty term it enters Loading and
// returns the ticket to execute. An empty term is resolved on the spot (Idle,
// no items, no error) and ok is false.
func (c *Controller) Begin(term string) (req Request, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	req = Request{Seq: c.seq, Term: term}

	if term == "" {
		c.state = State{Status: Idle, Items: []domain.DisplayItem{}}
		return req, false
	}

	c.state.Term = term
	c.state.Status = Loading
	c.state.Err = ""
	c.bus.Publish(domain.SearchStartedEvent{Seq: req.Seq, Term: term})
	return req, true
}

// Execute performs the remote call for req. It does not touch state and may
// run on any goroutine.
func (c *Controller) Execute(ctx context.Context, req Request) Result {
	resp, err := c.client.SearchUsers(ctx, req.Term)
	return Result{Request: req, Response: resp, Err: err}
}

// IsCurrent reports whether req is still the latest ticket
func (c *Controller) IsCurrent(req Request) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return req.Seq == c.seq
}

// Apply commits res if its ticket is still current and reports whether it did
func (c *Controller) Apply(res Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.Seq != c.seq {
		c.bus.Publish(domain.SearchDiscardedEvent{Seq: res.Seq, Term: res.Term, Current: c.seq})
		return false
	}

	if res.Err != nil {
		c.state = State{
			Term:   res.Term,
			Status: Failure,
			Items:  []domain.DisplayItem{},
			Err:    res.Err.Error(),
		}
		kind := "unclassified"
		if k, ok := github.KindOf(res.Err); ok {
			kind = k.String()
		}
		c.bus.Publish(domain.SearchFailedEvent{Seq: res.Seq, Term: res.Term, Kind: kind, Message: c.state.Err})
		return true
	}

	resp := res.Response
	if resp == nil {
		resp = domain.EmptySearchResponse()
	}
	c.state = State{
		Term:       res.Term,
		Status:     Success,
		Items:      domain.NewDisplayItems(resp.Items, c.ids),
		Total:      resp.TotalCount,
		Incomplete: resp.IncompleteResults,
	}
	c.bus.Publish(domain.SearchCompletedEvent{
		Seq:        res.Seq,
		Term:       res.Term,
		Count:      len(c.state.Items),
		TotalCount: resp.TotalCount,
	})
	return true
}

// Search runs a whole cycle synchronously and returns the resulting state
func (c *Controller) Search(ctx context.Context, term string) State {
	req, ok := c.Begin(term)
	if ok {
		c.Apply(c.Execute(ctx, req))
	}
	return c.State()
}
