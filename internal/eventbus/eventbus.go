package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"usergrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchStarted    = domain.EventSearchStarted
	EventSearchCompleted  = domain.EventSearchCompleted
	EventSearchFailed     = domain.EventSearchFailed
	EventSearchDiscarded  = domain.EventSearchDiscarded
	EventItemsReplaced    = domain.EventItemsReplaced
	EventItemsDeleted     = domain.EventItemsDeleted
	EventItemsDuplicated  = domain.EventItemsDuplicated
	EventSelectionChanged = domain.EventSelectionChanged
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// AllEventTypes lists every event type the bus can carry
var AllEventTypes = []EventType{
	EventSearchStarted,
	EventSearchCompleted,
	EventSearchFailed,
	EventSearchDiscarded,
	EventItemsReplaced,
	EventItemsDeleted,
	EventItemsDuplicated,
	EventSelectionChanged,
	EventError,
	EventConfigLoaded,
	EventConfigSaved,
}

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	return NewWithBuffer(1000)
}

// NewWithBuffer creates an event bus whose queue holds size pending events
func NewWithBuffer(size int) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, size),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. Never blocks: a full queue drops the event.
func (b *bus) Publish(event DomainEvent) {
	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after delivering already queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch delivers events in publish order on a single goroutine
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)
		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
				}
			}()
			s.handler(event)
		}()
	}
}

// nopBus discards everything
type nopBus struct{}

// Nop returns a bus that drops all events
func Nop() EventBus { return nopBus{} }

func (nopBus) Publish(DomainEvent)                      {}
func (nopBus) Subscribe(EventType, EventHandler) func() { return func() {} }
func (nopBus) Close()                                   {}
