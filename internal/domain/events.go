package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventSearchDiscarded  EventType = "SearchDiscarded"
	EventItemsReplaced    EventType = "ItemsReplaced"
	EventItemsDeleted     EventType = "ItemsDeleted"
	EventItemsDuplicated  EventType = "ItemsDuplicated"
	EventSelectionChanged EventType = "SelectionChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a request becomes the current one
type SearchStartedEvent struct {
	Seq  uint64
	Term string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a current request commits results
type SearchCompletedEvent struct {
	Seq        uint64
	Term       string
	Count      int
	TotalCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a current request commits an error
type SearchFailedEvent struct {
	Seq     uint64
	Term    string
	Kind    string
	Message string
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a superseded request resolves
type SearchDiscardedEvent struct {
	Seq     uint64
	Term    string
	Current uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// ItemsReplacedEvent is emitted when a new result list replaces the displayed one
type ItemsReplacedEvent struct {
	Count int
}

func (e ItemsReplacedEvent) Type() EventType { return EventItemsReplaced }

// ItemsDeletedEvent is emitted after a bulk delete
type ItemsDeletedEvent struct {
	AppIDs []AppID
}

func (e ItemsDeletedEvent) Type() EventType { return EventItemsDeleted }

// ItemsDuplicatedEvent is emitted after a bulk duplicate
type ItemsDuplicatedEvent struct {
	Sources []AppID
	Copies  []AppID
}

func (e ItemsDuplicatedEvent) Type() EventType { return EventItemsDuplicated }

// SelectionChangedEvent is emitted whenever the selection set changes
type SelectionChangedEvent struct {
	Added   []AppID
	Removed []AppID
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs outside the search pipeline
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
