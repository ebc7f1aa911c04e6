package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventArrayRegenerated EventType = "ArrayRegenerated"
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchConcluded  EventType = "SearchConcluded"
	EventSearchReset      EventType = "SearchReset"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ArrayRegeneratedEvent is emitted after a new sequence was generated and sorted
type ArrayRegeneratedEvent struct {
	Size int
	Min  int
	Max  int
}

func (e ArrayRegeneratedEvent) Type() EventType { return EventArrayRegenerated }

// SearchStartedEvent is emitted when a binary search run begins
type SearchStartedEvent struct {
	Key int
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchConcludedEvent is emitted when a run has produced its last frame
type SearchConcludedEvent struct {
	Result SearchResult
}

func (e SearchConcludedEvent) Type() EventType { return EventSearchConcluded }

// SearchResetEvent is emitted when the key, outcome and highlights are cleared
type SearchResetEvent struct{}

func (e SearchResetEvent) Type() EventType { return EventSearchReset }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
