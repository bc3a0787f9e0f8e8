package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRecordsLoaded  EventType = "RecordsLoaded"
	EventRecordDeleted  EventType = "RecordDeleted"
	EventRecordsDeleted EventType = "RecordsDeleted"
	EventRecordSaved    EventType = "RecordSaved"
	EventNavigated      EventType = "Navigated"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RecordsLoadedEvent is emitted when a feature's dataset has been (re)loaded
type RecordsLoadedEvent struct {
	Feature string
	Count   int
}

func (e RecordsLoadedEvent) Type() EventType { return EventRecordsLoaded }

// RecordDeletedEvent is emitted when a single row is deleted
type RecordDeletedEvent struct {
	Feature string
	ID      string
}

func (e RecordDeletedEvent) Type() EventType { return EventRecordDeleted }

// RecordsDeletedEvent is emitted when the selected rows are deleted
type RecordsDeletedEvent struct {
	Feature string
	IDs     []string
}

func (e RecordsDeletedEvent) Type() EventType { return EventRecordsDeleted }

// RecordSavedEvent is emitted when a form is submitted successfully
type RecordSavedEvent struct {
	Feature string
	ID      string
	Created bool // false when an existing record was updated
}

func (e RecordSavedEvent) Type() EventType { return EventRecordSaved }

// NavigatedEvent is emitted when the router changes path
type NavigatedEvent struct {
	From string
	To   string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path           string
	DefaultFeature string
	RowsPerPage    int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
