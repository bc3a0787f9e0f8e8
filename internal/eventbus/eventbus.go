package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/logutil"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRecordsLoaded  = domain.EventRecordsLoaded
	EventRecordDeleted  = domain.EventRecordDeleted
	EventRecordsDeleted = domain.EventRecordsDeleted
	EventRecordSaved    = domain.EventRecordSaved
	EventNavigated      = domain.EventNavigated
	EventError          = domain.EventError
	EventConfigLoaded   = domain.EventConfigLoaded
	EventConfigSaved    = domain.EventConfigSaved
)

// Re-export domain event types
type RecordsLoadedEvent = domain.RecordsLoadedEvent
type RecordDeletedEvent = domain.RecordDeletedEvent
type RecordsDeletedEvent = domain.RecordsDeletedEvent
type RecordSavedEvent = domain.RecordSavedEvent
type NavigatedEvent = domain.NavigatedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

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
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	logutil.L().Debug("publishing event", zap.String("event", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		logutil.L().Warn("event bus full, dropping event", zap.String("event", string(event.Type())))
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

// Close stops the dispatcher and drops pending events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy handlers so none run under the lock
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							logutil.L().Error("event handler panic",
								zap.String("event", string(eventType)),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
